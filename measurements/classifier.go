package measurements

import "math"

const (
	ClassificationHypertension     = "HIPERTENSAO"
	ClassificationHypotension      = "HIPOTENSAO"
	ClassificationPreHypertension  = "PRE_HIPERTENSAO"
	ClassificationNormal           = "NORMAL"
	ClassificationInsufficientData = "DADOS_INSUFICIENTES"

	BMIClassificationUnder            = "ABAIXO_DO_PESO"
	BMIClassificationNormal           = "NORMAL"
	BMIClassificationOverweight       = "SOBREPESO"
	BMIClassificationObese            = "OBESIDADE"
	BMIClassificationInsufficientData = "DADOS_INSUFICIENTES"
)

type BloodPressureReport struct {
	Classification string   `json:"classificacao"`
	AvgSystolic    *float64 `json:"media_sistolica,omitempty"`
	AvgDiastolic   *float64 `json:"media_diastolica,omitempty"`
	ReadingCount   int      `json:"total_medicoes"`
	Alerts         []string `json:"alertas,omitempty"`
}

type BMIReport struct {
	Classification string   `json:"classificacao"`
	Value          *float64 `json:"imc,omitempty"`
}

// ClassifyBloodPressure averages the paired readings and derives a category.
// The bands overlap, so they are evaluated most severe first: a reading that
// satisfies both the hypertension and pre-hypertension thresholds is reported
// as hypertension.
func ClassifyBloodPressure(readings []*BloodPressureReading) *BloodPressureReport {
	var sumSystolic, sumDiastolic, count int
	for _, reading := range readings {
		if reading.Systolic == nil || reading.Diastolic == nil {
			continue
		}
		sumSystolic += *reading.Systolic
		sumDiastolic += *reading.Diastolic
		count++
	}

	if count == 0 {
		return &BloodPressureReport{Classification: ClassificationInsufficientData}
	}

	avgSystolic := roundToOneDecimal(float64(sumSystolic) / float64(count))
	avgDiastolic := roundToOneDecimal(float64(sumDiastolic) / float64(count))

	report := &BloodPressureReport{
		AvgSystolic:  &avgSystolic,
		AvgDiastolic: &avgDiastolic,
		ReadingCount: count,
	}

	switch {
	case avgSystolic >= 140 || avgDiastolic >= 90:
		report.Classification = ClassificationHypertension
		report.Alerts = append(report.Alerts, "Pressão arterial média elevada. Procure orientação médica.")
	case avgSystolic < 90 || avgDiastolic < 60:
		report.Classification = ClassificationHypotension
		report.Alerts = append(report.Alerts, "Pressão arterial média baixa. Procure orientação médica.")
	case avgSystolic >= 120 || avgDiastolic >= 80:
		report.Classification = ClassificationPreHypertension
		report.Alerts = append(report.Alerts, "Pressão arterial média acima do ideal. Acompanhe suas medições.")
	default:
		report.Classification = ClassificationNormal
	}

	return report
}

// ClassifyBMI computes weight / height² rounded to one decimal. The result is
// a sentinel when either input is missing.
func ClassifyBMI(weightKg *float64, heightCm *int) *BMIReport {
	if weightKg == nil || heightCm == nil || *heightCm == 0 {
		return &BMIReport{Classification: BMIClassificationInsufficientData}
	}

	heightM := float64(*heightCm) / 100
	value := roundToOneDecimal(*weightKg / (heightM * heightM))

	report := &BMIReport{Value: &value}
	switch {
	case value < 18.5:
		report.Classification = BMIClassificationUnder
	case value < 25:
		report.Classification = BMIClassificationNormal
	case value < 30:
		report.Classification = BMIClassificationOverweight
	default:
		report.Classification = BMIClassificationObese
	}

	return report
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
