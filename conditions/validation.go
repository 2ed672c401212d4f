package conditions

import (
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
)

const dateLayout = "2006-01-02"

var intensities = mapset.NewSet(IntensityMild, IntensityModerate, IntensityIntense)

func validateCondition(condition *Condition) error {
	if condition.Name == nil || strings.TrimSpace(*condition.Name) == "" {
		return errors.Validation("nome", "is required")
	}
	if condition.Type == nil || strings.TrimSpace(*condition.Type) == "" {
		return errors.Validation("tipo", "is required")
	}
	if err := validateDate("data_diagnostico", condition.DiagnosisDate); err != nil {
		return err
	}
	if err := validateDate("data_inicio_sintomas", condition.SymptomOnsetDate); err != nil {
		return err
	}
	if err := validateDate("data_cura", condition.CureDate); err != nil {
		return err
	}
	return nil
}

func validateSymptom(symptom *Symptom) error {
	if symptom.Description == nil || strings.TrimSpace(*symptom.Description) == "" {
		return errors.Validation("descricao", "is required")
	}
	if symptom.Intensity == nil {
		return errors.Validation("intensidade", "is required")
	}
	if !intensities.Contains(*symptom.Intensity) {
		return errors.Validation("intensidade", "must be one of LEVE, MODERADA, INTENSA")
	}
	return nil
}

func validateDate(field string, value *string) error {
	if value == nil {
		return nil
	}
	if _, err := time.Parse(dateLayout, *value); err != nil {
		return errors.Validation(field, "must be a date in YYYY-MM-DD format")
	}
	return nil
}

func normalizeSymptom(symptom *Symptom) {
	if symptom.Intensity != nil {
		intensity := strings.ToUpper(*symptom.Intensity)
		symptom.Intensity = &intensity
	}
}
