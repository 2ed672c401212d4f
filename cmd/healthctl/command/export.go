package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v3"

	"github.com/LuizaMunis/HealthCare-sub000/conditions"
	"github.com/LuizaMunis/HealthCare-sub000/consultations"
	"github.com/LuizaMunis/HealthCare-sub000/measurements"
	"github.com/LuizaMunis/HealthCare-sub000/medications"
	"github.com/LuizaMunis/HealthCare-sub000/profiles"
	"github.com/LuizaMunis/HealthCare-sub000/store"
	"github.com/LuizaMunis/HealthCare-sub000/vaccines"
)

var (
	exportUserId int64
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's full health record to an xlsx workbook",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(exportRecord) },
}

type exportServices struct {
	profiles      profiles.Service
	conditions    conditions.Service
	medications   medications.Service
	vaccines      vaccines.Service
	consultations consultations.Service
	measurements  measurements.Service
}

func exportRecord(
	profilesService profiles.Service,
	conditionsService conditions.Service,
	medicationsService medications.Service,
	vaccinesService vaccines.Service,
	consultationsService consultations.Service,
	measurementsService measurements.Service,
) error {
	ctx := context.TODO()
	services := exportServices{
		profiles:      profilesService,
		conditions:    conditionsService,
		medications:   medicationsService,
		vaccines:      vaccinesService,
		consultations: consultationsService,
		measurements:  measurementsService,
	}

	file := xlsx.NewFile()
	if err := addProfileSheet(ctx, file, services); err != nil {
		return err
	}
	if err := addConditionsSheet(ctx, file, services); err != nil {
		return err
	}
	if err := addMedicationsSheet(ctx, file, services); err != nil {
		return err
	}
	if err := addVaccinesSheet(ctx, file, services); err != nil {
		return err
	}
	if err := addConsultationsSheet(ctx, file, services); err != nil {
		return err
	}
	if err := addBloodPressureSheet(ctx, file, services); err != nil {
		return err
	}

	if err := file.Save(exportOutput); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}

	fmt.Printf("Exported health record of user %d to %s\n", exportUserId, exportOutput)
	return nil
}

func addProfileSheet(ctx context.Context, file *xlsx.File, services exportServices) error {
	sheet, err := file.AddSheet("Perfil")
	if err != nil {
		return err
	}

	profile, err := services.profiles.GetByUserId(ctx, exportUserId)
	if err != nil {
		return err
	}

	addRow(sheet, "data_nascimento", "telefone", "genero", "cpf", "peso", "altura")
	addRow(sheet,
		stringValue(profile.BirthDate),
		stringValue(profile.Phone),
		stringValue(profile.Gender),
		stringValue(profile.Cpf),
		floatValue(profile.WeightKg),
		intValue(profile.HeightCm),
	)
	return nil
}

func addConditionsSheet(ctx context.Context, file *xlsx.File, services exportServices) error {
	sheet, err := file.AddSheet("Doencas")
	if err != nil {
		return err
	}

	list, err := services.conditions.ListConditions(ctx, exportUserId, store.DefaultPagination())
	if err != nil {
		return err
	}

	addRow(sheet, "nome", "tipo", "data_diagnostico", "data_cura", "observacoes")
	for _, condition := range list {
		addRow(sheet,
			stringValue(condition.Name),
			stringValue(condition.Type),
			stringValue(condition.DiagnosisDate),
			stringValue(condition.CureDate),
			stringValue(condition.Notes),
		)
	}
	return nil
}

func addMedicationsSheet(ctx context.Context, file *xlsx.File, services exportServices) error {
	sheet, err := file.AddSheet("Medicamentos")
	if err != nil {
		return err
	}

	list, err := services.medications.ListMedications(ctx, exportUserId, store.DefaultPagination())
	if err != nil {
		return err
	}

	addRow(sheet, "nome", "dosagem", "unidade_medida", "frequencia_horas", "data_inicio_tratamento", "duracao_dias")
	for _, medication := range list {
		addRow(sheet,
			stringValue(medication.Name),
			stringValue(medication.Dosage),
			stringValue(medication.Unit),
			intValue(medication.FrequencyHours),
			stringValue(medication.StartDate),
			intValue(medication.DurationDays),
		)
	}
	return nil
}

func addVaccinesSheet(ctx context.Context, file *xlsx.File, services exportServices) error {
	sheet, err := file.AddSheet("Vacinas")
	if err != nil {
		return err
	}

	list, err := services.vaccines.List(ctx, exportUserId, store.DefaultPagination())
	if err != nil {
		return err
	}

	addRow(sheet, "nome", "dose", "data_aplicacao")
	for _, vaccine := range list {
		addRow(sheet,
			stringValue(vaccine.Name),
			stringValue(vaccine.Dose),
			stringValue(vaccine.AppliedDate),
		)
	}
	return nil
}

func addConsultationsSheet(ctx context.Context, file *xlsx.File, services exportServices) error {
	sheet, err := file.AddSheet("Consultas")
	if err != nil {
		return err
	}

	list, err := services.consultations.List(ctx, exportUserId, store.DefaultPagination())
	if err != nil {
		return err
	}

	addRow(sheet, "nome_medico", "especialidade", "data_hora", "local")
	for _, consultation := range list {
		scheduledAt := ""
		if consultation.ScheduledAt != nil {
			scheduledAt = consultation.ScheduledAt.Format("2006-01-02 15:04")
		}
		addRow(sheet,
			stringValue(consultation.DoctorName),
			stringValue(consultation.Specialty),
			scheduledAt,
			stringValue(consultation.Location),
		)
	}
	return nil
}

func addBloodPressureSheet(ctx context.Context, file *xlsx.File, services exportServices) error {
	sheet, err := file.AddSheet("PressaoArterial")
	if err != nil {
		return err
	}

	list, err := services.measurements.ListBloodPressure(ctx, exportUserId, store.DefaultPagination())
	if err != nil {
		return err
	}

	addRow(sheet, "sistolica", "diastolica", "data_medicao")
	for _, reading := range list {
		measuredAt := ""
		if reading.MeasuredAt != nil {
			measuredAt = reading.MeasuredAt.Format("2006-01-02 15:04")
		}
		addRow(sheet, intValue(reading.Systolic), intValue(reading.Diastolic), measuredAt)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, value := range values {
		row.AddCell().SetString(value)
	}
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intValue(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func floatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *v)
}

func init() {
	exportCmd.Flags().Int64Var(&exportUserId, "user", 0, "Id of the user whose record is exported")
	exportCmd.Flags().StringVar(&exportOutput, "output", "health-record.xlsx", "Path of the xlsx file to write")
	_ = exportCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(exportCmd)
}
