package medications

import (
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
)

const startDateLayout = "2006-01-02"

var useStatuses = mapset.NewSet(UseStatusTaken, UseStatusSkipped, UseStatusLate)

func validateMedication(medication *Medication) error {
	if medication.Name == nil || strings.TrimSpace(*medication.Name) == "" {
		return errors.Validation("nome", "is required")
	}
	if medication.FrequencyHours == nil {
		return errors.Validation("frequencia_horas", "is required")
	}
	if *medication.FrequencyHours < 1 || *medication.FrequencyHours > 168 {
		return errors.Validation("frequencia_horas", "must be between 1 and 168 hours")
	}
	if medication.StartDate == nil {
		return errors.Validation("data_inicio_tratamento", "is required")
	}
	if _, err := time.Parse(startDateLayout, *medication.StartDate); err != nil {
		return errors.Validation("data_inicio_tratamento", "must be a date in YYYY-MM-DD format")
	}
	if medication.DurationDays != nil && *medication.DurationDays < 1 {
		return errors.Validation("duracao_dias", "must be a positive number of days")
	}
	return nil
}

func validateUseLog(log *UseLog) error {
	if log.TakenAt == nil {
		return errors.Validation("data_hora", "is required")
	}
	if log.Status == nil {
		return errors.Validation("status", "is required")
	}
	if !useStatuses.Contains(*log.Status) {
		return errors.Validation("status", "must be one of TOMADO, PULADO, ATRASADO")
	}
	return nil
}

func normalizeUseLog(log *UseLog) {
	if log.Status != nil {
		status := strings.ToUpper(*log.Status)
		log.Status = &status
	}
}
