package consultations

import (
	"strings"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
)

func validate(consultation *Consultation) error {
	if consultation.DoctorName == nil || strings.TrimSpace(*consultation.DoctorName) == "" {
		return errors.Validation("nome_medico", "is required")
	}
	if consultation.ScheduledAt == nil {
		return errors.Validation("data_hora", "is required")
	}
	return nil
}
