package vaccines

import (
	"strings"
	"time"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
)

const appliedDateLayout = "2006-01-02"

func validate(vaccine *Vaccine) error {
	if vaccine.Name == nil || strings.TrimSpace(*vaccine.Name) == "" {
		return errors.Validation("nome", "is required")
	}
	if vaccine.AppliedDate == nil {
		return errors.Validation("data_aplicacao", "is required")
	}
	if _, err := time.Parse(appliedDateLayout, *vaccine.AppliedDate); err != nil {
		return errors.Validation("data_aplicacao", "must be a date in YYYY-MM-DD format")
	}
	return nil
}
