package profiles

import (
	"regexp"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
)

const (
	birthDateLayout = "2006-01-02"

	minWeightKg = 20.0
	maxWeightKg = 500.0
	minHeightCm = 50
	maxHeightCm = 250
	minAgeYears = 13
	maxAgeYears = 120
)

var (
	genders   = mapset.NewSet(GenderMale, GenderFemale, GenderOther, GenderUnspecified)
	nonDigits = regexp.MustCompile(`\D`)
)

// validate checks the full (merged) state of a profile, so partial updates are
// validated against the document they will produce, not against the patch alone.
func validate(profile *Profile) error {
	if profile.BirthDate == nil {
		return errors.Validation("data_nascimento", "is required")
	}
	if err := validateBirthDate(*profile.BirthDate); err != nil {
		return err
	}
	if profile.Phone != nil {
		if err := validatePhone(*profile.Phone); err != nil {
			return err
		}
	}
	if profile.Gender != nil && !genders.Contains(strings.ToUpper(*profile.Gender)) {
		return errors.Validation("genero", "is not a valid gender")
	}
	if profile.Cpf != nil {
		if err := ValidateCpf(*profile.Cpf); err != nil {
			return err
		}
	}
	if profile.WeightKg != nil && (*profile.WeightKg < minWeightKg || *profile.WeightKg > maxWeightKg) {
		return errors.Validation("peso", "must be between 20 and 500 kg")
	}
	if profile.HeightCm != nil && (*profile.HeightCm < minHeightCm || *profile.HeightCm > maxHeightCm) {
		return errors.Validation("altura", "must be between 50 and 250 cm")
	}
	return nil
}

func validateBirthDate(birthDate string) error {
	parsed, err := time.Parse(birthDateLayout, birthDate)
	if err != nil {
		return errors.Validation("data_nascimento", "must be a date in YYYY-MM-DD format")
	}

	age := ageInYears(parsed, time.Now())
	if age < 0 || age > maxAgeYears {
		return errors.Validation("data_nascimento", "age must be between 0 and 120 years")
	}
	if age < minAgeYears {
		return errors.Validation("data_nascimento", "user must be at least 13 years old")
	}
	return nil
}

func ageInYears(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.YearDay() < birthDate.YearDay() {
		age--
	}
	return age
}

// ValidateCpf accepts exactly 11 digits after stripping formatting. Sequences
// of a single repeated digit pass the length check but are not valid CPFs, so
// they are rejected explicitly. A full checksum validation is intentionally
// not performed, matching the behavior the mobile clients rely on.
func ValidateCpf(cpf string) error {
	digits := nonDigits.ReplaceAllString(cpf, "")
	if len(digits) != 11 {
		return errors.Validation("cpf", "must contain exactly 11 digits")
	}
	if strings.Count(digits, digits[:1]) == len(digits) {
		return errors.Validation("cpf", "is not a valid document number")
	}
	return nil
}

func validatePhone(phone string) error {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) < 10 || len(digits) > 11 {
		return errors.Validation("telefone", "must contain 10 or 11 digits")
	}
	return nil
}

func normalize(profile *Profile) {
	if profile.Gender != nil {
		gender := strings.ToUpper(*profile.Gender)
		profile.Gender = &gender
	}
	if profile.Cpf != nil {
		cpf := nonDigits.ReplaceAllString(*profile.Cpf, "")
		profile.Cpf = &cpf
	}
	if profile.Phone != nil {
		phone := nonDigits.ReplaceAllString(*profile.Phone, "")
		profile.Phone = &phone
	}
}
