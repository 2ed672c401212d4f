package authz

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
)

type EntityType string

const (
	EntityProfile          EntityType = "profile"
	EntityCondition        EntityType = "condition"
	EntitySymptom          EntityType = "symptom"
	EntityMedication       EntityType = "medication"
	EntityMedicationUseLog EntityType = "medication_use_log"
	EntityVaccine          EntityType = "vaccine"
	EntityConsultation     EntityType = "consultation"
	EntityBloodPressure    EntityType = "blood_pressure_reading"
	EntityHeartRate        EntityType = "heart_rate_reading"
	EntityTemperature      EntityType = "temperature_reading"
)

// parentOf is the ownership chain descriptor. Every entity points at the type
// its parent reference resolves to; the chain always terminates at the profile.
var parentOf = map[EntityType]EntityType{
	EntityCondition:        EntityProfile,
	EntitySymptom:          EntityCondition,
	EntityMedication:       EntityProfile,
	EntityMedicationUseLog: EntityMedication,
	EntityVaccine:          EntityProfile,
	EntityConsultation:     EntityProfile,
	EntityBloodPressure:    EntityProfile,
	EntityHeartRate:        EntityProfile,
	EntityTemperature:      EntityProfile,
}

// Ref is a parent reference taken from a record, e.g. {EntityCondition, 12}
// for a symptom that belongs to condition 12.
type Ref struct {
	Type EntityType
	Id   int64
}

//go:generate mockgen --build_flags=--mod=mod -source=./guard.go -destination=./test/mock_guard.go -package test

// ProfileResolver maps an authenticated user to the single profile they own.
// It must fail with errors.ProfileNotFound when the user has not completed
// a profile yet.
type ProfileResolver interface {
	ProfileIdForUser(ctx context.Context, userId int64) (int64, error)
}

// ConditionResolver returns the profile id a condition belongs to.
type ConditionResolver interface {
	ConditionParent(ctx context.Context, id int64) (int64, error)
}

// MedicationResolver returns the profile id a medication belongs to.
type MedicationResolver interface {
	MedicationParent(ctx context.Context, id int64) (int64, error)
}

// Guard enforces that every record operation stays within the caller's own
// profile. Services fetch the target record themselves and pass its parent
// reference here; the guard walks the remaining chain and compares the owning
// profile with the one resolved for the caller.
type Guard interface {
	ResolveProfile(ctx context.Context, userId int64) (int64, error)
	Authorize(ctx context.Context, userId int64, ref Ref) (int64, error)
}

type resolveParent func(ctx context.Context, id int64) (int64, error)

type guard struct {
	profiles  ProfileResolver
	resolvers map[EntityType]resolveParent
	logger    *zap.SugaredLogger
}

var _ Guard = &guard{}

func NewGuard(profiles ProfileResolver, conditions ConditionResolver, medications MedicationResolver, logger *zap.SugaredLogger) (Guard, error) {
	return &guard{
		profiles: profiles,
		resolvers: map[EntityType]resolveParent{
			EntityCondition:  conditions.ConditionParent,
			EntityMedication: medications.MedicationParent,
		},
		logger: logger,
	}, nil
}

func (g *guard) ResolveProfile(ctx context.Context, userId int64) (int64, error) {
	return g.profiles.ProfileIdForUser(ctx, userId)
}

func (g *guard) Authorize(ctx context.Context, userId int64, ref Ref) (int64, error) {
	profileId, err := g.ResolveProfile(ctx, userId)
	if err != nil {
		return 0, err
	}

	cur := ref
	for cur.Type != EntityProfile {
		parent, ok := parentOf[cur.Type]
		if !ok {
			return 0, fmt.Errorf("no ownership chain registered for entity type %q", cur.Type)
		}
		resolve, ok := g.resolvers[cur.Type]
		if !ok {
			return 0, fmt.Errorf("no parent resolver registered for entity type %q", cur.Type)
		}

		parentId, err := resolve(ctx, cur.Id)
		if err != nil {
			return 0, err
		}
		cur = Ref{Type: parent, Id: parentId}
	}

	if cur.Id != profileId {
		g.logger.Debugw("denying access to record outside of the caller's profile",
			"userId", userId, "profileId", profileId, "ref", ref)
		return 0, errors.AccessDenied
	}

	return profileId, nil
}
