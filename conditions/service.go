package conditions

import (
	"context"
	"time"

	"github.com/mohae/deepcopy"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/LuizaMunis/HealthCare-sub000/authz"
	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/store"
)

type service struct {
	conditions ConditionRepository
	symptoms   SymptomRepository
	dbClient   *mongo.Client
	guard      authz.Guard
	logger     *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(conditions ConditionRepository, symptoms SymptomRepository, dbClient *mongo.Client, guard authz.Guard, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		conditions: conditions,
		symptoms:   symptoms,
		dbClient:   dbClient,
		guard:      guard,
		logger:     logger,
	}, nil
}

func (s *service) CreateCondition(ctx context.Context, userId int64, create *ConditionPayload) (*Condition, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	condition := &Condition{
		ProfileId:        profileId,
		Name:             create.Name,
		Type:             create.Type,
		DiagnosisDate:    create.DiagnosisDate,
		SymptomOnsetDate: create.SymptomOnsetDate,
		CureDate:         create.CureDate,
		Notes:            create.Notes,
	}
	if err := validateCondition(condition); err != nil {
		return nil, err
	}

	return s.conditions.Create(ctx, condition)
}

func (s *service) ListConditions(ctx context.Context, userId int64, pagination store.Pagination) ([]*Condition, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.conditions.ListForProfile(ctx, profileId, pagination)
}

func (s *service) GetCondition(ctx context.Context, userId int64, id int64) (*Condition, error) {
	return s.getOwnedCondition(ctx, userId, id)
}

func (s *service) UpdateCondition(ctx context.Context, userId int64, id int64, patch *ConditionPayload) (*Condition, error) {
	existing, err := s.getOwnedCondition(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, errors.EmptyPatch
	}

	merged := deepcopy.Copy(existing).(*Condition)
	applyConditionPatch(merged, patch)
	if err := validateCondition(merged); err != nil {
		return nil, err
	}

	return s.conditions.Update(ctx, id, merged)
}

func (s *service) DeleteCondition(ctx context.Context, userId int64, id int64) error {
	if _, err := s.getOwnedCondition(ctx, userId, id); err != nil {
		return err
	}

	_, err := store.WithTransaction(ctx, s.dbClient, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if err := s.symptoms.DeleteAllForCondition(sessCtx, id); err != nil {
			return nil, err
		}
		return nil, s.conditions.Delete(sessCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("condition deleted with all of its symptoms", "userId", userId, "conditionId", id)
	return nil
}

func (s *service) CreateSymptom(ctx context.Context, userId int64, conditionId int64, create *SymptomPayload) (*Symptom, error) {
	// Nested create authorizes the parent condition before anything is written.
	if _, err := s.guard.Authorize(ctx, userId, authz.Ref{Type: authz.EntityCondition, Id: conditionId}); err != nil {
		return nil, err
	}

	symptom := &Symptom{
		ConditionId: conditionId,
		Description: create.Description,
		Intensity:   create.Intensity,
		OccurredAt:  create.OccurredAt,
	}
	if symptom.OccurredAt == nil {
		now := time.Now().UTC()
		symptom.OccurredAt = &now
	}
	normalizeSymptom(symptom)
	if err := validateSymptom(symptom); err != nil {
		return nil, err
	}

	return s.symptoms.Create(ctx, symptom)
}

func (s *service) ListSymptoms(ctx context.Context, userId int64, conditionId int64, pagination store.Pagination) ([]*Symptom, error) {
	if _, err := s.guard.Authorize(ctx, userId, authz.Ref{Type: authz.EntityCondition, Id: conditionId}); err != nil {
		return nil, err
	}
	return s.symptoms.ListForCondition(ctx, conditionId, pagination)
}

func (s *service) GetSymptom(ctx context.Context, userId int64, id int64) (*Symptom, error) {
	return s.getOwnedSymptom(ctx, userId, id)
}

func (s *service) UpdateSymptom(ctx context.Context, userId int64, id int64, patch *SymptomPayload) (*Symptom, error) {
	existing, err := s.getOwnedSymptom(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, errors.EmptyPatch
	}

	merged := deepcopy.Copy(existing).(*Symptom)
	if patch.Description != nil {
		merged.Description = patch.Description
	}
	if patch.Intensity != nil {
		merged.Intensity = patch.Intensity
	}
	if patch.OccurredAt != nil {
		merged.OccurredAt = patch.OccurredAt
	}
	normalizeSymptom(merged)
	if err := validateSymptom(merged); err != nil {
		return nil, err
	}

	return s.symptoms.Update(ctx, id, merged)
}

func (s *service) DeleteSymptom(ctx context.Context, userId int64, id int64) error {
	if _, err := s.getOwnedSymptom(ctx, userId, id); err != nil {
		return err
	}
	return s.symptoms.Delete(ctx, id)
}

// DeleteAllForProfile removes the profile's conditions together with every
// symptom hanging off them. It runs inside the caller's transaction when the
// profile itself is being deleted.
func (s *service) DeleteAllForProfile(ctx context.Context, profileId int64) error {
	ids, err := s.conditions.IdsForProfile(ctx, profileId)
	if err != nil {
		return err
	}
	if err := s.symptoms.DeleteAllForConditions(ctx, ids); err != nil {
		return err
	}
	return s.conditions.DeleteAllForProfile(ctx, profileId)
}

// A caller without a profile sees ProfileNotFound before the record lookup
// can reveal whether the id exists.
func (s *service) getOwnedCondition(ctx context.Context, userId int64, id int64) (*Condition, error) {
	if _, err := s.guard.ResolveProfile(ctx, userId); err != nil {
		return nil, err
	}

	condition, err := s.conditions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.Authorize(ctx, userId, authz.Ref{Type: authz.EntityProfile, Id: condition.ProfileId}); err != nil {
		return nil, err
	}
	return condition, nil
}

func (s *service) getOwnedSymptom(ctx context.Context, userId int64, id int64) (*Symptom, error) {
	if _, err := s.guard.ResolveProfile(ctx, userId); err != nil {
		return nil, err
	}

	symptom, err := s.symptoms.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.Authorize(ctx, userId, authz.Ref{Type: authz.EntityCondition, Id: symptom.ConditionId}); err != nil {
		return nil, err
	}
	return symptom, nil
}

func applyConditionPatch(condition *Condition, patch *ConditionPayload) {
	if patch.Name != nil {
		condition.Name = patch.Name
	}
	if patch.Type != nil {
		condition.Type = patch.Type
	}
	if patch.DiagnosisDate != nil {
		condition.DiagnosisDate = patch.DiagnosisDate
	}
	if patch.SymptomOnsetDate != nil {
		condition.SymptomOnsetDate = patch.SymptomOnsetDate
	}
	if patch.CureDate != nil {
		condition.CureDate = patch.CureDate
	}
	if patch.Notes != nil {
		condition.Notes = patch.Notes
	}
}
