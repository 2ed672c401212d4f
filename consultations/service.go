package consultations

import (
	"context"

	"github.com/mohae/deepcopy"
	"go.uber.org/zap"

	"github.com/LuizaMunis/HealthCare-sub000/authz"
	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/store"
)

type service struct {
	repo   Repository
	guard  authz.Guard
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, guard authz.Guard, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		guard:  guard,
		logger: logger,
	}, nil
}

func (s *service) Create(ctx context.Context, userId int64, create *ConsultationPayload) (*Consultation, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	consultation := &Consultation{
		ProfileId:   profileId,
		DoctorName:  create.DoctorName,
		Specialty:   create.Specialty,
		ScheduledAt: create.ScheduledAt,
		Location:    create.Location,
		Notes:       create.Notes,
	}
	if err := validate(consultation); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, consultation)
}

func (s *service) List(ctx context.Context, userId int64, pagination store.Pagination) ([]*Consultation, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.repo.ListForProfile(ctx, profileId, pagination)
}

func (s *service) Get(ctx context.Context, userId int64, id int64) (*Consultation, error) {
	return s.getOwned(ctx, userId, id)
}

func (s *service) Update(ctx context.Context, userId int64, id int64, patch *ConsultationPayload) (*Consultation, error) {
	existing, err := s.getOwned(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, errors.EmptyPatch
	}

	merged := deepcopy.Copy(existing).(*Consultation)
	if patch.DoctorName != nil {
		merged.DoctorName = patch.DoctorName
	}
	if patch.Specialty != nil {
		merged.Specialty = patch.Specialty
	}
	if patch.ScheduledAt != nil {
		merged.ScheduledAt = patch.ScheduledAt
	}
	if patch.Location != nil {
		merged.Location = patch.Location
	}
	if patch.Notes != nil {
		merged.Notes = patch.Notes
	}
	if err := validate(merged); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, merged)
}

func (s *service) Delete(ctx context.Context, userId int64, id int64) error {
	if _, err := s.getOwned(ctx, userId, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) DeleteAllForProfile(ctx context.Context, profileId int64) error {
	return s.repo.DeleteAllForProfile(ctx, profileId)
}

// A caller without a profile sees ProfileNotFound before the record lookup
// can reveal whether the id exists.
func (s *service) getOwned(ctx context.Context, userId int64, id int64) (*Consultation, error) {
	if _, err := s.guard.ResolveProfile(ctx, userId); err != nil {
		return nil, err
	}

	consultation, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.Authorize(ctx, userId, authz.Ref{Type: authz.EntityProfile, Id: consultation.ProfileId}); err != nil {
		return nil, err
	}
	return consultation, nil
}
