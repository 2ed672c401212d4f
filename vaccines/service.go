package vaccines

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

func (s *service) Create(ctx context.Context, userId int64, create *VaccinePayload) (*Vaccine, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	vaccine := &Vaccine{
		ProfileId:   profileId,
		Name:        create.Name,
		Dose:        create.Dose,
		AppliedDate: create.AppliedDate,
	}
	if err := validate(vaccine); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, vaccine)
}

func (s *service) List(ctx context.Context, userId int64, pagination store.Pagination) ([]*Vaccine, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.repo.ListForProfile(ctx, profileId, pagination)
}

func (s *service) Get(ctx context.Context, userId int64, id int64) (*Vaccine, error) {
	return s.getOwned(ctx, userId, id)
}

func (s *service) Update(ctx context.Context, userId int64, id int64, patch *VaccinePayload) (*Vaccine, error) {
	existing, err := s.getOwned(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, errors.EmptyPatch
	}

	merged := deepcopy.Copy(existing).(*Vaccine)
	if patch.Name != nil {
		merged.Name = patch.Name
	}
	if patch.Dose != nil {
		merged.Dose = patch.Dose
	}
	if patch.AppliedDate != nil {
		merged.AppliedDate = patch.AppliedDate
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
func (s *service) getOwned(ctx context.Context, userId int64, id int64) (*Vaccine, error) {
	if _, err := s.guard.ResolveProfile(ctx, userId); err != nil {
		return nil, err
	}

	vaccine, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.Authorize(ctx, userId, authz.Ref{Type: authz.EntityProfile, Id: vaccine.ProfileId}); err != nil {
		return nil, err
	}
	return vaccine, nil
}
