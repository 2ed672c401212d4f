package profiles

import (
	"context"
	"time"

	"github.com/mohae/deepcopy"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/measurements"
	"github.com/LuizaMunis/HealthCare-sub000/store"
)

// ProfileDataDeleter removes every record a family holds for a profile.
// Each record family registers one into the "profileDeleters" group so
// deleting a profile cascades to all of its descendants.
type ProfileDataDeleter interface {
	DeleteAllForProfile(ctx context.Context, profileId int64) error
}

type ServiceParams struct {
	fx.In

	Repo     Repository
	DbClient *mongo.Client
	Deleters []ProfileDataDeleter `group:"profileDeleters"`
	Logger   *zap.SugaredLogger
}

type service struct {
	repo     Repository
	dbClient *mongo.Client
	deleters []ProfileDataDeleter
	logger   *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(p ServiceParams) (Service, error) {
	return &service{
		repo:     p.Repo,
		dbClient: p.DbClient,
		deleters: p.Deleters,
		logger:   p.Logger,
	}, nil
}

func (s *service) Create(ctx context.Context, userId int64, create *NewProfile) (*Profile, error) {
	profile := &Profile{
		UserId:    userId,
		BirthDate: create.BirthDate,
		Phone:     create.Phone,
		Gender:    create.Gender,
		Cpf:       create.Cpf,
		WeightKg:  create.WeightKg,
		HeightCm:  create.HeightCm,
		UpdatedAt: time.Now().UTC(),
	}
	normalize(profile)
	if err := validate(profile); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("profile completed", "userId", userId, "profileId", created.Id)
	return created, nil
}

func (s *service) GetByUserId(ctx context.Context, userId int64) (*Profile, error) {
	return s.repo.GetByUserId(ctx, userId)
}

func (s *service) Update(ctx context.Context, userId int64, patch *ProfileUpdate) (*Profile, error) {
	// Missing profile takes precedence over every payload complaint.
	existing, err := s.repo.GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, errors.EmptyPatch
	}

	merged := deepcopy.Copy(existing).(*Profile)
	applyPatch(merged, patch)
	normalize(merged)
	if err := validate(merged); err != nil {
		return nil, err
	}
	merged.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, userId, merged)
}

func (s *service) Delete(ctx context.Context, userId int64) error {
	profile, err := s.repo.GetByUserId(ctx, userId)
	if err != nil {
		return err
	}

	_, err = store.WithTransaction(ctx, s.dbClient, func(sessCtx mongo.SessionContext) (interface{}, error) {
		for _, deleter := range s.deleters {
			if err := deleter.DeleteAllForProfile(sessCtx, profile.Id); err != nil {
				return nil, err
			}
		}
		return nil, s.repo.Delete(sessCtx, profile.Id)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("profile deleted with all descendant records", "userId", userId, "profileId", profile.Id)
	return nil
}

func (s *service) BodyMassIndex(ctx context.Context, userId int64) (*measurements.BMIReport, error) {
	profile, err := s.repo.GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	return measurements.ClassifyBMI(profile.WeightKg, profile.HeightCm), nil
}

func applyPatch(profile *Profile, patch *ProfileUpdate) {
	if patch.BirthDate != nil {
		profile.BirthDate = patch.BirthDate
	}
	if patch.Phone != nil {
		profile.Phone = patch.Phone
	}
	if patch.Gender != nil {
		profile.Gender = patch.Gender
	}
	if patch.Cpf != nil {
		profile.Cpf = patch.Cpf
	}
	if patch.WeightKg != nil {
		profile.WeightKg = patch.WeightKg
	}
	if patch.HeightCm != nil {
		profile.HeightCm = patch.HeightCm
	}
}
