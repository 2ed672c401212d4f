package medications

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
	medications MedicationRepository
	useLogs     UseLogRepository
	dbClient    *mongo.Client
	guard       authz.Guard
	logger      *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(medications MedicationRepository, useLogs UseLogRepository, dbClient *mongo.Client, guard authz.Guard, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		medications: medications,
		useLogs:     useLogs,
		dbClient:    dbClient,
		guard:       guard,
		logger:      logger,
	}, nil
}

func (s *service) CreateMedication(ctx context.Context, userId int64, create *MedicationPayload) (*Medication, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	medication := &Medication{
		ProfileId:      profileId,
		Name:           create.Name,
		Dosage:         create.Dosage,
		Unit:           create.Unit,
		Form:           create.Form,
		FrequencyHours: create.FrequencyHours,
		StartDate:      create.StartDate,
		DurationDays:   create.DurationDays,
		ContinuousUse:  create.ContinuousUse,
		ReminderActive: create.ReminderActive,
	}
	if err := validateMedication(medication); err != nil {
		return nil, err
	}

	return s.medications.Create(ctx, medication)
}

func (s *service) ListMedications(ctx context.Context, userId int64, pagination store.Pagination) ([]*Medication, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.medications.ListForProfile(ctx, profileId, pagination)
}

func (s *service) GetMedication(ctx context.Context, userId int64, id int64) (*Medication, error) {
	return s.getOwnedMedication(ctx, userId, id)
}

func (s *service) UpdateMedication(ctx context.Context, userId int64, id int64, patch *MedicationPayload) (*Medication, error) {
	existing, err := s.getOwnedMedication(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, errors.EmptyPatch
	}

	merged := deepcopy.Copy(existing).(*Medication)
	applyMedicationPatch(merged, patch)
	if err := validateMedication(merged); err != nil {
		return nil, err
	}

	return s.medications.Update(ctx, id, merged)
}

func (s *service) DeleteMedication(ctx context.Context, userId int64, id int64) error {
	if _, err := s.getOwnedMedication(ctx, userId, id); err != nil {
		return err
	}

	_, err := store.WithTransaction(ctx, s.dbClient, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if err := s.useLogs.DeleteAllForMedication(sessCtx, id); err != nil {
			return nil, err
		}
		return nil, s.medications.Delete(sessCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("medication deleted with all of its use logs", "userId", userId, "medicationId", id)
	return nil
}

func (s *service) CreateUseLog(ctx context.Context, userId int64, medicationId int64, create *UseLogPayload) (*UseLog, error) {
	// Nested create authorizes the parent medication before anything is written.
	if _, err := s.guard.Authorize(ctx, userId, authz.Ref{Type: authz.EntityMedication, Id: medicationId}); err != nil {
		return nil, err
	}

	log := &UseLog{
		MedicationId: medicationId,
		TakenAt:      create.TakenAt,
		Status:       create.Status,
	}
	if log.TakenAt == nil {
		now := time.Now().UTC()
		log.TakenAt = &now
	}
	normalizeUseLog(log)
	if err := validateUseLog(log); err != nil {
		return nil, err
	}

	return s.useLogs.Create(ctx, log)
}

func (s *service) ListUseLogs(ctx context.Context, userId int64, medicationId int64, pagination store.Pagination) ([]*UseLog, error) {
	if _, err := s.guard.Authorize(ctx, userId, authz.Ref{Type: authz.EntityMedication, Id: medicationId}); err != nil {
		return nil, err
	}
	return s.useLogs.ListForMedication(ctx, medicationId, pagination)
}

func (s *service) GetUseLog(ctx context.Context, userId int64, id int64) (*UseLog, error) {
	return s.getOwnedUseLog(ctx, userId, id)
}

func (s *service) UpdateUseLog(ctx context.Context, userId int64, id int64, patch *UseLogPayload) (*UseLog, error) {
	existing, err := s.getOwnedUseLog(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, errors.EmptyPatch
	}

	merged := deepcopy.Copy(existing).(*UseLog)
	if patch.TakenAt != nil {
		merged.TakenAt = patch.TakenAt
	}
	if patch.Status != nil {
		merged.Status = patch.Status
	}
	normalizeUseLog(merged)
	if err := validateUseLog(merged); err != nil {
		return nil, err
	}

	return s.useLogs.Update(ctx, id, merged)
}

func (s *service) DeleteUseLog(ctx context.Context, userId int64, id int64) error {
	if _, err := s.getOwnedUseLog(ctx, userId, id); err != nil {
		return err
	}
	return s.useLogs.Delete(ctx, id)
}

// DeleteAllForProfile removes the profile's medications together with every
// use log hanging off them. It runs inside the caller's transaction when the
// profile itself is being deleted.
func (s *service) DeleteAllForProfile(ctx context.Context, profileId int64) error {
	ids, err := s.medications.IdsForProfile(ctx, profileId)
	if err != nil {
		return err
	}
	if err := s.useLogs.DeleteAllForMedications(ctx, ids); err != nil {
		return err
	}
	return s.medications.DeleteAllForProfile(ctx, profileId)
}

// A caller without a profile sees ProfileNotFound before the record lookup
// can reveal whether the id exists.
func (s *service) getOwnedMedication(ctx context.Context, userId int64, id int64) (*Medication, error) {
	if _, err := s.guard.ResolveProfile(ctx, userId); err != nil {
		return nil, err
	}

	medication, err := s.medications.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.Authorize(ctx, userId, authz.Ref{Type: authz.EntityProfile, Id: medication.ProfileId}); err != nil {
		return nil, err
	}
	return medication, nil
}

func (s *service) getOwnedUseLog(ctx context.Context, userId int64, id int64) (*UseLog, error) {
	if _, err := s.guard.ResolveProfile(ctx, userId); err != nil {
		return nil, err
	}

	log, err := s.useLogs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.Authorize(ctx, userId, authz.Ref{Type: authz.EntityMedication, Id: log.MedicationId}); err != nil {
		return nil, err
	}
	return log, nil
}

func applyMedicationPatch(medication *Medication, patch *MedicationPayload) {
	if patch.Name != nil {
		medication.Name = patch.Name
	}
	if patch.Dosage != nil {
		medication.Dosage = patch.Dosage
	}
	if patch.Unit != nil {
		medication.Unit = patch.Unit
	}
	if patch.Form != nil {
		medication.Form = patch.Form
	}
	if patch.FrequencyHours != nil {
		medication.FrequencyHours = patch.FrequencyHours
	}
	if patch.StartDate != nil {
		medication.StartDate = patch.StartDate
	}
	if patch.DurationDays != nil {
		medication.DurationDays = patch.DurationDays
	}
	if patch.ContinuousUse != nil {
		medication.ContinuousUse = patch.ContinuousUse
	}
	if patch.ReminderActive != nil {
		medication.ReminderActive = patch.ReminderActive
	}
}
