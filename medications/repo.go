package medications

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/store"
)

const (
	medicationsCollectionName = "medicamentos"
	useLogsCollectionName     = "registros_uso"
)

type MedicationRepository interface {
	Create(ctx context.Context, medication *Medication) (*Medication, error)
	Get(ctx context.Context, id int64) (*Medication, error)
	ListForProfile(ctx context.Context, profileId int64, pagination store.Pagination) ([]*Medication, error)
	IdsForProfile(ctx context.Context, profileId int64) ([]int64, error)
	Update(ctx context.Context, id int64, medication *Medication) (*Medication, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllForProfile(ctx context.Context, profileId int64) error

	// MedicationParent makes the repository usable as the ownership chain
	// resolver for medications and their use logs.
	MedicationParent(ctx context.Context, id int64) (int64, error)
}

type UseLogRepository interface {
	Create(ctx context.Context, log *UseLog) (*UseLog, error)
	Get(ctx context.Context, id int64) (*UseLog, error)
	ListForMedication(ctx context.Context, medicationId int64, pagination store.Pagination) ([]*UseLog, error)
	Update(ctx context.Context, id int64, log *UseLog) (*UseLog, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllForMedication(ctx context.Context, medicationId int64) error
	DeleteAllForMedications(ctx context.Context, medicationIds []int64) error
}

func NewMedicationRepository(db *mongo.Database, lifecycle fx.Lifecycle) (MedicationRepository, error) {
	repo := &medicationRepository{
		collection: db.Collection(medicationsCollectionName),
		sequence:   store.NewSequence(db),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type medicationRepository struct {
	collection *mongo.Collection
	sequence   *store.Sequence
}

func (r *medicationRepository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "perfil_id", Value: 1},
			},
			Options: options.Index().
				SetName("ProfileMedications"),
		},
	})
	return err
}

func (r *medicationRepository) Create(ctx context.Context, medication *Medication) (*Medication, error) {
	id, err := r.sequence.Next(ctx, medicationsCollectionName)
	if err != nil {
		return nil, err
	}
	medication.Id = id

	if _, err := r.collection.InsertOne(ctx, medication); err != nil {
		return nil, fmt.Errorf("error creating medication: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *medicationRepository) Get(ctx context.Context, id int64) (*Medication, error) {
	medication := &Medication{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(medication)
	if err == mongo.ErrNoDocuments {
		return nil, errors.RecordNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching medication: %w", err)
	}

	return medication, nil
}

func (r *medicationRepository) ListForProfile(ctx context.Context, profileId int64, pagination store.Pagination) ([]*Medication, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"perfil_id": profileId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing medications: %w", err)
	}

	var medications []*Medication
	if err = cursor.All(ctx, &medications); err != nil {
		return nil, fmt.Errorf("error decoding medications: %w", err)
	}

	return medications, nil
}

func (r *medicationRepository) IdsForProfile(ctx context.Context, profileId int64) ([]int64, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"perfil_id": profileId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing medication ids: %w", err)
	}

	var docs []struct {
		Id int64 `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding medication ids: %w", err)
	}

	ids := make([]int64, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.Id)
	}
	return ids, nil
}

func (r *medicationRepository) Update(ctx context.Context, id int64, medication *Medication) (*Medication, error) {
	// Identifier and owner pointer never change through updates; both are
	// zeroed so omitempty keeps them out of the $set document.
	doc := *medication
	doc.Id = 0
	doc.ProfileId = 0

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": doc}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.RecordNotFound
		}
		return nil, fmt.Errorf("error updating medication: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *medicationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting medication: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.RecordNotFound
	}

	return nil
}

func (r *medicationRepository) DeleteAllForProfile(ctx context.Context, profileId int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"perfil_id": profileId})
	if err != nil {
		return fmt.Errorf("error deleting medications for profile: %w", err)
	}

	return nil
}

func (r *medicationRepository) MedicationParent(ctx context.Context, id int64) (int64, error) {
	medication, err := r.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	return medication.ProfileId, nil
}

func NewUseLogRepository(db *mongo.Database, lifecycle fx.Lifecycle) (UseLogRepository, error) {
	repo := &useLogRepository{
		collection: db.Collection(useLogsCollectionName),
		sequence:   store.NewSequence(db),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type useLogRepository struct {
	collection *mongo.Collection
	sequence   *store.Sequence
}

func (r *useLogRepository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "medicamento_id", Value: 1},
				{Key: "data_hora", Value: -1},
			},
			Options: options.Index().
				SetName("MedicationUseLogs"),
		},
	})
	return err
}

func (r *useLogRepository) Create(ctx context.Context, log *UseLog) (*UseLog, error) {
	id, err := r.sequence.Next(ctx, useLogsCollectionName)
	if err != nil {
		return nil, err
	}
	log.Id = id

	if _, err := r.collection.InsertOne(ctx, log); err != nil {
		return nil, fmt.Errorf("error creating use log: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *useLogRepository) Get(ctx context.Context, id int64) (*UseLog, error) {
	log := &UseLog{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(log)
	if err == mongo.ErrNoDocuments {
		return nil, errors.RecordNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching use log: %w", err)
	}

	return log, nil
}

func (r *useLogRepository) ListForMedication(ctx context.Context, medicationId int64, pagination store.Pagination) ([]*UseLog, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(bson.D{{Key: "data_hora", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"medicamento_id": medicationId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing use logs: %w", err)
	}

	var logs []*UseLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("error decoding use logs: %w", err)
	}

	return logs, nil
}

func (r *useLogRepository) Update(ctx context.Context, id int64, log *UseLog) (*UseLog, error) {
	// Identifier and owner pointer never change through updates; both are
	// zeroed so omitempty keeps them out of the $set document.
	doc := *log
	doc.Id = 0
	doc.MedicationId = 0

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": doc}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.RecordNotFound
		}
		return nil, fmt.Errorf("error updating use log: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *useLogRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting use log: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.RecordNotFound
	}

	return nil
}

func (r *useLogRepository) DeleteAllForMedication(ctx context.Context, medicationId int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"medicamento_id": medicationId})
	if err != nil {
		return fmt.Errorf("error deleting use logs for medication: %w", err)
	}

	return nil
}

func (r *useLogRepository) DeleteAllForMedications(ctx context.Context, medicationIds []int64) error {
	if len(medicationIds) == 0 {
		return nil
	}

	_, err := r.collection.DeleteMany(ctx, bson.M{"medicamento_id": bson.M{"$in": medicationIds}})
	if err != nil {
		return fmt.Errorf("error deleting use logs for medications: %w", err)
	}

	return nil
}
