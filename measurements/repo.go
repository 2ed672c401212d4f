package measurements

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
	bloodPressureCollectionName = "pressao_arterial"
	heartRateCollectionName     = "frequencia_cardiaca"
	temperatureCollectionName   = "temperatura"
)

// The three reading families have identical persistence shapes, so they share
// one generic repository parameterized by the document type.
type Repository[PT Reading] interface {
	Create(ctx context.Context, reading PT) (PT, error)
	Get(ctx context.Context, id int64) (PT, error)
	ListForProfile(ctx context.Context, profileId int64, pagination store.Pagination) ([]PT, error)
	AllForProfile(ctx context.Context, profileId int64) ([]PT, error)
	Update(ctx context.Context, id int64, reading PT) (PT, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllForProfile(ctx context.Context, profileId int64) error
}

type BloodPressureRepository = Repository[*BloodPressureReading]
type HeartRateRepository = Repository[*HeartRateReading]
type TemperatureRepository = Repository[*TemperatureReading]

func NewBloodPressureRepository(db *mongo.Database, lifecycle fx.Lifecycle) (BloodPressureRepository, error) {
	return newRepository[BloodPressureReading, *BloodPressureReading](db, lifecycle, bloodPressureCollectionName)
}

func NewHeartRateRepository(db *mongo.Database, lifecycle fx.Lifecycle) (HeartRateRepository, error) {
	return newRepository[HeartRateReading, *HeartRateReading](db, lifecycle, heartRateCollectionName)
}

func NewTemperatureRepository(db *mongo.Database, lifecycle fx.Lifecycle) (TemperatureRepository, error) {
	return newRepository[TemperatureReading, *TemperatureReading](db, lifecycle, temperatureCollectionName)
}

type readingPtr[T any] interface {
	Reading
	*T
}

type repository[T any, PT readingPtr[T]] struct {
	collection   *mongo.Collection
	sequence     *store.Sequence
	sequenceName string
}

func newRepository[T any, PT readingPtr[T]](db *mongo.Database, lifecycle fx.Lifecycle, collectionName string) (Repository[PT], error) {
	repo := &repository[T, PT]{
		collection:   db.Collection(collectionName),
		sequence:     store.NewSequence(db),
		sequenceName: collectionName,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

func (r *repository[T, PT]) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "perfil_id", Value: 1},
				{Key: "data_medicao", Value: -1},
			},
			Options: options.Index().
				SetName("ProfileReadings"),
		},
	})
	return err
}

func (r *repository[T, PT]) Create(ctx context.Context, reading PT) (PT, error) {
	id, err := r.sequence.Next(ctx, r.sequenceName)
	if err != nil {
		return nil, err
	}
	reading.SetId(id)

	if _, err := r.collection.InsertOne(ctx, reading); err != nil {
		return nil, fmt.Errorf("error creating %s reading: %w", r.sequenceName, err)
	}

	return r.Get(ctx, id)
}

func (r *repository[T, PT]) Get(ctx context.Context, id int64) (PT, error) {
	reading := PT(new(T))
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(reading)
	if err == mongo.ErrNoDocuments {
		return nil, errors.RecordNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching %s reading: %w", r.sequenceName, err)
	}

	return reading, nil
}

func (r *repository[T, PT]) ListForProfile(ctx context.Context, profileId int64, pagination store.Pagination) ([]PT, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(bson.D{{Key: "data_medicao", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"perfil_id": profileId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing %s readings: %w", r.sequenceName, err)
	}

	var readings []PT
	if err = cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("error decoding %s readings: %w", r.sequenceName, err)
	}

	return readings, nil
}

// AllForProfile returns every reading of the profile. Report aggregation uses
// it so averages are never computed over a truncated page.
func (r *repository[T, PT]) AllForProfile(ctx context.Context, profileId int64) ([]PT, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"perfil_id": profileId})
	if err != nil {
		return nil, fmt.Errorf("error listing %s readings: %w", r.sequenceName, err)
	}

	var readings []PT
	if err = cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("error decoding %s readings: %w", r.sequenceName, err)
	}

	return readings, nil
}

func (r *repository[T, PT]) Update(ctx context.Context, id int64, reading PT) (PT, error) {
	// Identifier and owner pointer never change through updates; both are
	// zeroed so omitempty keeps them out of the $set document.
	clone := *(*T)(reading)
	doc := PT(&clone)
	doc.SetId(0)
	doc.SetProfileId(0)

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": doc}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.RecordNotFound
		}
		return nil, fmt.Errorf("error updating %s reading: %w", r.sequenceName, err)
	}

	return r.Get(ctx, id)
}

func (r *repository[T, PT]) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting %s reading: %w", r.sequenceName, err)
	}
	if res.DeletedCount == 0 {
		return errors.RecordNotFound
	}

	return nil
}

func (r *repository[T, PT]) DeleteAllForProfile(ctx context.Context, profileId int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"perfil_id": profileId})
	if err != nil {
		return fmt.Errorf("error deleting %s readings for profile: %w", r.sequenceName, err)
	}

	return nil
}
