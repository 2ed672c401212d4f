package vaccines

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

const vaccinesCollectionName = "vacinas"

type Repository interface {
	Create(ctx context.Context, vaccine *Vaccine) (*Vaccine, error)
	Get(ctx context.Context, id int64) (*Vaccine, error)
	ListForProfile(ctx context.Context, profileId int64, pagination store.Pagination) ([]*Vaccine, error)
	Update(ctx context.Context, id int64, vaccine *Vaccine) (*Vaccine, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllForProfile(ctx context.Context, profileId int64) error
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(vaccinesCollectionName),
		sequence:   store.NewSequence(db),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
	sequence   *store.Sequence
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "perfil_id", Value: 1},
			},
			Options: options.Index().
				SetName("ProfileVaccines"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, vaccine *Vaccine) (*Vaccine, error) {
	id, err := r.sequence.Next(ctx, vaccinesCollectionName)
	if err != nil {
		return nil, err
	}
	vaccine.Id = id

	if _, err := r.collection.InsertOne(ctx, vaccine); err != nil {
		return nil, fmt.Errorf("error creating vaccine: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *repository) Get(ctx context.Context, id int64) (*Vaccine, error) {
	vaccine := &Vaccine{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(vaccine)
	if err == mongo.ErrNoDocuments {
		return nil, errors.RecordNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching vaccine: %w", err)
	}

	return vaccine, nil
}

func (r *repository) ListForProfile(ctx context.Context, profileId int64, pagination store.Pagination) ([]*Vaccine, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(bson.D{{Key: "data_aplicacao", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"perfil_id": profileId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing vaccines: %w", err)
	}

	var vaccines []*Vaccine
	if err = cursor.All(ctx, &vaccines); err != nil {
		return nil, fmt.Errorf("error decoding vaccines: %w", err)
	}

	return vaccines, nil
}

func (r *repository) Update(ctx context.Context, id int64, vaccine *Vaccine) (*Vaccine, error) {
	// Identifier and owner pointer never change through updates; both are
	// zeroed so omitempty keeps them out of the $set document.
	doc := *vaccine
	doc.Id = 0
	doc.ProfileId = 0

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": doc}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.RecordNotFound
		}
		return nil, fmt.Errorf("error updating vaccine: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting vaccine: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.RecordNotFound
	}

	return nil
}

func (r *repository) DeleteAllForProfile(ctx context.Context, profileId int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"perfil_id": profileId})
	if err != nil {
		return fmt.Errorf("error deleting vaccines for profile: %w", err)
	}

	return nil
}
