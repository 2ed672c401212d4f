package profiles

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
	profilesCollectionName = "perfis"
	profilesSequenceName   = "perfis"
)

type Repository interface {
	Create(ctx context.Context, profile *Profile) (*Profile, error)
	Get(ctx context.Context, id int64) (*Profile, error)
	GetByUserId(ctx context.Context, userId int64) (*Profile, error)
	ProfileIdForUser(ctx context.Context, userId int64) (int64, error)
	Update(ctx context.Context, userId int64, profile *Profile) (*Profile, error)
	Delete(ctx context.Context, id int64) error
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(profilesCollectionName),
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
				{Key: "usuario_id", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueProfileUser"),
		},
		{
			Keys: bson.D{
				{Key: "cpf", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetSparse(true).
				SetName("UniqueCpf"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, profile *Profile) (*Profile, error) {
	id, err := r.sequence.Next(ctx, profilesSequenceName)
	if err != nil {
		return nil, err
	}
	profile.Id = id

	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: profile already exists", errors.Duplicate)
		}
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *repository) Get(ctx context.Context, id int64) (*Profile, error) {
	profile := &Profile{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(profile)
	if err == mongo.ErrNoDocuments {
		return nil, errors.RecordNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}

	return profile, nil
}

func (r *repository) GetByUserId(ctx context.Context, userId int64) (*Profile, error) {
	profile := &Profile{}
	err := r.collection.FindOne(ctx, bson.M{"usuario_id": userId}).Decode(profile)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ProfileNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching profile by user: %w", err)
	}

	return profile, nil
}

func (r *repository) ProfileIdForUser(ctx context.Context, userId int64) (int64, error) {
	profile, err := r.GetByUserId(ctx, userId)
	if err != nil {
		return 0, err
	}

	return profile.Id, nil
}

func (r *repository) Update(ctx context.Context, userId int64, profile *Profile) (*Profile, error) {
	selector := bson.M{"usuario_id": userId}

	// Identifier and owner pointer never change through updates; both are
	// zeroed so omitempty keeps them out of the $set document.
	doc := *profile
	doc.Id = 0
	doc.UserId = 0
	update := bson.M{
		"$set": doc,
	}

	err := r.collection.FindOneAndUpdate(ctx, selector, update).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ProfileNotFound
		}
		if store.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: cpf is already in use", errors.Duplicate)
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	return r.GetByUserId(ctx, userId)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.RecordNotFound
	}

	return nil
}
