package users

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
	usersCollectionName = "users"
	usersSequenceName   = "users"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	Get(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(usersCollectionName),
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
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueEmail"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, user *User) (*User, error) {
	id, err := r.sequence.Next(ctx, usersSequenceName)
	if err != nil {
		return nil, err
	}
	user.Id = id

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: email is already registered", errors.Duplicate)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *repository) Get(ctx context.Context, id int64) (*User, error) {
	user := &User{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, errors.RecordNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, errors.RecordNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching user by email: %w", err)
	}

	return user, nil
}
