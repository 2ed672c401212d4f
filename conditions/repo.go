package conditions

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
	conditionsCollectionName = "doencas"
	symptomsCollectionName   = "sintomas"
)

type ConditionRepository interface {
	Create(ctx context.Context, condition *Condition) (*Condition, error)
	Get(ctx context.Context, id int64) (*Condition, error)
	ListForProfile(ctx context.Context, profileId int64, pagination store.Pagination) ([]*Condition, error)
	IdsForProfile(ctx context.Context, profileId int64) ([]int64, error)
	Update(ctx context.Context, id int64, condition *Condition) (*Condition, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllForProfile(ctx context.Context, profileId int64) error

	// ConditionParent makes the repository usable as the ownership chain
	// resolver for conditions and their symptoms.
	ConditionParent(ctx context.Context, id int64) (int64, error)
}

type SymptomRepository interface {
	Create(ctx context.Context, symptom *Symptom) (*Symptom, error)
	Get(ctx context.Context, id int64) (*Symptom, error)
	ListForCondition(ctx context.Context, conditionId int64, pagination store.Pagination) ([]*Symptom, error)
	Update(ctx context.Context, id int64, symptom *Symptom) (*Symptom, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllForCondition(ctx context.Context, conditionId int64) error
	DeleteAllForConditions(ctx context.Context, conditionIds []int64) error
}

func NewConditionRepository(db *mongo.Database, lifecycle fx.Lifecycle) (ConditionRepository, error) {
	repo := &conditionRepository{
		collection: db.Collection(conditionsCollectionName),
		sequence:   store.NewSequence(db),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type conditionRepository struct {
	collection *mongo.Collection
	sequence   *store.Sequence
}

func (r *conditionRepository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "perfil_id", Value: 1},
			},
			Options: options.Index().
				SetName("ProfileConditions"),
		},
	})
	return err
}

func (r *conditionRepository) Create(ctx context.Context, condition *Condition) (*Condition, error) {
	id, err := r.sequence.Next(ctx, conditionsCollectionName)
	if err != nil {
		return nil, err
	}
	condition.Id = id

	if _, err := r.collection.InsertOne(ctx, condition); err != nil {
		return nil, fmt.Errorf("error creating condition: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *conditionRepository) Get(ctx context.Context, id int64) (*Condition, error) {
	condition := &Condition{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(condition)
	if err == mongo.ErrNoDocuments {
		return nil, errors.RecordNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching condition: %w", err)
	}

	return condition, nil
}

func (r *conditionRepository) ListForProfile(ctx context.Context, profileId int64, pagination store.Pagination) ([]*Condition, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"perfil_id": profileId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing conditions: %w", err)
	}

	var conditions []*Condition
	if err = cursor.All(ctx, &conditions); err != nil {
		return nil, fmt.Errorf("error decoding conditions: %w", err)
	}

	return conditions, nil
}

func (r *conditionRepository) IdsForProfile(ctx context.Context, profileId int64) ([]int64, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"perfil_id": profileId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing condition ids: %w", err)
	}

	var docs []struct {
		Id int64 `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding condition ids: %w", err)
	}

	ids := make([]int64, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.Id)
	}
	return ids, nil
}

func (r *conditionRepository) Update(ctx context.Context, id int64, condition *Condition) (*Condition, error) {
	// Identifier and owner pointer never change through updates; both are
	// zeroed so omitempty keeps them out of the $set document.
	doc := *condition
	doc.Id = 0
	doc.ProfileId = 0

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": doc}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.RecordNotFound
		}
		return nil, fmt.Errorf("error updating condition: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *conditionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting condition: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.RecordNotFound
	}

	return nil
}

func (r *conditionRepository) DeleteAllForProfile(ctx context.Context, profileId int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"perfil_id": profileId})
	if err != nil {
		return fmt.Errorf("error deleting conditions for profile: %w", err)
	}

	return nil
}

func (r *conditionRepository) ConditionParent(ctx context.Context, id int64) (int64, error) {
	condition, err := r.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	return condition.ProfileId, nil
}

func NewSymptomRepository(db *mongo.Database, lifecycle fx.Lifecycle) (SymptomRepository, error) {
	repo := &symptomRepository{
		collection: db.Collection(symptomsCollectionName),
		sequence:   store.NewSequence(db),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type symptomRepository struct {
	collection *mongo.Collection
	sequence   *store.Sequence
}

func (r *symptomRepository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "doenca_id", Value: 1},
			},
			Options: options.Index().
				SetName("ConditionSymptoms"),
		},
	})
	return err
}

func (r *symptomRepository) Create(ctx context.Context, symptom *Symptom) (*Symptom, error) {
	id, err := r.sequence.Next(ctx, symptomsCollectionName)
	if err != nil {
		return nil, err
	}
	symptom.Id = id

	if _, err := r.collection.InsertOne(ctx, symptom); err != nil {
		return nil, fmt.Errorf("error creating symptom: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *symptomRepository) Get(ctx context.Context, id int64) (*Symptom, error) {
	symptom := &Symptom{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(symptom)
	if err == mongo.ErrNoDocuments {
		return nil, errors.RecordNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching symptom: %w", err)
	}

	return symptom, nil
}

func (r *symptomRepository) ListForCondition(ctx context.Context, conditionId int64, pagination store.Pagination) ([]*Symptom, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(bson.D{{Key: "data_ocorrencia", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"doenca_id": conditionId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing symptoms: %w", err)
	}

	var symptoms []*Symptom
	if err = cursor.All(ctx, &symptoms); err != nil {
		return nil, fmt.Errorf("error decoding symptoms: %w", err)
	}

	return symptoms, nil
}

func (r *symptomRepository) Update(ctx context.Context, id int64, symptom *Symptom) (*Symptom, error) {
	// Identifier and owner pointer never change through updates; both are
	// zeroed so omitempty keeps them out of the $set document.
	doc := *symptom
	doc.Id = 0
	doc.ConditionId = 0

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": doc}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.RecordNotFound
		}
		return nil, fmt.Errorf("error updating symptom: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *symptomRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting symptom: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.RecordNotFound
	}

	return nil
}

func (r *symptomRepository) DeleteAllForCondition(ctx context.Context, conditionId int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"doenca_id": conditionId})
	if err != nil {
		return fmt.Errorf("error deleting symptoms for condition: %w", err)
	}

	return nil
}

func (r *symptomRepository) DeleteAllForConditions(ctx context.Context, conditionIds []int64) error {
	if len(conditionIds) == 0 {
		return nil
	}

	_, err := r.collection.DeleteMany(ctx, bson.M{"doenca_id": bson.M{"$in": conditionIds}})
	if err != nil {
		return fmt.Errorf("error deleting symptoms for conditions: %w", err)
	}

	return nil
}
