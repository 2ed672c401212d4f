package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	countersCollectionName = "counters"
)

// Sequence issues monotonically increasing positive int64 identifiers,
// one counter document per entity family.
type Sequence struct {
	collection *mongo.Collection
}

func NewSequence(db *mongo.Database) *Sequence {
	return &Sequence{
		collection: db.Collection(countersCollectionName),
	}
}

func (s *Sequence) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	selector := bson.M{"_id": name}
	update := bson.M{
		"$inc": bson.M{"seq": int64(1)},
	}

	counter := struct {
		Seq int64 `bson:"seq"`
	}{}
	err := s.collection.FindOneAndUpdate(ctx, selector, update, opts).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("unable to increment %s sequence: %w", name, err)
	}

	return counter.Seq, nil
}
