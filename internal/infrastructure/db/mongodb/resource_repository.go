package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smart-grocery/internal/domain/entities"
)

// ResourceRepository is the document store shared by every owned collection.
// Record ids double as the _id field.
type ResourceRepository[E any, T interface {
	*E
	entities.Owned
}] struct {
	collection *mongo.Collection
}

func NewResourceRepository[E any, T interface {
	*E
	entities.Owned
}](db *mongo.Database, collection string) *ResourceRepository[E, T] {
	return &ResourceRepository[E, T]{collection: db.Collection(collection)}
}

// Save upserts the document keyed by the record id, replacing it entirely.
func (r *ResourceRepository[E, T]) Save(ctx context.Context, record T) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.GetID()}, record, opts)
	return err
}

func (r *ResourceRepository[E, T]) FindByID(ctx context.Context, id string) (T, error) {
	var record E
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return T(&record), nil
}

func (r *ResourceRepository[E, T]) FindByOwner(ctx context.Context, username string) ([]T, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": username})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]T, 0)
	for cursor.Next(ctx) {
		var record E
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, T(&record))
	}
	return records, cursor.Err()
}

func (r *ResourceRepository[E, T]) DeleteByID(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
