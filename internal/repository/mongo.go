package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/safeguard_backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDocuments хранит документы одного типа в коллекции MongoDB.
// Поиск идет по полю id, а не по _id.
type MongoDocuments[T models.Document] struct {
	coll   *mongo.Collection
	newDoc func() T
}

func NewMongoDocuments[T models.Document](db *mongo.Database, collection string, newDoc func() T) *MongoDocuments[T] {
	return &MongoDocuments[T]{
		coll:   db.Collection(collection),
		newDoc: newDoc,
	}
}

// EnsureIndexes создает уникальный индекс по id
func (r *MongoDocuments[T]) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create index on %s: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *MongoDocuments[T]) Create(ctx context.Context, doc T) error {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s document %s: %w", r.coll.Name(), doc.DocumentID(), models.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert %s document: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *MongoDocuments[T]) GetByID(ctx context.Context, id string) (T, error) {
	doc := r.newDoc()
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(doc)
	if err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, fmt.Errorf("%s document %s: %w", r.coll.Name(), id, models.ErrNotFound)
		}
		return zero, fmt.Errorf("failed to find %s document: %w", r.coll.Name(), err)
	}
	return doc, nil
}

// List возвращает не больше limit документов в естественном порядке коллекции
func (r *MongoDocuments[T]) List(ctx context.Context, limit int) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s documents: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	for cursor.Next(ctx) {
		doc := r.newDoc()
		if err := cursor.Decode(doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", r.coll.Name(), err)
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error %s cursor iteration: %w", r.coll.Name(), err)
	}
	return docs, nil
}
