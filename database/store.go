package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travel-cms/model"
)

// store wraps one collection of T. unique names the field guarded by a
// unique index and key reads its value for error reporting.
type store[T any] struct {
	coll   *mongo.Collection
	entity string
	unique string
	key    func(T) string
}

// objectID treats a malformed id the same as a missing document.
func (s store[T]) objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, model.NotFound(s.entity)
	}
	return oid, nil
}

func (s store[T]) writeErr(err error, doc T) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) && s.unique != "" {
		dup := &model.DuplicateKeyError{Field: s.unique}
		if s.key != nil {
			dup.Value = s.key(doc)
		}
		return dup
	}
	return fmt.Errorf("write %s: %w", s.entity, err)
}

func (s store[T]) find(ctx context.Context, filter bson.M, sort bson.D) ([]T, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.entity, err)
	}
	items := []T{}
	if err = cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.entity, err)
	}
	return items, nil
}

func (s store[T]) findOne(ctx context.Context, filter bson.M) (T, error) {
	var doc T
	err := s.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, model.NotFound(s.entity)
	}
	if err != nil {
		return doc, fmt.Errorf("find %s: %w", s.entity, err)
	}
	return doc, nil
}

func (s store[T]) get(ctx context.Context, id string) (T, error) {
	oid, err := s.objectID(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

func (s store[T]) insert(ctx context.Context, doc T) error {
	_, err := s.coll.InsertOne(ctx, doc)
	return s.writeErr(err, doc)
}

func (s store[T]) replace(ctx context.Context, id primitive.ObjectID, doc T) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return s.writeErr(err, doc)
	}
	if res.MatchedCount == 0 {
		return model.NotFound(s.entity)
	}
	return nil
}

func (s store[T]) delete(ctx context.Context, id string) error {
	oid, err := s.objectID(id)
	if err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.entity, err)
	}
	if res.DeletedCount == 0 {
		return model.NotFound(s.entity)
	}
	return nil
}

// distinctStrings returns every value of field, stringified.
func (s store[T]) distinctStrings(ctx context.Context, field string) ([]string, error) {
	values, err := s.coll.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct %s.%s: %w", s.entity, field, err)
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		out = append(out, fmt.Sprint(v))
	}
	return out, nil
}
