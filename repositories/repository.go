// Package repositories provides the generic Mongo-backed record access layer
// shared by every entity: filter building, pagination, sorting and soft
// deletes are implemented once and instantiated per collection.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrInvalidID marks an identifier that is not a 24-character hex string.
	ErrInvalidID = errors.New("invalid id")
	// ErrNotFound marks the absence of a matching document.
	ErrNotFound = errors.New("not found")
)

// ListFilter describes the conditions for a list/count query. All present
// conditions are AND-combined; the search term is OR-combined across its
// target fields before being ANDed with the rest.
type ListFilter struct {
	Equals          map[string]string // exact-match fields (status, category, ...)
	Contains        map[string]string // case-insensitive substring fields (vendor, ...)
	Search          string
	SearchFields    []string
	IncludeArchived bool
}

// Build renders the filter as a Mongo query document. softDelete controls
// whether an archivedAt=null clause is added for archive-aware collections.
func (f ListFilter) Build(softDelete bool) bson.M {
	query := bson.M{}

	if softDelete && !f.IncludeArchived {
		query["archivedAt"] = nil
	}

	for field, value := range f.Equals {
		if value != "" {
			query[field] = value
		}
	}

	for field, value := range f.Contains {
		if value != "" {
			query[field] = bson.M{"$regex": value, "$options": "i"}
		}
	}

	if f.Search != "" && len(f.SearchFields) > 0 {
		or := make([]bson.M, 0, len(f.SearchFields))
		for _, field := range f.SearchFields {
			or = append(or, bson.M{field: bson.M{"$regex": f.Search, "$options": "i"}})
		}
		query["$or"] = or
	}

	return query
}

// Repository is instantiated once per entity. sortField is the default list
// sort key (createdAt, or the business date for the financial records);
// softDelete marks collections whose documents carry archivedAt.
type Repository[T any] struct {
	collection *mongo.Collection
	sortField  string
	softDelete bool
}

func New[T any](collection *mongo.Collection, sortField string, softDelete bool) *Repository[T] {
	return &Repository[T]{
		collection: collection,
		sortField:  sortField,
		softDelete: softDelete,
	}
}

func (r *Repository[T]) Collection() *mongo.Collection {
	return r.collection
}

func (r *Repository[T]) Insert(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert failed: %w", err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid, nil
}

// InsertMany inserts unordered so one bad document does not abort the rest.
// The returned count is the number of documents the store actually accepted.
func (r *Repository[T]) InsertMany(ctx context.Context, docs []interface{}) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	result, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if result != nil && err != nil {
		// Partial success: report what landed alongside the error.
		return len(result.InsertedIDs), err
	}
	if err != nil {
		return 0, fmt.Errorf("bulk insert failed: %w", err)
	}
	return len(result.InsertedIDs), nil
}

// List returns one page plus the total count over the same filter. The count
// is a second, unwindowed query so it reflects the full filtered set.
func (r *Repository[T]) List(ctx context.Context, filter ListFilter, skip, limit int64) ([]T, int64, error) {
	query := filter.Build(r.softDelete)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: r.sortField, Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find failed: %w", err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("decode failed: %w", err)
	}

	return results, total, nil
}

// FindAll fetches every document matching a raw query, for the aggregation
// views that need linked records rather than a page.
func (r *Repository[T]) FindAll(ctx context.Context, query bson.M, limit int64) ([]T, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find failed: %w", err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return results, nil
}

// FindByID distinguishes a malformed identifier from a missing document.
// Callers decide whether the two collapse at their boundary.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc T
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup failed: %w", err)
	}
	return &doc, nil
}

// UpdateByID applies a $set of the given fields and returns the updated
// document. The caller is responsible for stamping updatedAt.
func (r *Repository[T]) UpdateByID(ctx context.Context, id string, set bson.M) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return &doc, nil
}

// Archive stamps archivedAt and reports whether a document was modified.
// The filter matches only unarchived documents, so a second archive leaves
// the original timestamp in place and reports false, same as an unknown id.
func (r *Repository[T]) Archive(ctx context.Context, id string, at time.Time) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}

	filter := bson.M{"_id": oid, "archivedAt": nil}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"archivedAt": at}})
	if err != nil {
		return false, fmt.Errorf("archive failed: %w", err)
	}
	return result.ModifiedCount > 0, nil
}
