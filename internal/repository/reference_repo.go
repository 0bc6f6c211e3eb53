package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"btyesteem/internal/model"
)

// ReferenceRepo stores the accepted answer vectors that feed the
// outlier check of future submissions.
type ReferenceRepo interface {
	Add(ctx context.Context, vector *model.ReferenceVector) error
	Latest(ctx context.Context, limit int64) ([][]float64, error)
	Count(ctx context.Context) (int64, error)
}

type referenceRepo struct {
	collection *mongo.Collection
}

// NewReferenceRepo creates a new reference corpus repository.
func NewReferenceRepo(db *mongo.Database) ReferenceRepo {
	return &referenceRepo{
		collection: db.Collection("reference_vectors"),
	}
}

func (r *referenceRepo) Add(ctx context.Context, vector *model.ReferenceVector) error {
	if vector.CreatedAt.IsZero() {
		vector.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, vector)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		vector.ID = oid.Hex()
	}
	return nil
}

// Latest returns up to limit of the most recently added vectors, newest
// first.
func (r *referenceRepo) Latest(ctx context.Context, limit int64) ([][]float64, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.ReferenceVector
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	vectors := make([][]float64, 0, len(docs))
	for _, d := range docs {
		vectors = append(vectors, d.Vector)
	}
	return vectors, nil
}

func (r *referenceRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
