package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"btyesteem/internal/model"
)

// SubmissionRepo handles MongoDB operations for submissions. Submission
// IDs are assigned by the service layer before insert.
type SubmissionRepo interface {
	Create(ctx context.Context, submission *model.Submission) error
	GetByID(ctx context.Context, id string) (*model.Submission, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.Submission, error)
}

type submissionRepo struct {
	collection *mongo.Collection
}

// NewSubmissionRepo creates a new submission repository.
func NewSubmissionRepo(db *mongo.Database) SubmissionRepo {
	return &submissionRepo{
		collection: db.Collection("submissions"),
	}
}

func (r *submissionRepo) Create(ctx context.Context, submission *model.Submission) error {
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, submission)
	return err
}

func (r *submissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	var submission model.Submission
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&submission)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Submission, error) {
	opts := options.Find().SetSort(bson.M{"submittedAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []*model.Submission
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
