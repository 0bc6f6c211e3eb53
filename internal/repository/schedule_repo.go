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

// ScheduleRepo is the persisted drip-message queue. Descriptors are
// created in bulk when an assessment is accepted; an external delivery
// worker consumes pending ones.
type ScheduleRepo interface {
	CreateMany(ctx context.Context, descriptors []*model.MessageDescriptor) error
	GetBySubmissionID(ctx context.Context, submissionID string) ([]*model.MessageDescriptor, error)
	List(ctx context.Context, status model.MessageStatus, limit int64) ([]*model.MessageDescriptor, error)
	Cancel(ctx context.Context, id string) (*model.MessageDescriptor, error)
}

type scheduleRepo struct {
	collection *mongo.Collection
}

// NewScheduleRepo creates a new schedule repository.
func NewScheduleRepo(db *mongo.Database) ScheduleRepo {
	return &scheduleRepo{
		collection: db.Collection("message_schedule"),
	}
}

func (r *scheduleRepo) CreateMany(ctx context.Context, descriptors []*model.MessageDescriptor) error {
	if len(descriptors) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, len(descriptors))
	for i, d := range descriptors {
		if d.CreatedAt.IsZero() {
			d.CreatedAt = now
		}
		docs[i] = d
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	for i, inserted := range result.InsertedIDs {
		if oid, ok := inserted.(primitive.ObjectID); ok && i < len(descriptors) {
			descriptors[i].ID = oid.Hex()
		}
	}
	return nil
}

func (r *scheduleRepo) GetBySubmissionID(ctx context.Context, submissionID string) ([]*model.MessageDescriptor, error) {
	opts := options.Find().SetSort(bson.M{"sendAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"submissionId": submissionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var descriptors []*model.MessageDescriptor
	if err = cursor.All(ctx, &descriptors); err != nil {
		return nil, err
	}
	return descriptors, nil
}

// List returns descriptors in send order, optionally filtered by status.
func (r *scheduleRepo) List(ctx context.Context, status model.MessageStatus, limit int64) ([]*model.MessageDescriptor, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"sendAt": 1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var descriptors []*model.MessageDescriptor
	if err = cursor.All(ctx, &descriptors); err != nil {
		return nil, err
	}
	return descriptors, nil
}

// Cancel flips a pending descriptor to cancelled. Returns nil when the
// descriptor does not exist or is no longer pending.
func (r *scheduleRepo) Cancel(ctx context.Context, id string) (*model.MessageDescriptor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"status": model.MessageCancelled}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var descriptor model.MessageDescriptor
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "status": model.MessagePending},
		update, opts).Decode(&descriptor)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &descriptor, nil
}
