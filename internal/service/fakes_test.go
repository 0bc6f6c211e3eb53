package service

import (
	"context"
	"fmt"

	"btyesteem/internal/model"
)

// In-memory repository and cache fakes for service tests.

type fakeSubmissionRepo struct {
	byID map[string]*model.Submission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{byID: make(map[string]*model.Submission)}
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *model.Submission) error {
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id string) (*model.Submission, error) {
	return r.byID[id], nil
}

func (r *fakeSubmissionRepo) GetByUserID(_ context.Context, userID string) ([]*model.Submission, error) {
	var out []*model.Submission
	for _, s := range r.byID {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeReferenceRepo struct {
	vectors [][]float64
}

func (r *fakeReferenceRepo) Add(_ context.Context, v *model.ReferenceVector) error {
	r.vectors = append(r.vectors, v.Vector)
	return nil
}

func (r *fakeReferenceRepo) Latest(_ context.Context, limit int64) ([][]float64, error) {
	if int64(len(r.vectors)) > limit {
		return r.vectors[len(r.vectors)-int(limit):], nil
	}
	return r.vectors, nil
}

func (r *fakeReferenceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.vectors)), nil
}

type fakeScheduleRepo struct {
	descriptors []*model.MessageDescriptor
	nextID      int
}

func (r *fakeScheduleRepo) CreateMany(_ context.Context, ds []*model.MessageDescriptor) error {
	for _, d := range ds {
		r.nextID++
		d.ID = fmt.Sprintf("msg-%d", r.nextID)
		r.descriptors = append(r.descriptors, d)
	}
	return nil
}

func (r *fakeScheduleRepo) GetBySubmissionID(_ context.Context, submissionID string) ([]*model.MessageDescriptor, error) {
	var out []*model.MessageDescriptor
	for _, d := range r.descriptors {
		if d.SubmissionID == submissionID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) List(_ context.Context, status model.MessageStatus, _ int64) ([]*model.MessageDescriptor, error) {
	var out []*model.MessageDescriptor
	for _, d := range r.descriptors {
		if status == "" || d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) Cancel(_ context.Context, id string) (*model.MessageDescriptor, error) {
	for _, d := range r.descriptors {
		if d.ID == id && d.Status == model.MessagePending {
			d.Status = model.MessageCancelled
			return d, nil
		}
	}
	return nil, nil
}

type fakeResultCache struct {
	submissions map[string]*model.Submission
	reference   [][]float64
}

func newFakeResultCache() *fakeResultCache {
	return &fakeResultCache{submissions: make(map[string]*model.Submission)}
}

func (c *fakeResultCache) GetSubmission(_ context.Context, id string) (*model.Submission, error) {
	return c.submissions[id], nil
}

func (c *fakeResultCache) SetSubmission(_ context.Context, s *model.Submission) error {
	c.submissions[s.ID] = s
	return nil
}

func (c *fakeResultCache) GetReferenceVectors(_ context.Context) ([][]float64, error) {
	return c.reference, nil
}

func (c *fakeResultCache) SetReferenceVectors(_ context.Context, v [][]float64) error {
	c.reference = v
	return nil
}

func (c *fakeResultCache) InvalidateReferenceVectors(_ context.Context) error {
	c.reference = nil
	return nil
}
