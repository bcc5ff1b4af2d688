package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/models/db_models"
	"pulse/internal/models/request_models"
	"pulse/internal/repositories"
	"pulse/pkg/utils"
)

type fakeArchive struct {
	saved   []db_models.Feedback
	saveErr error
	records []db_models.Feedback
}

func (f *fakeArchive) Save(ctx context.Context, feedback *db_models.Feedback) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *feedback)
	return nil
}

func (f *fakeArchive) LoadAll(ctx context.Context) ([]db_models.Feedback, error) {
	return f.records, nil
}

func validRequest() request_models.SubmitFeedbackRequest {
	return request_models.SubmitFeedbackRequest{
		UserID:  "user-7",
		Rating:  4,
		Comment: "works nicely",
	}
}

func TestSubmit_AssignsIDAndDefaults(t *testing.T) {
	store := repositories.NewFeedbackStore()
	svc := NewFeedbackService(store, nil)
	ctx := context.Background()

	id, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	record, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, db_models.CategoryGeneral, record.Category)
	assert.False(t, record.Timestamp.IsZero())
}

func TestSubmit_ParsesExplicitFields(t *testing.T) {
	store := repositories.NewFeedbackStore()
	svc := NewFeedbackService(store, nil)

	req := validRequest()
	req.Category = "bug"
	req.Timestamp = "2026-02-01T10:30:00Z"

	id, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	record, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, db_models.CategoryBug, record.Category)
	assert.Equal(t, time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC), record.Timestamp.UTC())
}

func TestSubmit_RejectsInvalidInput(t *testing.T) {
	svc := NewFeedbackService(repositories.NewFeedbackStore(), nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*request_models.SubmitFeedbackRequest)
		wantErr error
	}{
		{"rating too low", func(r *request_models.SubmitFeedbackRequest) { r.Rating = 0 }, utils.ErrInvalidRating},
		{"rating too high", func(r *request_models.SubmitFeedbackRequest) { r.Rating = 6 }, utils.ErrInvalidRating},
		{"empty comment", func(r *request_models.SubmitFeedbackRequest) { r.Comment = "  " }, utils.ErrEmptyComment},
		{"empty user id", func(r *request_models.SubmitFeedbackRequest) { r.UserID = "" }, utils.ErrEmptyUserID},
		{"unknown category", func(r *request_models.SubmitFeedbackRequest) { r.Category = "usability" }, utils.ErrUnknownCategory},
		{"bad timestamp", func(r *request_models.SubmitFeedbackRequest) { r.Timestamp = "yesterday" }, utils.ErrInvalidTimestamp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Submit(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmit_MirrorsToArchive(t *testing.T) {
	archive := &fakeArchive{}
	svc := NewFeedbackService(repositories.NewFeedbackStore(), archive)

	id, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, archive.saved, 1)
	assert.Equal(t, id, archive.saved[0].ID)
}

func TestSubmit_ArchiveFailureDoesNotFailSubmission(t *testing.T) {
	archive := &fakeArchive{saveErr: errors.New("connection reset")}
	store := repositories.NewFeedbackStore()
	svc := NewFeedbackService(store, archive)
	ctx := context.Background()

	id, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, store.Count(ctx))
	assert.Equal(t, int64(1), id)
}

func TestAll_ReturnsRecordsAndCount(t *testing.T) {
	svc := NewFeedbackService(repositories.NewFeedbackStore(), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(ctx, validRequest())
		require.NoError(t, err)
	}

	list := svc.All(ctx)
	assert.Equal(t, 3, list.Count)
	assert.Len(t, list.Feedback, 3)
}

func TestHydrateStore_ReplaysArchivedIDs(t *testing.T) {
	archive := &fakeArchive{records: []db_models.Feedback{
		{ID: 1, UserID: "a", Rating: 5, Comment: "great", Category: db_models.CategoryGeneral},
		{ID: 2, UserID: "b", Rating: 1, Comment: "broken", Category: db_models.CategoryBug},
	}}
	store := repositories.NewFeedbackStore()
	ctx := context.Background()

	require.NoError(t, HydrateStore(ctx, store, archive))
	assert.Equal(t, 2, store.Count(ctx))

	got, err := store.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "broken", got.Comment)
}

func TestHydrateStore_NilArchiveIsNoop(t *testing.T) {
	store := repositories.NewFeedbackStore()
	require.NoError(t, HydrateStore(context.Background(), store, nil))
	assert.Zero(t, store.Count(context.Background()))
}
