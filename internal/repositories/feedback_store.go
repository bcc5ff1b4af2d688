package repositories

import (
	"context"
	"sync"

	"pulse/internal/models/db_models"
	"pulse/pkg/utils"
)

type FeedbackStoreInterface interface {
	Append(ctx context.Context, feedback *db_models.Feedback) (int64, error)
	Get(ctx context.Context, id int64) (*db_models.Feedback, error)
	All(ctx context.Context) []db_models.Feedback
	Count(ctx context.Context) int
}

// FeedbackStore is the authoritative, append-only record collection. Appends
// serialize on one mutex so ids are sequential from 1 with none lost or
// duplicated; reads return a snapshot taken under the same lock. Records are
// immutable once appended; there is no update or delete.
type FeedbackStore struct {
	mu      sync.Mutex
	records []db_models.Feedback
	nextID  int64
}

func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{nextID: 1}
}

func (s *FeedbackStore) Append(ctx context.Context, feedback *db_models.Feedback) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feedback.ID = s.nextID
	s.nextID++
	s.records = append(s.records, *feedback)
	return feedback.ID, nil
}

func (s *FeedbackStore) Get(ctx context.Context, id int64) (*db_models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ids are assigned densely from 1, so the slice index is the id minus one.
	if id < 1 || id > int64(len(s.records)) {
		return nil, utils.ErrFeedbackNotFound
	}
	record := s.records[id-1]
	return &record, nil
}

// All returns the records in insertion order. The returned slice is a copy;
// callers may not observe later appends through it.
func (s *FeedbackStore) All(ctx context.Context) []db_models.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]db_models.Feedback, len(s.records))
	copy(snapshot, s.records)
	return snapshot
}

func (s *FeedbackStore) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
