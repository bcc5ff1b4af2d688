package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"pulse/internal/models/db_models"
	"pulse/internal/models/request_models"
	"pulse/internal/models/response_models"
	"pulse/internal/repositories"
	"pulse/pkg/utils"
)

type FeedbackServiceInterface interface {
	Submit(ctx context.Context, req request_models.SubmitFeedbackRequest) (int64, error)
	Get(ctx context.Context, id int64) (*db_models.Feedback, error)
	All(ctx context.Context) *response_models.FeedbackList
}

// FeedbackService validates submissions and owns the store/archive pair. The
// in-memory store is authoritative; the archive is a write-behind mirror and
// may be absent.
type FeedbackService struct {
	store   repositories.FeedbackStoreInterface
	archive repositories.FeedbackArchiveInterface
}

func NewFeedbackService(
	store repositories.FeedbackStoreInterface,
	archive repositories.FeedbackArchiveInterface,
) FeedbackServiceInterface {
	return &FeedbackService{store: store, archive: archive}
}

func (s *FeedbackService) Submit(ctx context.Context, req request_models.SubmitFeedbackRequest) (int64, error) {
	record, err := recordFromRequest(req)
	if err != nil {
		return 0, err
	}

	id, err := s.store.Append(ctx, record)
	if err != nil {
		return 0, err
	}

	if s.archive != nil {
		// Archive failures never fail the submission; the store already
		// accepted the record.
		if err := s.archive.Save(ctx, record); err != nil {
			log.Error().Err(err).Int64("feedback_id", id).Msg("failed to archive feedback")
		}
	}

	return id, nil
}

func (s *FeedbackService) Get(ctx context.Context, id int64) (*db_models.Feedback, error) {
	return s.store.Get(ctx, id)
}

func (s *FeedbackService) All(ctx context.Context) *response_models.FeedbackList {
	records := s.store.All(ctx)
	return &response_models.FeedbackList{Feedback: records, Count: len(records)}
}

func recordFromRequest(req request_models.SubmitFeedbackRequest) (*db_models.Feedback, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, utils.ErrEmptyUserID
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.ErrInvalidRating
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, utils.ErrEmptyComment
	}

	category := db_models.CategoryGeneral
	if req.Category != "" {
		category = db_models.Category(req.Category)
		if !db_models.IsKnownCategory(category) {
			return nil, utils.ErrUnknownCategory
		}
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return nil, utils.ErrInvalidTimestamp
		}
		timestamp = parsed
	}

	return &db_models.Feedback{
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Category:  category,
		Timestamp: timestamp,
	}, nil
}

// HydrateStore replays archived records into an empty store at startup. The
// archive is ordered by id and ids are dense, so Append reassigns the same
// ids the records were stored under.
func HydrateStore(ctx context.Context, store repositories.FeedbackStoreInterface, archive repositories.FeedbackArchiveInterface) error {
	if archive == nil {
		return nil
	}

	records, err := archive.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if _, err := store.Append(ctx, &records[i]); err != nil {
			return err
		}
	}

	if len(records) > 0 {
		log.Info().Int("records", len(records)).Msg("feedback store hydrated from archive")
	}
	return nil
}
