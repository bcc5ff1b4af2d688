package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pulse/internal/models/db_models"
)

type FeedbackArchiveInterface interface {
	Save(ctx context.Context, feedback *db_models.Feedback) error
	LoadAll(ctx context.Context) ([]db_models.Feedback, error)
}

// FeedbackArchive mirrors accepted records to Postgres so the in-memory store
// can be rehydrated across restarts. The store stays authoritative: archive
// writes happen after the id is assigned and reuse it as the primary key.
type FeedbackArchive struct {
	db *gorm.DB
}

func NewFeedbackArchive(db *gorm.DB) (*FeedbackArchive, error) {
	if err := db.AutoMigrate(&db_models.Feedback{}); err != nil {
		return nil, fmt.Errorf("migrate feedback archive: %w", err)
	}
	return &FeedbackArchive{db: db}, nil
}

func (a *FeedbackArchive) Save(ctx context.Context, feedback *db_models.Feedback) error {
	return a.db.WithContext(ctx).Create(feedback).Error
}

// LoadAll returns archived records ordered by id, so replaying them through
// FeedbackStore.Append reassigns the identical ids.
func (a *FeedbackArchive) LoadAll(ctx context.Context) ([]db_models.Feedback, error) {
	var records []db_models.Feedback
	err := a.db.WithContext(ctx).Order("id ASC").Find(&records).Error
	return records, err
}
