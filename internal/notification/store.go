// Package notification persists inbox entries emitted by the lifecycle
// state machine and serves the read side used by the UI (unread badge,
// mark-as-read).
package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/database"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
)

// Store writes and reads notifications.
type Store struct {
	DB *database.DBinstanceStruct
}

// NewStore creates a new notification store.
func NewStore(db *database.DBinstanceStruct) *Store {
	return &Store{DB: db}
}

// Emit records one notification. The lifecycle state machine calls this
// after a transition committed; failures are the caller's to log, never to
// roll back.
func (s *Store) Emit(ctx context.Context, n model.Notification) error {
	return s.DB.WithContext(ctx).Create(&n).Error
}

// List returns the user's notifications, newest first.
func (s *Store) List(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	var out []model.Notification
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// UnreadCount returns how many notifications the user has not read yet.
func (s *Store) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead marks the given notification IDs as read, or every notification
// of the user when all is true. IDs belonging to other users are ignored.
func (s *Store) MarkRead(ctx context.Context, userID uuid.UUID, ids []uint, all bool) error {
	q := s.DB.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ?", userID)
	if !all {
		if len(ids) == 0 {
			return nil
		}
		q = q.Where("id IN ?", ids)
	}
	return q.Update("read", true).Error
}
