package implementation

import (
	"context"
	"time"

	"ai-journal-be/internal/model"
	"ai-journal-be/internal/repository/contract"
	"ai-journal-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) contract.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) scoped(ctx context.Context, specs ...specification.Specification) *gorm.DB {
	return specification.Apply(r.db.WithContext(ctx).Model(&model.Notification{}), specs...)
}

func (r *NotificationRepositoryImpl) CreateNotification(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// GetNotificationsByUserID returns one page, newest first, plus the owner's total.
func (r *NotificationRepositoryImpl) GetNotificationsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	owner := specification.OwnedByUser{UserID: userID}

	var total int64
	if err := r.scoped(ctx, owner).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []model.Notification
	err := r.scoped(ctx,
		owner,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	).Find(&notifications).Error
	return notifications, total, err
}

func (r *NotificationRepositoryImpl) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.scoped(ctx, specification.OwnedByUser{UserID: userID}, specification.Unread{}).Count(&count).Error
	return count, err
}

// MarkAsRead only touches the caller's own notification.
func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	affected, err := r.markRead(ctx, specification.ByID{ID: notificationID}, specification.OwnedByUser{UserID: userID})
	if err != nil {
		return err
	}
	if affected == 0 {
		return contract.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	_, err := r.markRead(ctx, specification.OwnedByUser{UserID: userID}, specification.Unread{})
	return err
}

func (r *NotificationRepositoryImpl) markRead(ctx context.Context, specs ...specification.Specification) (int64, error) {
	result := r.scoped(ctx, specs...).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": time.Now().UTC(),
	})
	return result.RowsAffected, result.Error
}
