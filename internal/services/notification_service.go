package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/repositories"
	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
	"github.com/Abdullah149081/career-connect-backend/pkg/apperrors"
)

type NotificationService interface {
	ListNotifications(ctx context.Context, db *gorm.DB, userID string, query *dto.NotificationListQuery) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, db *gorm.DB, userID, notificationID string) error
	MarkAllRead(ctx context.Context, db *gorm.DB, userID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) ListNotifications(ctx context.Context, db *gorm.DB, userID string, query *dto.NotificationListQuery) (*dto.NotificationListResponse, error) {
	page, pageSize := normalizePagination(query.Page, query.PageSize)

	notifications, total, err := s.notificationRepo.FindByUser(db, userID, query.UnreadOnly, page, pageSize)
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, dto.ToNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: out,
		UnreadCount:   unread,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
		TotalPages:    calculateTotalPages(total, pageSize),
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, db *gorm.DB, userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(db, notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	if notification.UserID != userID {
		return apperrors.NewForbiddenError("You do not have access to this notification")
	}
	return s.notificationRepo.MarkRead(db, notificationID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, db *gorm.DB, userID string) error {
	return s.notificationRepo.MarkAllRead(db, userID)
}
