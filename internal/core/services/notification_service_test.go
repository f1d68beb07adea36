package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/core/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
)

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) ListNotificationsByRecipient(ctx context.Context, recipientID string, limit int, nextToken *string) ([]domain.Notification, *string, error) {
	args := m.Called(ctx, recipientID, limit, nextToken)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return notifications, token, args.Error(2)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	args := m.Called(ctx, recipientID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, recipientID string) error {
	args := m.Called(ctx, notificationID, recipientID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type NotificationServiceTestSuite struct {
	suite.Suite
	mockNotificationRepo *MockNotificationRepository
	service              portssvc.NotificationSvcFacade
	recipientID          string
	ctx                  context.Context
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.service = services.NewNotificationService(suite.mockNotificationRepo)
	suite.recipientID = uuid.NewString()
	suite.ctx = context.Background()
}

func (suite *NotificationServiceTestSuite) TestNotify_AssignsIDAndTimestamp() {
	suite.mockNotificationRepo.On("SaveNotification", suite.ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.NotificationID != "" && !n.CreatedAt.IsZero() &&
			n.RecipientID == suite.recipientID && n.Kind == domain.NotifyApproval
	})).Return(nil).Once()

	err := suite.service.Notify(suite.ctx, suite.recipientID, "Entry approved", "Your logbook entry was approved", domain.NotifyApproval)

	assert.NoError(suite.T(), err)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestListNotifications_DefaultsPageSize() {
	notifications := []domain.Notification{
		{NotificationID: uuid.NewString(), RecipientID: suite.recipientID, Title: "Entry approved"},
		{NotificationID: uuid.NewString(), RecipientID: suite.recipientID, Title: "Entry rejected", Read: true},
	}

	suite.mockNotificationRepo.On("ListNotificationsByRecipient", suite.ctx, suite.recipientID, 20, (*string)(nil)).Return(notifications, nil, nil).Once()
	suite.mockNotificationRepo.On("CountUnread", suite.ctx, suite.recipientID).Return(1, nil).Once()

	resp, err := suite.service.ListNotifications(suite.ctx, suite.recipientID, dto.ListNotificationsParams{})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Notifications, 2)
	assert.Equal(suite.T(), 1, resp.UnreadCount)
	assert.Nil(suite.T(), resp.NextToken)
	assert.False(suite.T(), resp.Notifications[0].Read)
	assert.True(suite.T(), resp.Notifications[1].Read)
}

func (suite *NotificationServiceTestSuite) TestListNotifications_PassesToken() {
	token := "b3BhcXVl"
	next := "bmV4dA=="

	suite.mockNotificationRepo.On("ListNotificationsByRecipient", suite.ctx, suite.recipientID, 5, &token).Return([]domain.Notification{}, &next, nil).Once()
	suite.mockNotificationRepo.On("CountUnread", suite.ctx, suite.recipientID).Return(0, nil).Once()

	resp, err := suite.service.ListNotifications(suite.ctx, suite.recipientID, dto.ListNotificationsParams{Limit: 5, NextToken: &token})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), &next, resp.NextToken)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_ForeignNotificationNotFound() {
	notificationID := uuid.NewString()

	suite.mockNotificationRepo.On("MarkNotificationRead", suite.ctx, notificationID, suite.recipientID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.MarkRead(suite.ctx, notificationID, suite.recipientID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
