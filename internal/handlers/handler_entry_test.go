package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/core/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
	"github.com/wisnuad/internship_mgmt_app/internal/handlers"
	"github.com/wisnuad/internship_mgmt_app/internal/platform/config"
	"github.com/wisnuad/internship_mgmt_app/internal/utils"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

func (m *MockEntryService) GetEntryByID(ctx context.Context, entryID string, actor domain.Actor) (*domain.Entry, error) {
	args := m.Called(ctx, entryID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) ListEntries(ctx context.Context, actor domain.Actor, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockEntryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, actor domain.Actor) (*domain.Entry, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) ResubmitEntry(ctx context.Context, entryID string, req dto.ResubmitEntryRequest, actor domain.Actor) (*domain.Entry, error) {
	args := m.Called(ctx, entryID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) DeleteEntry(ctx context.Context, entryID string, actor domain.Actor) error {
	args := m.Called(ctx, entryID, actor)
	return args.Error(0)
}

func (m *MockEntryService) ApproveEntry(ctx context.Context, entryID string, req dto.ReviewRequest, actor domain.Actor) (*dto.ReviewResult, error) {
	args := m.Called(ctx, entryID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResult), args.Error(1)
}

func (m *MockEntryService) RejectEntry(ctx context.Context, entryID string, req dto.ReviewRequest, actor domain.Actor) (*dto.ReviewResult, error) {
	args := m.Called(ctx, entryID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResult), args.Error(1)
}

func (m *MockEntryService) RequestRevision(ctx context.Context, entryID string, req dto.ReviewRequest, actor domain.Actor) (*dto.ReviewResult, error) {
	args := m.Called(ctx, entryID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResult), args.Error(1)
}

// --- Mock HistoryService ---
type MockHistoryService struct {
	mock.Mock
}

var _ portssvc.HistorySvcFacade = (*MockHistoryService)(nil)

func (m *MockHistoryService) GetEntryHistory(ctx context.Context, entryID string, actor domain.Actor) ([]domain.HistoryEvent, error) {
	args := m.Called(ctx, entryID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEvent), args.Error(1)
}

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockEntryService   *MockEntryService
	mockHistoryService *MockHistoryService
	jwtSecret          string
}

// generateTestToken creates a signed JWT carrying the given role claim.
func (suite *EntryHandlerTestSuite) generateTestToken(userID, role string) string {
	token, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockEntryService = new(MockEntryService)
	suite.mockHistoryService = new(MockHistoryService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	container := &portssvc.ServiceContainer{
		Entry:   suite.mockEntryService,
		History: suite.mockHistoryService,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *EntryHandlerTestSuite) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	participantID := uuid.NewString()
	entry := &domain.Entry{
		EntryID:       uuid.NewString(),
		ParticipantID: participantID,
		EntryType:     domain.Logbook,
		Status:        domain.Pending,
		Description:   "Implemented the login flow and wrote tests for it",
	}

	suite.mockEntryService.On("CreateEntry", mock.Anything, mock.AnythingOfType("dto.CreateEntryRequest"), domain.Actor{ActorID: participantID}).Return(entry, nil).Once()

	body := gin.H{
		"entryType":   "LOGBOOK",
		"date":        time.Now().UTC().AddDate(0, 0, -1).Format(time.RFC3339),
		"description": "Implemented the login flow and wrote tests for it",
	}
	token := suite.generateTestToken(participantID, string(domain.RoleParticipant))
	w := suite.doJSON(http.MethodPost, "/api/v1/entries", token, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry.EntryID, resp.EntryID)
	suite.Equal("PENDING", resp.Status)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_MissingToken() {
	w := suite.doJSON(http.MethodPost, "/api/v1/entries", "", gin.H{})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestApproveEntry_ReviewerRoleDerivedFromToken() {
	reviewerID := uuid.NewString()
	entryID := uuid.NewString()
	result := &dto.ReviewResult{Entry: dto.EntryResponse{EntryID: entryID, Status: "APPROVED"}}

	// The actor handed to the service must carry the reviewer capability.
	suite.mockEntryService.On("ApproveEntry", mock.Anything, entryID, dto.ReviewRequest{}, domain.Actor{ActorID: reviewerID, IsReviewer: true}).Return(result, nil).Once()

	token := suite.generateTestToken(reviewerID, string(domain.RoleReviewer))
	w := suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/entries/%s/approve", entryID), token, gin.H{})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestApproveEntry_InvalidTransitionMapsToConflict() {
	reviewerID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockEntryService.On("ApproveEntry", mock.Anything, entryID, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: current status is APPROVED, expected PENDING", services.ErrInvalidTransition)).Once()

	token := suite.generateTestToken(reviewerID, string(domain.RoleReviewer))
	w := suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/entries/%s/approve", entryID), token, gin.H{})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *EntryHandlerTestSuite) TestRejectEntry_ValidationMapsToBadRequest() {
	reviewerID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockEntryService.On("RejectEntry", mock.Anything, entryID, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: reviewer note must be at least 20 characters", apperrors.ErrValidation)).Once()

	token := suite.generateTestToken(reviewerID, string(domain.RoleReviewer))
	w := suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/entries/%s/reject", entryID), token, gin.H{"note": "short"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *EntryHandlerTestSuite) TestGetEntry_NotFound() {
	userID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockEntryService.On("GetEntryByID", mock.Anything, entryID, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(userID, string(domain.RoleParticipant))
	w := suite.doJSON(http.MethodGet, "/api/v1/entries/"+entryID, token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EntryHandlerTestSuite) TestGetEntryHistory_Success() {
	userID := uuid.NewString()
	entryID := uuid.NewString()
	events := []domain.HistoryEvent{
		{EventID: uuid.NewString(), EntryID: entryID, Action: domain.ActionCreate},
		{EventID: uuid.NewString(), EntryID: entryID, Action: domain.ActionApprove},
	}

	suite.mockHistoryService.On("GetEntryHistory", mock.Anything, entryID, mock.Anything).Return(events, nil).Once()

	token := suite.generateTestToken(userID, string(domain.RoleParticipant))
	w := suite.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/entries/%s/history", entryID), token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []domain.HistoryEvent
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal(domain.ActionCreate, resp[0].Action)
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_NoContent() {
	userID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockEntryService.On("DeleteEntry", mock.Anything, entryID, domain.Actor{ActorID: userID}).Return(nil).Once()

	token := suite.generateTestToken(userID, string(domain.RoleParticipant))
	w := suite.doJSON(http.MethodDelete, "/api/v1/entries/"+entryID, token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

// --- Run Test Suite ---
func TestEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
