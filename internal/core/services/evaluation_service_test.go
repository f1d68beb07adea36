package services_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/core/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
)

// --- Mock EvaluationRepository ---
type MockEvaluationRepository struct {
	mock.Mock
}

func (m *MockEvaluationRepository) FindEvaluationByID(ctx context.Context, evaluationID string) (*domain.Evaluation, error) {
	args := m.Called(ctx, evaluationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepository) FindEvaluationByParticipant(ctx context.Context, participantID string) (*domain.Evaluation, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepository) SaveEvaluation(ctx context.Context, evaluation domain.Evaluation) error {
	args := m.Called(ctx, evaluation)
	return args.Error(0)
}

func (m *MockEvaluationRepository) UpdateEvaluation(ctx context.Context, evaluation domain.Evaluation) error {
	args := m.Called(ctx, evaluation)
	return args.Error(0)
}

// --- Mock UserReader ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUserByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockUserReader) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock StatisticsService ---
type MockStatisticsService struct {
	mock.Mock
}

var _ portssvc.StatisticsSvcFacade = (*MockStatisticsService)(nil)

func (m *MockStatisticsService) CountByStatus(ctx context.Context, filter dto.EntryReportFilter) (domain.EntryStatusCounts, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.EntryStatusCounts), args.Error(1)
}

func (m *MockStatisticsService) ApprovalRate(ctx context.Context, filter dto.EntryReportFilter) (float64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStatisticsService) TotalDuration(ctx context.Context, filter dto.EntryReportFilter) (time.Duration, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockStatisticsService) Summarize(ctx context.Context, filter dto.EntryReportFilter) (*domain.EntrySummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntrySummary), args.Error(1)
}

func (m *MockStatisticsService) Rollup(ctx context.Context, filter dto.EntryReportFilter, period domain.RollupPeriod) ([]domain.RollupBucket, error) {
	args := m.Called(ctx, filter, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RollupBucket), args.Error(1)
}

func (m *MockStatisticsService) ExportCSV(ctx context.Context, filter dto.EntryReportFilter, w io.Writer) error {
	args := m.Called(ctx, filter, w)
	return args.Error(0)
}

// --- Test Suite Setup ---
type EvaluationServiceTestSuite struct {
	suite.Suite
	mockEvalRepo  *MockEvaluationRepository
	mockUserRepo  *MockUserReader
	mockStats     *MockStatisticsService
	service       portssvc.EvaluationSvcFacade
	participantID string
	reviewer      domain.Actor
	ctx           context.Context
}

func (suite *EvaluationServiceTestSuite) SetupTest() {
	suite.mockEvalRepo = new(MockEvaluationRepository)
	suite.mockUserRepo = new(MockUserReader)
	suite.mockStats = new(MockStatisticsService)
	suite.service = services.NewEvaluationService(suite.mockEvalRepo, suite.mockUserRepo, suite.mockStats)

	suite.participantID = uuid.NewString()
	suite.reviewer = domain.Actor{ActorID: uuid.NewString(), IsReviewer: true}
	suite.ctx = context.Background()
}

func (suite *EvaluationServiceTestSuite) participantUser() *domain.User {
	return &domain.User{
		UserID: suite.participantID,
		Name:   "Wisnu Adi",
		Email:  "wisnu@example.com",
		Role:   domain.RoleParticipant,
	}
}

func scoreReq(criterion string, score, weight int64) dto.EvaluationScoreRequest {
	return dto.EvaluationScoreRequest{
		Criterion: criterion,
		Score:     decimal.NewFromInt(score),
		Weight:    decimal.NewFromInt(weight),
	}
}

func (suite *EvaluationServiceTestSuite) TestUpsertEvaluation_CreatesWhenNoneExists() {
	req := dto.UpsertEvaluationRequest{
		Comment: "Solid work across the internship",
		Scores:  []dto.EvaluationScoreRequest{scoreReq("Technical skill", 85, 2), scoreReq("Communication", 70, 1)},
	}

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.participantID).Return(suite.participantUser(), nil).Once()
	suite.mockEvalRepo.On("FindEvaluationByParticipant", suite.ctx, suite.participantID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEvalRepo.On("SaveEvaluation", suite.ctx, mock.AnythingOfType("domain.Evaluation")).Return(nil).Once()

	evaluation, err := suite.service.UpsertEvaluation(suite.ctx, suite.participantID, req, suite.reviewer)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.reviewer.ActorID, evaluation.EvaluatorID)
	assert.Len(suite.T(), evaluation.Scores, 2)
	// (85*2 + 70*1) / 3 = 80
	assert.True(suite.T(), evaluation.FinalScore().Equal(decimal.NewFromInt(80)))
	suite.mockEvalRepo.AssertNotCalled(suite.T(), "UpdateEvaluation", mock.Anything, mock.Anything)
}

func (suite *EvaluationServiceTestSuite) TestUpsertEvaluation_ReplacesExisting() {
	existing := &domain.Evaluation{
		EvaluationID:  uuid.NewString(),
		ParticipantID: suite.participantID,
		EvaluatorID:   uuid.NewString(),
	}
	req := dto.UpsertEvaluationRequest{Scores: []dto.EvaluationScoreRequest{scoreReq("Technical skill", 90, 1)}}

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.participantID).Return(suite.participantUser(), nil).Once()
	suite.mockEvalRepo.On("FindEvaluationByParticipant", suite.ctx, suite.participantID).Return(existing, nil).Once()
	suite.mockEvalRepo.On("UpdateEvaluation", suite.ctx, mock.AnythingOfType("domain.Evaluation")).Return(nil).Once()

	evaluation, err := suite.service.UpsertEvaluation(suite.ctx, suite.participantID, req, suite.reviewer)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), existing.EvaluationID, evaluation.EvaluationID)
	suite.mockEvalRepo.AssertNotCalled(suite.T(), "SaveEvaluation", mock.Anything, mock.Anything)
}

func (suite *EvaluationServiceTestSuite) TestUpsertEvaluation_NonReviewerForbidden() {
	participant := domain.Actor{ActorID: suite.participantID}

	_, err := suite.service.UpsertEvaluation(suite.ctx, suite.participantID, dto.UpsertEvaluationRequest{}, participant)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *EvaluationServiceTestSuite) TestUpsertEvaluation_ScoreOutOfRange() {
	req := dto.UpsertEvaluationRequest{Scores: []dto.EvaluationScoreRequest{scoreReq("Technical skill", 120, 1)}}

	_, err := suite.service.UpsertEvaluation(suite.ctx, suite.participantID, req, suite.reviewer)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *EvaluationServiceTestSuite) TestGetEvaluation_EligibleWhenBothThresholdsMet() {
	evaluation := &domain.Evaluation{
		EvaluationID:  uuid.NewString(),
		ParticipantID: suite.participantID,
		EvaluatorID:   suite.reviewer.ActorID,
		Scores: []domain.EvaluationScore{
			{Criterion: "Technical skill", Score: decimal.NewFromInt(80), Weight: decimal.NewFromInt(1)},
		},
	}

	suite.mockEvalRepo.On("FindEvaluationByParticipant", suite.ctx, suite.participantID).Return(evaluation, nil).Once()
	suite.mockStats.On("ApprovalRate", suite.ctx, mock.Anything).Return(0.9, nil).Once()

	resp, err := suite.service.GetEvaluation(suite.ctx, suite.participantID, suite.reviewer)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.CertificateEligible)
	assert.InDelta(suite.T(), 0.9, resp.ApprovalRate, 1e-9)
}

func (suite *EvaluationServiceTestSuite) TestGetEvaluation_LowApprovalRateNotEligible() {
	evaluation := &domain.Evaluation{
		EvaluationID:  uuid.NewString(),
		ParticipantID: suite.participantID,
		Scores: []domain.EvaluationScore{
			{Criterion: "Technical skill", Score: decimal.NewFromInt(95), Weight: decimal.NewFromInt(1)},
		},
	}

	suite.mockEvalRepo.On("FindEvaluationByParticipant", suite.ctx, suite.participantID).Return(evaluation, nil).Once()
	suite.mockStats.On("ApprovalRate", suite.ctx, mock.Anything).Return(0.5, nil).Once()

	resp, err := suite.service.GetEvaluation(suite.ctx, suite.participantID, suite.reviewer)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.CertificateEligible)
}

func (suite *EvaluationServiceTestSuite) TestGetEvaluation_ForeignParticipantObscured() {
	other := domain.Actor{ActorID: uuid.NewString()}

	resp, err := suite.service.GetEvaluation(suite.ctx, suite.participantID, other)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockEvalRepo.AssertNotCalled(suite.T(), "FindEvaluationByParticipant", mock.Anything, mock.Anything)
}

func TestEvaluationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EvaluationServiceTestSuite))
}
