package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/core/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

// Ensure MockEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) QueryEntries(ctx context.Context, filter portsrepo.EntryFilter) ([]domain.Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, filter portsrepo.EntryFilter, limit int, nextToken *string) ([]domain.Entry, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Entry), returnedNextToken, args.Error(2)
}

func (m *MockEntryRepository) HasEntryOnDate(ctx context.Context, participantID string, date time.Time, types []domain.EntryType) (bool, error) {
	args := m.Called(ctx, participantID, date, types)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry, event domain.HistoryEvent) error {
	args := m.Called(ctx, entry, event)
	return args.Error(0)
}

func (m *MockEntryRepository) ApplyTransition(ctx context.Context, entry domain.Entry, fromStatus domain.EntryStatus, event domain.HistoryEvent) error {
	args := m.Called(ctx, entry, fromStatus, event)
	return args.Error(0)
}

func (m *MockEntryRepository) SoftDeleteEntry(ctx context.Context, entryID string, fromStatus domain.EntryStatus, deletedBy string, deletedAt time.Time, event domain.HistoryEvent) error {
	args := m.Called(ctx, entryID, fromStatus, deletedBy, deletedAt, event)
	return args.Error(0)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

var _ portssvc.NotifierSvc = (*MockNotifier)(nil)

func (m *MockNotifier) Notify(ctx context.Context, recipientID, title, body string, kind domain.NotificationKind) error {
	args := m.Called(ctx, recipientID, title, body, kind)
	return args.Error(0)
}

// --- Test Suite Setup ---
type EntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	mockNotifier  *MockNotifier
	service       portssvc.EntrySvcFacade
	participant   domain.Actor
	reviewer      domain.Actor
	ctx           context.Context
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewEntryService(suite.mockEntryRepo, suite.mockNotifier)

	suite.participant = domain.Actor{ActorID: uuid.NewString(), IsReviewer: false}
	suite.reviewer = domain.Actor{ActorID: uuid.NewString(), IsReviewer: true}
	suite.ctx = context.Background()
}

// pendingEntry builds an entry owned by the suite's participant, dated yesterday.
func (suite *EntryServiceTestSuite) pendingEntry() *domain.Entry {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	return &domain.Entry{
		EntryID:       uuid.NewString(),
		ParticipantID: suite.participant.ActorID,
		EntryType:     domain.Logbook,
		Date:          yesterday,
		Description:   "Implemented the login flow and wrote tests for it",
		Status:        domain.Pending,
	}
}

const validNote = "Looks complete and matches the attendance record for that day."
const shortNote = "Perlu detail lebih"

// --- CreateEntry ---

func (suite *EntryServiceTestSuite) TestCreateEntry_Success() {
	req := dto.CreateEntryRequest{
		EntryType:   "LOGBOOK",
		Date:        time.Now().UTC().AddDate(0, 0, -1),
		Description: "Implemented the login flow and wrote tests for it",
	}

	suite.mockEntryRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.Entry"), mock.AnythingOfType("domain.HistoryEvent")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, req, suite.participant)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), entry)
	assert.Equal(suite.T(), domain.Pending, entry.Status)
	assert.Equal(suite.T(), suite.participant.ActorID, entry.ParticipantID)
	assert.Nil(suite.T(), entry.ReviewedBy)
	assert.Nil(suite.T(), entry.ReviewedAt)

	// The CREATE event must be bundled with the insert.
	savedEvent := suite.mockEntryRepo.Calls[0].Arguments.Get(2).(domain.HistoryEvent)
	assert.Equal(suite.T(), domain.ActionCreate, savedEvent.Action)
	assert.Equal(suite.T(), entry.EntryID, savedEvent.EntryID)
	assert.Equal(suite.T(), suite.participant.ActorID, savedEvent.ActorID)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_FutureDate() {
	req := dto.CreateEntryRequest{
		EntryType:   "LOGBOOK",
		Date:        time.Now().UTC().AddDate(0, 0, 2),
		Description: "Implemented the login flow and wrote tests for it",
	}

	entry, err := suite.service.CreateEntry(suite.ctx, req, suite.participant)

	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_ShortDescription() {
	req := dto.CreateEntryRequest{
		EntryType:   "LOGBOOK",
		Date:        time.Now().UTC().AddDate(0, 0, -1),
		Description: "too short",
	}

	entry, err := suite.service.CreateEntry(suite.ctx, req, suite.participant)

	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_CollectsAllViolations() {
	start := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour) // ends before it starts
	req := dto.CreateEntryRequest{
		EntryType:   "LOGBOOK",
		Date:        time.Now().UTC().AddDate(0, 0, -1),
		Description: "too short",
		StartTime:   &start,
		EndTime:     &end,
	}

	_, err := suite.service.CreateEntry(suite.ctx, req, suite.participant)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Contains(suite.T(), err.Error(), "description")
	assert.Contains(suite.T(), err.Error(), "endTime")
}

func (suite *EntryServiceTestSuite) TestCreateEntry_WindowTooLong() {
	start := time.Date(2026, 2, 10, 6, 0, 0, 0, time.UTC)
	end := start.Add(13 * time.Hour)
	req := dto.CreateEntryRequest{
		EntryType:   "ATTENDANCE",
		Date:        time.Now().UTC().AddDate(0, 0, -1),
		Description: "Full day on-site at the client office in Jakarta",
		StartTime:   &start,
		EndTime:     &end,
	}

	_, err := suite.service.CreateEntry(suite.ctx, req, suite.participant)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_LeaveOverlapsAttendance() {
	req := dto.CreateEntryRequest{
		EntryType:   "LEAVE",
		Date:        time.Now().UTC().AddDate(0, 0, -1),
		Description: "Sick leave, doctor appointment in the morning",
	}

	suite.mockEntryRepo.On("HasEntryOnDate", suite.ctx, suite.participant.ActorID, mock.AnythingOfType("time.Time"), []domain.EntryType{domain.Attendance}).Return(true, nil).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, req, suite.participant)

	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

// --- ApproveEntry ---

func (suite *EntryServiceTestSuite) TestApproveEntry_Success() {
	entry := suite.pendingEntry()

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("ApplyTransition", suite.ctx, mock.AnythingOfType("domain.Entry"), domain.Pending, mock.AnythingOfType("domain.HistoryEvent")).Return(nil).Once()
	suite.mockNotifier.On("Notify", suite.ctx, suite.participant.ActorID, mock.Anything, mock.Anything, domain.NotifyApproval).Return(nil).Once()

	result, err := suite.service.ApproveEntry(suite.ctx, entry.EntryID, dto.ReviewRequest{}, suite.reviewer)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(domain.Approved), result.Entry.Status)
	assert.Empty(suite.T(), result.Warning)

	// reviewed_by and reviewed_at must be set together.
	assert.NotNil(suite.T(), result.Entry.ReviewedBy)
	assert.NotNil(suite.T(), result.Entry.ReviewedAt)
	assert.Equal(suite.T(), suite.reviewer.ActorID, *result.Entry.ReviewedBy)

	// The ledger event must carry the APPROVE action.
	for _, call := range suite.mockEntryRepo.Calls {
		if call.Method == "ApplyTransition" {
			event := call.Arguments.Get(3).(domain.HistoryEvent)
			assert.Equal(suite.T(), domain.ActionApprove, event.Action)
		}
	}
	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestApproveEntry_NonReviewerForbidden() {
	result, err := suite.service.ApproveEntry(suite.ctx, uuid.NewString(), dto.ReviewRequest{}, suite.participant)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindEntryByID", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestApproveEntry_AlreadyApproved() {
	entry := suite.pendingEntry()
	entry.Status = domain.Approved

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()

	result, err := suite.service.ApproveEntry(suite.ctx, entry.EntryID, dto.ReviewRequest{}, suite.reviewer)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, services.ErrInvalidTransition)
	assert.Contains(suite.T(), err.Error(), string(domain.Approved))

	// A refused transition must write nothing.
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestApproveEntry_FutureDatedRefused() {
	// A future-dated entry should never reach PENDING, but approval must
	// still refuse one that slipped through.
	entry := suite.pendingEntry()
	entry.Date = time.Now().UTC().AddDate(0, 0, 3).Truncate(24 * time.Hour)

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()

	result, err := suite.service.ApproveEntry(suite.ctx, entry.EntryID, dto.ReviewRequest{}, suite.reviewer)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestApproveEntry_ConcurrentReviewerLosesRace() {
	entry := suite.pendingEntry()
	approvedCopy := *entry
	approvedCopy.Status = domain.Approved

	// First fetch still sees PENDING, the guarded update then misses because
	// the other reviewer committed first.
	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("ApplyTransition", suite.ctx, mock.AnythingOfType("domain.Entry"), domain.Pending, mock.AnythingOfType("domain.HistoryEvent")).Return(apperrors.ErrConflict).Once()
	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(&approvedCopy, nil).Once()

	result, err := suite.service.ApproveEntry(suite.ctx, entry.EntryID, dto.ReviewRequest{}, suite.reviewer)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, services.ErrInvalidTransition)
	assert.Contains(suite.T(), err.Error(), string(domain.Approved))
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestApproveEntry_NotificationFailureDoesNotRollBack() {
	entry := suite.pendingEntry()

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("ApplyTransition", suite.ctx, mock.AnythingOfType("domain.Entry"), domain.Pending, mock.AnythingOfType("domain.HistoryEvent")).Return(nil).Once()
	suite.mockNotifier.On("Notify", suite.ctx, suite.participant.ActorID, mock.Anything, mock.Anything, domain.NotifyApproval).Return(errors.New("smtp unreachable")).Once()

	result, err := suite.service.ApproveEntry(suite.ctx, entry.EntryID, dto.ReviewRequest{}, suite.reviewer)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(domain.Approved), result.Entry.Status)
	assert.NotEmpty(suite.T(), result.Warning)
}

// --- RejectEntry / RequestRevision ---

func (suite *EntryServiceTestSuite) TestRejectEntry_ShortNote() {
	result, err := suite.service.RejectEntry(suite.ctx, uuid.NewString(), dto.ReviewRequest{Note: shortNote}, suite.reviewer)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)

	// Note validation runs before any repository access.
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindEntryByID", mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestRejectEntry_Success() {
	entry := suite.pendingEntry()

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("ApplyTransition", suite.ctx, mock.AnythingOfType("domain.Entry"), domain.Pending, mock.AnythingOfType("domain.HistoryEvent")).Return(nil).Once()
	suite.mockNotifier.On("Notify", suite.ctx, suite.participant.ActorID, mock.Anything, mock.Anything, domain.NotifyApproval).Return(nil).Once()

	result, err := suite.service.RejectEntry(suite.ctx, entry.EntryID, dto.ReviewRequest{Note: validNote}, suite.reviewer)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(domain.Rejected), result.Entry.Status)
	assert.Equal(suite.T(), validNote, result.Entry.ReviewerNote)
}

func (suite *EntryServiceTestSuite) TestRequestRevision_Success() {
	entry := suite.pendingEntry()

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("ApplyTransition", suite.ctx, mock.AnythingOfType("domain.Entry"), domain.Pending, mock.AnythingOfType("domain.HistoryEvent")).Return(nil).Once()
	suite.mockNotifier.On("Notify", suite.ctx, suite.participant.ActorID, mock.Anything, mock.Anything, domain.NotifyApproval).Return(nil).Once()

	result, err := suite.service.RequestRevision(suite.ctx, entry.EntryID, dto.ReviewRequest{Note: validNote}, suite.reviewer)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(domain.NeedsRevision), result.Entry.Status)
}

// --- ResubmitEntry ---

func (suite *EntryServiceTestSuite) TestResubmitEntry_ClearsReviewFields() {
	entry := suite.pendingEntry()
	entry.Status = domain.Rejected
	reviewerID := suite.reviewer.ActorID
	reviewedAt := time.Now().UTC().Add(-time.Hour)
	entry.ReviewerNote = validNote
	entry.ReviewedBy = &reviewerID
	entry.ReviewedAt = &reviewedAt

	req := dto.ResubmitEntryRequest{Description: "Reworked the summary with the missing deployment steps"}

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("ApplyTransition", suite.ctx, mock.AnythingOfType("domain.Entry"), domain.Rejected, mock.AnythingOfType("domain.HistoryEvent")).Return(nil).Once()

	updated, err := suite.service.ResubmitEntry(suite.ctx, entry.EntryID, req, suite.participant)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.Pending, updated.Status)
	assert.Empty(suite.T(), updated.ReviewerNote)
	assert.Nil(suite.T(), updated.ReviewedBy)
	assert.Nil(suite.T(), updated.ReviewedAt)

	for _, call := range suite.mockEntryRepo.Calls {
		if call.Method == "ApplyTransition" {
			event := call.Arguments.Get(3).(domain.HistoryEvent)
			assert.Equal(suite.T(), domain.ActionUpdate, event.Action)
		}
	}
}

func (suite *EntryServiceTestSuite) TestResubmitEntry_FromApprovedRefused() {
	entry := suite.pendingEntry()
	entry.Status = domain.Approved

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.ResubmitEntry(suite.ctx, entry.EntryID, dto.ResubmitEntryRequest{Description: "Reworked the summary with more detail about testing"}, suite.participant)

	assert.ErrorIs(suite.T(), err, services.ErrInvalidTransition)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestResubmitEntry_NonOwnerForbidden() {
	entry := suite.pendingEntry()
	entry.Status = domain.Rejected
	other := domain.Actor{ActorID: uuid.NewString()}

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.ResubmitEntry(suite.ctx, entry.EntryID, dto.ResubmitEntryRequest{Description: "Reworked the summary with more detail about testing"}, other)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

// --- DeleteEntry ---

func (suite *EntryServiceTestSuite) TestDeleteEntry_PendingSuccess() {
	entry := suite.pendingEntry()

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("SoftDeleteEntry", suite.ctx, entry.EntryID, domain.Pending, suite.participant.ActorID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("domain.HistoryEvent")).Return(nil).Once()

	err := suite.service.DeleteEntry(suite.ctx, entry.EntryID, suite.participant)

	assert.NoError(suite.T(), err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestDeleteEntry_NeedsRevisionSuccess() {
	entry := suite.pendingEntry()
	entry.Status = domain.NeedsRevision

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("SoftDeleteEntry", suite.ctx, entry.EntryID, domain.NeedsRevision, suite.participant.ActorID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("domain.HistoryEvent")).Return(nil).Once()

	err := suite.service.DeleteEntry(suite.ctx, entry.EntryID, suite.participant)

	assert.NoError(suite.T(), err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestDeleteEntry_RejectedRefused() {
	// A rejected entry must be resubmitted, not deleted.
	entry := suite.pendingEntry()
	entry.Status = domain.Rejected

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()

	err := suite.service.DeleteEntry(suite.ctx, entry.EntryID, suite.participant)

	assert.ErrorIs(suite.T(), err, services.ErrInvalidTransition)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SoftDeleteEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestDeleteEntry_ApprovedRefused() {
	entry := suite.pendingEntry()
	entry.Status = domain.Approved

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()

	err := suite.service.DeleteEntry(suite.ctx, entry.EntryID, suite.participant)

	assert.ErrorIs(suite.T(), err, services.ErrInvalidTransition)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SoftDeleteEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Reads ---

func (suite *EntryServiceTestSuite) TestGetEntryByID_ForeignEntryObscured() {
	entry := suite.pendingEntry()
	other := domain.Actor{ActorID: uuid.NewString()}

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()

	got, err := suite.service.GetEntryByID(suite.ctx, entry.EntryID, other)

	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *EntryServiceTestSuite) TestGetEntryByID_ReviewerSeesAll() {
	entry := suite.pendingEntry()

	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, entry.EntryID).Return(entry, nil).Once()

	got, err := suite.service.GetEntryByID(suite.ctx, entry.EntryID, suite.reviewer)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), entry.EntryID, got.EntryID)
}

func (suite *EntryServiceTestSuite) TestListEntries_ParticipantScopedToSelf() {
	otherID := uuid.NewString()
	params := dto.ListEntriesParams{ParticipantID: &otherID, Limit: 10}

	suite.mockEntryRepo.On("ListEntries", suite.ctx, mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		// Regardless of the requested filter, a participant only sees their own entries.
		return f.ParticipantID != nil && *f.ParticipantID == suite.participant.ActorID
	}), 10, (*string)(nil)).Return([]domain.Entry{}, nil, nil).Once()

	_, err := suite.service.ListEntries(suite.ctx, suite.participant, params)

	assert.NoError(suite.T(), err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
