package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-backoffice/internal/models"
	"rental-backoffice/internal/repositories"
	"rental-backoffice/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StatementLifecycleTestSuite defines the test suite for StatementLifecycleServiceInterface
type StatementLifecycleTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockStatementRepo *repository_mocks.MockStatementRepositoryInterface
	mockWalletRepo    *repository_mocks.MockWalletRepositoryInterface
	renderer          *stubRenderer
	notifier          *stubNotifier
	service           StatementLifecycleServiceInterface
}

type stubRenderer struct {
	document []byte
	err      error
	calls    int
}

func (r *stubRenderer) Render(ctx context.Context, statement *models.Statement) ([]byte, error) {
	r.calls++
	return r.document, r.err
}

type stubNotifier struct {
	err   error
	calls int
}

func (n *stubNotifier) NotifyStatementFinalized(ctx context.Context, ownerID uuid.UUID, statement *models.Statement) error {
	n.calls++
	return n.err
}

// SetupTest runs before each test
func (s *StatementLifecycleTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStatementRepo = repository_mocks.NewMockStatementRepositoryInterface(s.ctrl)
	s.mockWalletRepo = repository_mocks.NewMockWalletRepositoryInterface(s.ctrl)
	s.renderer = &stubRenderer{document: []byte("statement document")}
	s.notifier = &stubNotifier{}
	s.service = NewStatementLifecycleService(s.mockStatementRepo, s.mockWalletRepo, s.renderer, s.notifier, nil)
}

// TearDownTest runs after each test
func (s *StatementLifecycleTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestStatementLifecycleSuite runs the test suite
func TestStatementLifecycleSuite(t *testing.T) {
	suite.Run(t, new(StatementLifecycleTestSuite))
}

func finalizedStatement(ownerID uuid.UUID) *models.Statement {
	now := time.Now()
	return &models.Statement{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Status:      models.StatementStatusFinalized,
		NetToOwner:  decimal.NewFromInt(885),
		FinalizedAt: &now,
	}
}

func (s *StatementLifecycleTestSuite) TestFinalizeStatement_Success() {
	ownerID := uuid.New()
	statement := finalizedStatement(ownerID)
	wallet := &models.OwnerWallet{OwnerID: ownerID, CurrentBalance: decimal.NewFromInt(885)}

	s.mockStatementRepo.EXPECT().FinalizeAndApplyToWallet(statement.ID).Return(statement, wallet, nil)

	result, err := s.service.FinalizeStatement(context.Background(), statement.ID)

	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal(statement, result.Statement)
	s.Equal(wallet, result.Wallet)
	s.Equal([]byte("statement document"), result.Document)
	s.Empty(result.Warnings)
	s.Equal(1, s.renderer.calls)
	s.Equal(1, s.notifier.calls)
}

func (s *StatementLifecycleTestSuite) TestFinalizeStatement_NotFound() {
	id := uuid.New()
	s.mockStatementRepo.EXPECT().FinalizeAndApplyToWallet(id).Return(nil, nil, repositories.ErrStatementNotFound)

	result, err := s.service.FinalizeStatement(context.Background(), id)

	s.ErrorIs(err, ErrNotFound)
	s.Nil(result)
}

func (s *StatementLifecycleTestSuite) TestFinalizeStatement_AlreadyFinalized() {
	id := uuid.New()
	s.mockStatementRepo.EXPECT().FinalizeAndApplyToWallet(id).Return(nil, nil, repositories.ErrStatementNotDraft)

	result, err := s.service.FinalizeStatement(context.Background(), id)

	s.ErrorIs(err, ErrStatementNotDraft)
	s.Nil(result)
}

// Rendering failure after commit degrades to a warning: the finalized state
// and wallet update already happened and must stand.
func (s *StatementLifecycleTestSuite) TestFinalizeStatement_RenderFailureIsWarning() {
	ownerID := uuid.New()
	statement := finalizedStatement(ownerID)
	wallet := &models.OwnerWallet{OwnerID: ownerID}
	s.renderer.err = errors.New("renderer unavailable")

	s.mockStatementRepo.EXPECT().FinalizeAndApplyToWallet(statement.ID).Return(statement, wallet, nil)

	result, err := s.service.FinalizeStatement(context.Background(), statement.ID)

	s.NoError(err)
	s.Require().NotNil(result)
	s.Nil(result.Document)
	s.Len(result.Warnings, 1)
	s.Contains(result.Warnings[0], "rendering failed")
	// notification still attempted
	s.Equal(1, s.notifier.calls)
}

func (s *StatementLifecycleTestSuite) TestFinalizeStatement_NotifyFailureIsWarning() {
	ownerID := uuid.New()
	statement := finalizedStatement(ownerID)
	wallet := &models.OwnerWallet{OwnerID: ownerID}
	s.notifier.err = errors.New("smtp down")

	s.mockStatementRepo.EXPECT().FinalizeAndApplyToWallet(statement.ID).Return(statement, wallet, nil)

	result, err := s.service.FinalizeStatement(context.Background(), statement.ID)

	s.NoError(err)
	s.Len(result.Warnings, 1)
	s.Contains(result.Warnings[0], "notification failed")
	s.Equal([]byte("statement document"), result.Document)
}

func (s *StatementLifecycleTestSuite) TestDeleteStatement_Success() {
	id := uuid.New()
	s.mockStatementRepo.EXPECT().DeleteDraft(id).Return(nil)

	s.NoError(s.service.DeleteStatement(context.Background(), id))
}

func (s *StatementLifecycleTestSuite) TestDeleteStatement_Finalized() {
	id := uuid.New()
	s.mockStatementRepo.EXPECT().DeleteDraft(id).Return(repositories.ErrStatementNotDeletable)

	err := s.service.DeleteStatement(context.Background(), id)

	s.ErrorIs(err, ErrStatementUndeletable)
}

func (s *StatementLifecycleTestSuite) TestDeleteStatement_NotFound() {
	id := uuid.New()
	s.mockStatementRepo.EXPECT().DeleteDraft(id).Return(repositories.ErrStatementNotFound)

	err := s.service.DeleteStatement(context.Background(), id)

	s.ErrorIs(err, ErrNotFound)
}

func (s *StatementLifecycleTestSuite) TestGetStatement_Success() {
	statement := finalizedStatement(uuid.New())
	s.mockStatementRepo.EXPECT().GetWithLines(statement.ID).Return(statement, nil)

	got, err := s.service.GetStatement(context.Background(), statement.ID)

	s.NoError(err)
	s.Equal(statement, got)
}

func (s *StatementLifecycleTestSuite) TestGetStatement_NotFound() {
	id := uuid.New()
	s.mockStatementRepo.EXPECT().GetWithLines(id).Return(nil, repositories.ErrStatementNotFound)

	_, err := s.service.GetStatement(context.Background(), id)

	s.ErrorIs(err, ErrNotFound)
}

func (s *StatementLifecycleTestSuite) TestListStatements() {
	ownerID := uuid.New()
	statements := []models.Statement{*finalizedStatement(ownerID)}
	s.mockStatementRepo.EXPECT().ListByOwner(ownerID, 0, 20).Return(statements, int64(1), nil)

	got, total, err := s.service.ListStatements(context.Background(), ownerID, 0, 20)

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(got, 1)
}
