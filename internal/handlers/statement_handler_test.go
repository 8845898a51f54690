package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental-backoffice/internal/models"
	"rental-backoffice/internal/services"
	"rental-backoffice/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StatementHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	echo                 *echo.Echo
	mockBuilderService   *service_mocks.MockStatementBuilderServiceInterface
	mockLifecycleService *service_mocks.MockStatementLifecycleServiceInterface
	handler              *StatementHandler
	ownerID              uuid.UUID
	statementID          uuid.UUID
}

func TestStatementHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatementHandlerTestSuite))
}

func (s *StatementHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockBuilderService = service_mocks.NewMockStatementBuilderServiceInterface(s.ctrl)
	s.mockLifecycleService = service_mocks.NewMockStatementLifecycleServiceInterface(s.ctrl)
	s.handler = NewStatementHandler(s.mockBuilderService, s.mockLifecycleService)
	s.ownerID = uuid.New()
	s.statementID = uuid.New()
}

func (s *StatementHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StatementHandlerTestSuite) draftStatement() *models.Statement {
	return &models.Statement{
		ID:              s.statementID,
		OwnerID:         s.ownerID,
		PeriodStart:     time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:       time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
		Status:          models.StatementStatusDraft,
		DisplayCurrency: "GHS",
		GrossRevenue:    decimal.NewFromInt(1000),
		NetToOwner:      decimal.NewFromInt(885),
		ClosingBalance:  decimal.NewFromInt(885),
	}
}

// ========================================
// POST /api/v1/statements Tests
// ========================================

func (s *StatementHandlerTestSuite) TestGenerateStatement_Success() {
	body := fmt.Sprintf(`{"owner_id":%q,"period_start":"2026-07-01","period_end":"2026-07-31"}`, s.ownerID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockBuilderService.EXPECT().
		GenerateStatement(gomock.Any(), services.GenerateStatementInput{
			OwnerID:     s.ownerID,
			PeriodStart: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
		}).
		Return(s.draftStatement(), nil)

	err := s.handler.GenerateStatement(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response["data"])
}

func (s *StatementHandlerTestSuite) TestGenerateStatement_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements", strings.NewReader(`{"owner_id":"not-a-uuid"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.GenerateStatement(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *StatementHandlerTestSuite) TestGenerateStatement_InvalidPeriod() {
	body := fmt.Sprintf(`{"owner_id":%q,"period_start":"2026-07-31","period_end":"2026-07-01"}`, s.ownerID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockBuilderService.EXPECT().
		GenerateStatement(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidPeriod)

	err := s.handler.GenerateStatement(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("STATEMENT_002", response.Error.Code)
}

func (s *StatementHandlerTestSuite) TestGenerateStatement_OwnerNotFound() {
	body := fmt.Sprintf(`{"owner_id":%q,"period_start":"2026-07-01","period_end":"2026-07-31"}`, s.ownerID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockBuilderService.EXPECT().
		GenerateStatement(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrNotFound)

	err := s.handler.GenerateStatement(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *StatementHandlerTestSuite) TestGenerateStatement_RateUnavailable() {
	body := fmt.Sprintf(`{"owner_id":%q,"period_start":"2026-07-01","period_end":"2026-07-31","display_currency":"JPY"}`, s.ownerID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockBuilderService.EXPECT().
		GenerateStatement(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("converting booking: %w", services.ErrRateUnavailable))

	err := s.handler.GenerateStatement(c)

	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

// ========================================
// POST /api/v1/statements/:id/finalize Tests
// ========================================

func (s *StatementHandlerTestSuite) TestFinalizeStatement_Success() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements/"+s.statementID.String()+"/finalize", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(s.statementID.String())

	statement := s.draftStatement()
	statement.Status = models.StatementStatusFinalized
	now := time.Now()
	statement.FinalizedAt = &now

	s.mockLifecycleService.EXPECT().
		FinalizeStatement(gomock.Any(), s.statementID).
		Return(&services.FinalizeResult{
			Statement: statement,
			Wallet:    &models.OwnerWallet{OwnerID: s.ownerID, CurrentBalance: decimal.NewFromInt(885)},
		}, nil)

	err := s.handler.FinalizeStatement(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *StatementHandlerTestSuite) TestFinalizeStatement_AlreadyFinalized() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements/"+s.statementID.String()+"/finalize", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(s.statementID.String())

	s.mockLifecycleService.EXPECT().
		FinalizeStatement(gomock.Any(), s.statementID).
		Return(nil, services.ErrStatementNotDraft)

	err := s.handler.FinalizeStatement(c)

	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("STATEMENT_003", response.Error.Code)
}

func (s *StatementHandlerTestSuite) TestFinalizeStatement_InvalidID() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements/abc/finalize", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := s.handler.FinalizeStatement(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// ========================================
// DELETE /api/v1/statements/:id Tests
// ========================================

func (s *StatementHandlerTestSuite) TestDeleteStatement_Success() {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/statements/"+s.statementID.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(s.statementID.String())

	s.mockLifecycleService.EXPECT().
		DeleteStatement(gomock.Any(), s.statementID).
		Return(nil)

	err := s.handler.DeleteStatement(c)

	s.NoError(err)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *StatementHandlerTestSuite) TestDeleteStatement_Finalized() {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/statements/"+s.statementID.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(s.statementID.String())

	s.mockLifecycleService.EXPECT().
		DeleteStatement(gomock.Any(), s.statementID).
		Return(services.ErrStatementUndeletable)

	err := s.handler.DeleteStatement(c)

	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("STATEMENT_004", response.Error.Code)
}

// ========================================
// GET /api/v1/statements/:id Tests
// ========================================

func (s *StatementHandlerTestSuite) TestGetStatement_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/statements/"+s.statementID.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(s.statementID.String())

	s.mockLifecycleService.EXPECT().
		GetStatement(gomock.Any(), s.statementID).
		Return(s.draftStatement(), nil)

	err := s.handler.GetStatement(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *StatementHandlerTestSuite) TestGetStatement_NotFound() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/statements/"+s.statementID.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(s.statementID.String())

	s.mockLifecycleService.EXPECT().
		GetStatement(gomock.Any(), s.statementID).
		Return(nil, services.ErrNotFound)

	err := s.handler.GetStatement(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// ========================================
// GET /api/v1/owners/:ownerId/statements Tests
// ========================================

func (s *StatementHandlerTestSuite) TestListStatements_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/owners/"+s.ownerID.String()+"/statements?limit=10", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("ownerId")
	c.SetParamValues(s.ownerID.String())

	s.mockLifecycleService.EXPECT().
		ListStatements(gomock.Any(), s.ownerID, 0, 10).
		Return([]models.Statement{*s.draftStatement()}, int64(1), nil)

	err := s.handler.ListStatements(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *StatementHandlerTestSuite) TestListStatements_LimitClamped() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/owners/"+s.ownerID.String()+"/statements?limit=500", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("ownerId")
	c.SetParamValues(s.ownerID.String())

	s.mockLifecycleService.EXPECT().
		ListStatements(gomock.Any(), s.ownerID, 0, defaultPageLimit).
		Return(nil, int64(0), nil)

	err := s.handler.ListStatements(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}
