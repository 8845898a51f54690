package handlers

import (
	"encoding/json"
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

type WalletHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	echo              *echo.Echo
	mockWalletService *service_mocks.MockWalletServiceInterface
	handler           *WalletHandler
	ownerID           uuid.UUID
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (s *WalletHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockWalletService = service_mocks.NewMockWalletServiceInterface(s.ctrl)
	s.handler = NewWalletHandler(s.mockWalletService)
	s.ownerID = uuid.New()
}

func (s *WalletHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *WalletHandlerTestSuite) TestGetWallet_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/owners/"+s.ownerID.String()+"/wallet", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("ownerId")
	c.SetParamValues(s.ownerID.String())

	s.mockWalletService.EXPECT().
		GetWallet(gomock.Any(), s.ownerID).
		Return(&models.OwnerWallet{
			OwnerID:            s.ownerID,
			CurrentBalance:     decimal.NewFromInt(500),
			CommissionsPayable: decimal.NewFromInt(150),
			UpdatedAt:          time.Now(),
		}, nil)

	err := s.handler.GetWallet(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response["data"])
}

func (s *WalletHandlerTestSuite) TestGetWallet_OwnerNotFound() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/owners/"+s.ownerID.String()+"/wallet", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("ownerId")
	c.SetParamValues(s.ownerID.String())

	s.mockWalletService.EXPECT().
		GetWallet(gomock.Any(), s.ownerID).
		Return(nil, services.ErrNotFound)

	err := s.handler.GetWallet(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *WalletHandlerTestSuite) TestGetWallet_InvalidOwnerID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/owners/xyz/wallet", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("ownerId")
	c.SetParamValues("xyz")

	err := s.handler.GetWallet(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("OWNER_002", response.Error.Code)
}

func (s *WalletHandlerTestSuite) TestCreatePayout_Success() {
	body := `{"amount":"300.00","currency":"GHS","method":"mobile_money","reference":"MM-2026-001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/owners/"+s.ownerID.String()+"/payouts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("ownerId")
	c.SetParamValues(s.ownerID.String())

	amount := decimal.NewFromInt(300)
	s.mockWalletService.EXPECT().
		CreatePayout(gomock.Any(), s.ownerID, gomock.Any(), "GHS", models.PayoutMethodMobileMoney, "MM-2026-001").
		Return(
			&models.Payout{ID: uuid.New(), OwnerID: s.ownerID, Amount: amount, Currency: "GHS", Method: models.PayoutMethodMobileMoney},
			&models.OwnerWallet{OwnerID: s.ownerID, CurrentBalance: decimal.NewFromInt(200)},
			nil,
		)

	err := s.handler.CreatePayout(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *WalletHandlerTestSuite) TestCreatePayout_InvalidMethod() {
	body := `{"amount":"300.00","currency":"GHS","method":"carrier_pigeon"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/owners/"+s.ownerID.String()+"/payouts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("ownerId")
	c.SetParamValues(s.ownerID.String())

	err := s.handler.CreatePayout(c)

	s.NoError(err)
	// rejected by request validation before the service is called
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *WalletHandlerTestSuite) TestCreatePayout_NonPositiveAmount() {
	body := `{"amount":"-5","currency":"GHS","method":"cash"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/owners/"+s.ownerID.String()+"/payouts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("ownerId")
	c.SetParamValues(s.ownerID.String())

	s.mockWalletService.EXPECT().
		CreatePayout(gomock.Any(), s.ownerID, gomock.Any(), "GHS", models.PayoutMethodCash, "").
		Return(nil, nil, services.ErrInvalidPayoutAmount)

	err := s.handler.CreatePayout(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("WALLET_003", response.Error.Code)
}
