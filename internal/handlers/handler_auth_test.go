package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/homefolio/expense_tracker_app/internal/apperrors"
	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	"github.com/homefolio/expense_tracker_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	mockService *MockAuthService
	router      *gin.Engine
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockAuthService)
	suite.router = setupTestRouter(new(MockExpenseService), new(MockReportingService), suite.mockService)
}

func (suite *AuthHandlerTestSuite) postLogin(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	cred := &domain.Credential{Token: testAppToken, User: "aaditya"}
	suite.mockService.On("Login", mock.Anything, "aaditya", "secret").Return(cred, nil).Once()

	w := suite.postLogin(`{"username":"aaditya","password":"secret"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Ok)
	suite.Equal(testAppToken, resp.Token)
	suite.Equal("aaditya", resp.User)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := suite.postLogin(`{"username":"aaditya"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"ok":false,"error":"Username and password are required"}`, w.Body.String())
	suite.mockService.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_MalformedJSON() {
	w := suite.postLogin(`{"username":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockService.On("Login", mock.Anything, "mallory", "guess").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postLogin(`{"username":"mallory","password":"guess"}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"ok":false,"error":"Invalid credentials"}`, w.Body.String())
	suite.mockService.AssertExpectations(suite.T())
}

// Run the suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
