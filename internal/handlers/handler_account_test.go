package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/dto"
)

type AccountHandlerTestSuite struct {
	handlerSuite
}

func (s *AccountHandlerTestSuite) TestCreateAccount_Success() {
	expected := &domain.Account{Code: "1105", Name: "Caja", ClassName: "Activo", Level: 3, IsDebitNormal: true, Active: true}
	s.accounts.On("CreateAccount", mock.Anything,
		dto.CreateAccountRequest{Code: "1105", Name: "Caja", ClassName: "Activo"},
		testUserID,
	).Return(expected, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts", `{"code":"1105","name":"Caja","className":"Activo"}`)

	s.Equal(http.StatusCreated, w.Code)
	var body dto.AccountResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("1105", body.Code)
	s.Equal("11", body.ParentCode)
	s.Equal(domain.Asset, body.Class)
}

func (s *AccountHandlerTestSuite) TestCreateAccount_InvalidBody() {
	for _, payload := range []string{
		`{"code":"11A5","name":"Caja"}`,
		`{"code":"110","name":"Caja"}`,
		`{"code":"1105"}`,
	} {
		w := s.do(http.MethodPost, "/api/v1/accounts", payload)
		s.Equal(http.StatusBadRequest, w.Code, payload)
	}
	s.accounts.AssertNotCalled(s.T(), "CreateAccount")
}

func (s *AccountHandlerTestSuite) TestCreateAccount_ErrorMapping() {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"duplicate", fmt.Errorf("account 1105: %w", apperrors.ErrDuplicate), http.StatusConflict},
		{"missing parent", fmt.Errorf("%w: parent account 11 does not exist", apperrors.ErrValidation), http.StatusBadRequest},
		{"infrastructure", apperrors.NewAppError(http.StatusServiceUnavailable, "Database unavailable", nil), http.StatusServiceUnavailable},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.accounts.On("CreateAccount", mock.Anything, mock.Anything, testUserID).Return(nil, tt.err).Once()

			w := s.do(http.MethodPost, "/api/v1/accounts", `{"code":"1105","name":"Caja"}`)

			s.Equal(tt.wantCode, w.Code)
			s.NotContains(w.Body.String(), "boom")
		})
	}
}

func (s *AccountHandlerTestSuite) TestListAccounts_IncludeInactive() {
	s.accounts.On("ListAccounts", mock.Anything, true).Return([]domain.Account{
		{Code: "1", Name: "Activo", Level: 1, Active: true},
		{Code: "1110", Name: "Bancos", Level: 3, Active: false},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts?includeInactive=true", "")

	s.Equal(http.StatusOK, w.Code)
	var body []dto.AccountResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Len(body, 2)
	s.False(body[1].Active)
}

func (s *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	s.accounts.On("GetAccount", mock.Anything, "9999").Return(nil, apperrors.ErrNotFound).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/9999", "")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *AccountHandlerTestSuite) TestUpdateAccount() {
	name := "Caja menor"
	s.accounts.On("UpdateAccount", mock.Anything, "1105", dto.UpdateAccountRequest{Name: &name}, testUserID).
		Return(&domain.Account{Code: "1105", Name: name, Active: true}, nil).Once()

	w := s.do(http.MethodPatch, "/api/v1/accounts/1105", `{"name":"Caja menor"}`)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Caja menor")
}

func (s *AccountHandlerTestSuite) TestDeactivateAccount() {
	s.accounts.On("DeactivateAccount", mock.Anything, "1105", testUserID).Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/accounts/1105", "")

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *AccountHandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := newRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AccountHandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := newRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
