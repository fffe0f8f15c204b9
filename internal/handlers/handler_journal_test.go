package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/dto"
)

type JournalHandlerTestSuite struct {
	handlerSuite
}

func rentEntry() *domain.JournalEntry {
	amount := decimal.NewFromInt(1500000)
	return &domain.JournalEntry{
		ID:          "entry-1",
		EntryNumber: 1,
		Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Description: "Canon marzo",
		EntryType:   domain.EntryTypeIncome,
		Lines: []domain.PostingLine{
			{LineNo: 1, AccountCode: "1105", DebitAmount: amount, CreditAmount: decimal.Zero},
			{LineNo: 2, AccountCode: "4170", DebitAmount: decimal.Zero, CreditAmount: amount},
		},
		TotalDebit:  amount,
		TotalCredit: amount,
	}
}

const rentBody = `{
	"date": "2024-03-05",
	"description": "Canon marzo",
	"entryType": "INCOME",
	"lines": [
		{"accountCode": "1105", "debit": 1500000},
		{"accountCode": "4170", "credit": "1500000"}
	]
}`

func (s *JournalHandlerTestSuite) TestCreateEntry_Success() {
	s.journal.On("CreateEntry", mock.Anything,
		mock.MatchedBy(func(req dto.CreateJournalEntryRequest) bool {
			return req.Date == "2024-03-05" && len(req.Lines) == 2 &&
				req.Lines[0].Debit == "1500000" && req.Lines[1].Credit == "1500000"
		}),
		testUserID,
	).Return(rentEntry(), nil).Once()

	w := s.do(http.MethodPost, "/api/v1/journal-entries", rentBody)

	s.Equal(http.StatusCreated, w.Code)
	var body dto.JournalEntryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(int64(1), body.EntryNumber)
	s.Equal("2024-03-05", body.Date)
	s.True(body.TotalDebit.Equal(body.TotalCredit))
}

func (s *JournalHandlerTestSuite) TestCreateEntry_MalformedDate() {
	w := s.do(http.MethodPost, "/api/v1/journal-entries", `{"date":"05/03/2024","description":"x","lines":[]}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *JournalHandlerTestSuite) TestCreateEntry_LedgerRejection() {
	rejection := &apperrors.LedgerError{
		Kind:        apperrors.KindUnbalancedEntry,
		TotalDebit:  decimal.NewFromInt(100),
		TotalCredit: decimal.NewFromInt(90),
		MinorUnits:  2,
	}
	s.journal.On("CreateEntry", mock.Anything, mock.Anything, testUserID).Return(nil, rejection).Once()

	w := s.do(http.MethodPost, "/api/v1/journal-entries", rentBody)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	var body dto.LedgerErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("UNBALANCED_ENTRY", body.Kind)
	s.Equal("100.00", body.TotalDebit)
	s.Equal("90.00", body.TotalCredit)
}

func (s *JournalHandlerTestSuite) TestCreateEntry_LedgerRejectionThreeMinorUnits() {
	rejection := &apperrors.LedgerError{
		Kind:        apperrors.KindUnbalancedEntry,
		TotalDebit:  decimal.RequireFromString("100.001"),
		TotalCredit: decimal.RequireFromString("100"),
		MinorUnits:  3,
	}
	s.journal.On("CreateEntry", mock.Anything, mock.Anything, testUserID).Return(nil, rejection).Once()

	w := s.do(http.MethodPost, "/api/v1/journal-entries", rentBody)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	var body dto.LedgerErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("100.001", body.TotalDebit)
	s.Equal("100.000", body.TotalCredit)
	s.Equal("total debit 100.001 does not equal total credit 100.000", body.Error)
}

func (s *JournalHandlerTestSuite) TestCreateEntry_UnknownAccountsListed() {
	rejection := &apperrors.LedgerError{Kind: apperrors.KindUnknownAccount, Codes: []string{"9999", "1110"}}
	s.journal.On("CreateEntry", mock.Anything, mock.Anything, testUserID).Return(nil, rejection).Once()

	w := s.do(http.MethodPost, "/api/v1/journal-entries", rentBody)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	var body dto.LedgerErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal([]string{"9999", "1110"}, body.Codes)
}

func (s *JournalHandlerTestSuite) TestCreateEntry_ClosedPeriod() {
	s.journal.On("CreateEntry", mock.Anything, mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: 2024-03", apperrors.ErrPeriodClosed)).Once()

	w := s.do(http.MethodPost, "/api/v1/journal-entries", rentBody)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *JournalHandlerTestSuite) TestListEntries_PassesFilterAndPaging() {
	token := "abc"
	s.journal.On("ListEntries", mock.Anything, mock.MatchedBy(func(p dto.ListJournalEntriesParams) bool {
		return p.Limit == 5 && p.NextToken != nil && *p.NextToken == token &&
			p.Filter.AccountCode == "1105" && p.Filter.DateFrom != nil &&
			p.Filter.DateFrom.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return(&dto.ListJournalEntriesResponse{Entries: []dto.JournalEntryResponse{}}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/journal-entries?limit=5&nextToken=abc&accountCode=1105&dateFrom=2024-03-01", "")

	s.Equal(http.StatusOK, w.Code)
}

func (s *JournalHandlerTestSuite) TestListEntries_BadInput() {
	for _, url := range []string{
		"/api/v1/journal-entries?limit=-1",
		"/api/v1/journal-entries?limit=ten",
		"/api/v1/journal-entries?dateFrom=2024-13-01",
		"/api/v1/journal-entries?dateFrom=2024-03-31&dateTo=2024-03-01",
	} {
		w := s.do(http.MethodGet, url, "")
		s.Equal(http.StatusBadRequest, w.Code, url)
	}
}

func (s *JournalHandlerTestSuite) TestGetEntry() {
	s.journal.On("GetEntry", mock.Anything, "entry-1").Return(rentEntry(), nil).Once()
	s.journal.On("GetEntry", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/journal-entries/entry-1", "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/journal-entries/missing", "").Code)
}

func (s *JournalHandlerTestSuite) TestReverseEntry() {
	reversal := rentEntry()
	reversal.ID = "entry-2"
	reversal.EntryNumber = 2
	reversal.ReversesEntryID = "entry-1"
	s.journal.On("ReverseEntry", mock.Anything, "entry-1", testUserID).Return(reversal, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/journal-entries/entry-1/reverse", "")

	s.Equal(http.StatusCreated, w.Code)
	var body dto.JournalEntryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("entry-1", body.ReversesEntryID)
}

func (s *JournalHandlerTestSuite) TestMutationsAreRejected() {
	s.journal.On("RejectMutation", mock.Anything, "entry-1").Return(apperrors.ErrImmutable).Times(3)
	s.journal.On("RejectMutation", mock.Anything, "missing").Return(apperrors.ErrNotFound).Once()

	s.Equal(http.StatusMethodNotAllowed, s.do(http.MethodPut, "/api/v1/journal-entries/entry-1", `{"description":"x"}`).Code)
	s.Equal(http.StatusMethodNotAllowed, s.do(http.MethodPatch, "/api/v1/journal-entries/entry-1", `{"description":"x"}`).Code)
	s.Equal(http.StatusMethodNotAllowed, s.do(http.MethodDelete, "/api/v1/journal-entries/entry-1", "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/api/v1/journal-entries/missing", "").Code)
}

func TestJournalHandler(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
