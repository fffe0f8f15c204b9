// Package seed loads a chart of accounts from YAML and creates the missing accounts.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/dto"
)

// ChartAccount is one account of a chart file.
type ChartAccount struct {
	Code               string `yaml:"code"`
	Name               string `yaml:"name"`
	ClassName          string `yaml:"className"`
	DebitNormal        *bool  `yaml:"debitNormal"`
	TracksCounterparty bool   `yaml:"tracksCounterparty"`
}

// ChartFile is the document layout of a chart file.
type ChartFile struct {
	Accounts []ChartAccount `yaml:"accounts"`
}

// Result counts what a seed run did.
type Result struct {
	Created int
	Skipped int
}

// LoadChart decodes a chart file and orders it so that every parent precedes its children.
func LoadChart(r io.Reader) ([]ChartAccount, error) {
	var file ChartFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode chart file: %w", err)
	}
	if len(file.Accounts) == 0 {
		return nil, errors.New("chart file lists no accounts")
	}

	seen := make(map[string]bool, len(file.Accounts))
	for _, a := range file.Accounts {
		if a.Code == "" || a.Name == "" {
			return nil, fmt.Errorf("chart account %q: code and name are required", a.Code)
		}
		if seen[a.Code] {
			return nil, fmt.Errorf("chart account %q is listed twice", a.Code)
		}
		seen[a.Code] = true
	}

	sort.SliceStable(file.Accounts, func(i, j int) bool {
		ci, cj := file.Accounts[i].Code, file.Accounts[j].Code
		if len(ci) != len(cj) {
			return len(ci) < len(cj)
		}
		return ci < cj
	})
	return file.Accounts, nil
}

// Chart creates every account that does not exist yet. Existing codes are left untouched.
func Chart(ctx context.Context, svc portssvc.AccountSvcFacade, accounts []ChartAccount, userID string) (Result, error) {
	var res Result
	for _, a := range accounts {
		req := dto.CreateAccountRequest{
			Code:               a.Code,
			Name:               a.Name,
			ClassName:          a.ClassName,
			IsDebitNormal:      a.DebitNormal,
			TracksCounterparty: a.TracksCounterparty,
		}
		_, err := svc.CreateAccount(ctx, req, userID)
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, apperrors.ErrDuplicate):
			res.Skipped++
			slog.Debug("Account already exists, skipping", slog.String("code", a.Code))
		default:
			return res, fmt.Errorf("failed to create account %s: %w", a.Code, err)
		}
	}
	return res, nil
}
