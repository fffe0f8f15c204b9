package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	cache       LedgerCache
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountCache invalidates cached reports whenever the chart changes.
func WithAccountCache(cache LedgerCache) AccountServiceOption {
	return func(s *accountService) {
		s.cache = cache
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{accountRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	code := strings.TrimSpace(req.Code)
	level, err := domain.LevelForCode(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	// Every account below the class level hangs off an existing parent
	if parent := domain.ParentCode(code); parent != "" {
		if _, err := s.accountRepo.FindAccountByCode(ctx, parent); err != nil {
			s.LogWarn(ctx, err, "Parent account not found", slog.String("account_code", code), slog.String("parent_code", parent))
			return nil, fmt.Errorf("%w: parent account %s does not exist", apperrors.ErrValidation, parent)
		}
	}

	class := domain.ClassForCode(code)
	isDebitNormal := domain.IsDebitNormalClass(class)
	if req.IsDebitNormal != nil {
		isDebitNormal = *req.IsDebitNormal
	}
	className := strings.TrimSpace(req.ClassName)
	if className == "" {
		className = string(class)
	}

	now := time.Now().UTC()
	account := domain.Account{
		Code:               code,
		Name:               strings.TrimSpace(req.Name),
		ClassName:          className,
		Level:              level,
		IsDebitNormal:      isDebitNormal,
		TracksCounterparty: req.TracksCounterparty,
		Active:             true,
		AuditFields:        newAuditFields(userID, now),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_code", code))
		return nil, err
	}
	s.invalidate(ctx)

	s.LogInfo(ctx, "Account created successfully", slog.String("account_code", code), slog.Int("level", level))
	return &account, nil
}

func (s *accountService) GetAccount(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		s.LogDebug(ctx, "Account lookup failed", slog.String("account_code", code), slog.String("error", err.Error()))
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	if includeInactive {
		return accounts, nil
	}
	active := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if acc.Active {
			active = append(active, acc)
		}
	}
	return active, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = name
	}
	if req.ClassName != nil {
		account.ClassName = strings.TrimSpace(*req.ClassName)
	}
	if req.TracksCounterparty != nil {
		account.TracksCounterparty = *req.TracksCounterparty
	}
	touch(&account.AuditFields, userID, time.Now().UTC())

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_code", code))
		return nil, err
	}
	s.invalidate(ctx)

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_code", code))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, code string, userID string) error {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return err
	}
	if !account.Active {
		return nil
	}
	account.Active = false
	touch(&account.AuditFields, userID, time.Now().UTC())

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_code", code))
		return err
	}
	s.invalidate(ctx)

	s.LogInfo(ctx, "Account deactivated", slog.String("account_code", code))
	return nil
}

func (s *accountService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Bump(ctx); err != nil {
		s.LogError(ctx, err, "Failed to invalidate report cache")
	}
}
