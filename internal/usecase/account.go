package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/errors"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/repository"
	pkgAuth "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/pkg/auth"
)

// RecoveryService is the remote collaborator handling password recovery.
type RecoveryService interface {
	RecoverPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (string, error)
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Address  string
}

// AccountUseCase handles the account lifecycle and session tokens.
type AccountUseCase struct {
	accounts repository.AccountRepository
	recovery RecoveryService
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(accounts repository.AccountRepository, recovery RecoveryService, hasher pkgAuth.PasswordHasher, tokens pkgAuth.Strategy) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, recovery: recovery, hasher: hasher, tokens: tokens}
}

// Register creates an account and returns it with a session token. A
// duplicate email fails with ErrEmailTaken without writing a second row.
func (u *AccountUseCase) Register(ctx context.Context, input RegisterInput) (*model.Account, string, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if fieldErrs := ValidateRegistration(input); len(fieldErrs) > 0 {
		return nil, "", fieldErrs
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	account := &model.Account{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hash,
		Address:      strings.TrimSpace(input.Address),
	}
	if _, err := u.accounts.Create(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Login fetches the profile by email and issues a session token.
//
// The password is intentionally not verified here: authentication moved to
// the remote API and this method remains a local profile lookup until that
// migration completes.
func (u *AccountUseCase) Login(ctx context.Context, email, password string) (*model.Account, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	account, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// ParseToken extracts the account ID from a session token.
func (u *AccountUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches an account by identifier.
func (u *AccountUseCase) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	return u.accounts.GetByID(ctx, id)
}

// Update overwrites the stored profile. An empty password keeps the current
// hash; a new one is hashed before the write.
func (u *AccountUseCase) Update(ctx context.Context, account *model.Account, newPassword string) error {
	if newPassword != "" {
		hash, err := u.hasher.Hash(newPassword)
		if err != nil {
			return err
		}
		account.PasswordHash = hash
	}
	return u.accounts.Update(ctx, account)
}

// DeleteAll wipes the local account store.
func (u *AccountUseCase) DeleteAll(ctx context.Context) error {
	return u.accounts.DeleteAll(ctx)
}

// RecoverPassword delegates to the remote recovery service.
func (u *AccountUseCase) RecoverPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !ValidEmail(email) {
		return "", domainErrors.ErrValidation
	}
	return u.recovery.RecoverPassword(ctx, email)
}

// ResetPassword delegates to the remote recovery service.
func (u *AccountUseCase) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !ValidEmail(email) || code == "" || newPassword == "" {
		return "", domainErrors.ErrValidation
	}
	return u.recovery.ResetPassword(ctx, email, code, newPassword)
}
