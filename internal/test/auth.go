package test

import (
	"context"
	"errors"

	pkgAuth "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(accountID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(accountID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements the middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Err     error
	ParseFn func(string) (int64, error)
}

// ParseToken either delegates to the override or returns the fixed result.
func (s TokenParserStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}

// RecoveryStub simulates the remote password-recovery collaborator.
type RecoveryStub struct {
	RecoverFn func(context.Context, string) (string, error)
	ResetFn   func(context.Context, string, string, string) (string, error)
}

// RecoverPassword returns the configured message.
func (s RecoveryStub) RecoverPassword(ctx context.Context, email string) (string, error) {
	if s.RecoverFn != nil {
		return s.RecoverFn(ctx, email)
	}
	return "Recovery code sent", nil
}

// ResetPassword returns the configured token.
func (s RecoveryStub) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	if s.ResetFn != nil {
		return s.ResetFn(ctx, email, code, newPassword)
	}
	return "token", nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
