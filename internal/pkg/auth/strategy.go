package auth

import "time"

// Strategy issues and verifies session tokens for account identifiers.
type Strategy interface {
	IssueToken(accountID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
