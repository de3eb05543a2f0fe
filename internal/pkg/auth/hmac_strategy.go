package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid session token")

// HMACStrategy signs session tokens with HMAC-SHA256. The token payload
// carries the account id, the issue time and the expiry, joined with '|'.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds a strategy from the shared secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed session token for the account.
func (s *HMACStrategy) IssueToken(accountID int64) (string, error) {
	now := time.Now()
	payload := fmt.Sprintf("%d|%d|%d", accountID, now.Unix(), now.Add(s.ttl).Unix())
	token := payload + "|" + s.sign(payload)
	return base64.URLEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken verifies the signature and expiry and returns the account id.
func (s *HMACStrategy) ParseToken(token string) (int64, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	parts := strings.Split(string(raw), "|")
	if len(parts) != 4 {
		return 0, ErrInvalidToken
	}

	payload := strings.Join(parts[:3], "|")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[3])) {
		return 0, ErrInvalidToken
	}

	accountID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if time.Unix(expires, 0).Before(time.Now()) {
		return 0, ErrInvalidToken
	}

	return accountID, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac-sha256"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}
