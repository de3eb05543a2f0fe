package recovery

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/pkg/httpcall"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := NewHTTPClient(server.URL, logger)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.httpClient = server.Client()
	return client, server.Close
}

func TestNewHTTPClientRejectsRelativeURL(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := NewHTTPClient("/relative", logger); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestRecoverPassword(t *testing.T) {
	client, closeServer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/recover" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req recoverRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Email != "maria@example.com" {
			t.Errorf("unexpected email %q", req.Email)
		}
		_ = json.NewEncoder(w).Encode(recoverResponse{Message: "Código enviado"})
	})
	defer closeServer()

	message, err := client.RecoverPassword(context.Background(), "maria@example.com")
	if err != nil {
		t.Fatalf("recover password: %v", err)
	}
	if message != "Código enviado" {
		t.Fatalf("unexpected message %q", message)
	}
}

func TestRecoverPasswordFallbackMessage(t *testing.T) {
	client, closeServer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	defer closeServer()

	message, err := client.RecoverPassword(context.Background(), "maria@example.com")
	if err != nil {
		t.Fatalf("recover password: %v", err)
	}
	if message != defaultRecoverMessage {
		t.Fatalf("expected fallback message, got %q", message)
	}
}

func TestRecoverPasswordRemoteError(t *testing.T) {
	client, closeServer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
	})
	defer closeServer()

	_, err := client.RecoverPassword(context.Background(), "ghost@example.com")
	var statusErr *httpcall.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Message != "Not Found" {
		t.Fatalf("unexpected message %q", statusErr.Message)
	}
}

func TestRecoverPasswordEmptyBody(t *testing.T) {
	client, closeServer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	defer closeServer()

	_, err := client.RecoverPassword(context.Background(), "maria@example.com")
	if !errors.Is(err, httpcall.ErrNilBody) {
		t.Fatalf("expected ErrNilBody, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	client, closeServer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/reset" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req resetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Code != "1234" || req.Password != "new-secret" {
			t.Errorf("unexpected payload %+v", req)
		}
		_ = json.NewEncoder(w).Encode(resetResponse{Token: "tok-1"})
	})
	defer closeServer()

	token, err := client.ResetPassword(context.Background(), "maria@example.com", "1234", "new-secret")
	if err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestResetPasswordFallbackToken(t *testing.T) {
	client, closeServer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	defer closeServer()

	token, err := client.ResetPassword(context.Background(), "maria@example.com", "1234", "new-secret")
	if err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if token != defaultResetToken {
		t.Fatalf("expected fallback token, got %q", token)
	}
}
