package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/server/http/handlers"
	testhelpers "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.CommerceFacadeStub{
		AuthFacadeStub:    testhelpers.AuthFacadeStub{},
		ProfileFacadeStub: testhelpers.ProfileFacadeStub{},
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			OrdersFn: func(context.Context, int64) ([]model.Order, error) {
				return []model.Order{{Number: "P-1", Status: model.OrderStatusCreated, CreatedAt: time.Unix(0, 0)}}, nil
			},
		},
	}
	engine := Setup(facade, testhelpers.PingerStub{}, logger)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for ping, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]string{"email": "ana@example.com", "password": "secret1"})
	req = httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/user/orders/count", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for count, got %d", resp.Code)
	}
}

func TestSetupRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.CommerceFacadeStub{}, testhelpers.PingerStub{}, logger)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/user/profile"},
		{http.MethodGet, "/api/user/orders"},
		{http.MethodDelete, "/api/user/orders/P-1"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s %s, got %d", p.method, p.path, resp.Code)
		}
	}
}

var _ handlers.CommerceFacade = (*testhelpers.CommerceFacadeStub)(nil)
