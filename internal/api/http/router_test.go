package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/campus-alert-service/internal/api/http/handlers"
	"github.com/spec-kit/campus-alert-service/internal/auth"
	"github.com/spec-kit/campus-alert-service/internal/domain"
	"github.com/spec-kit/campus-alert-service/internal/mocks"
	"github.com/spec-kit/campus-alert-service/internal/service"
)

type testServer struct {
	app           *fiber.App
	accounts      *mocks.MockAccountRepository
	notifications *mocks.MockNotificationRepository
	tokens        *auth.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	accounts := mocks.NewMockAccountRepository()
	notifications := mocks.NewMockNotificationRepository()
	tokens := auth.NewTokenManager("test-secret", 60)
	logger := zap.NewNop()

	broadcasts := service.NewBroadcastService(service.BroadcastDependencies{
		AccountRepo:      accounts,
		NotificationRepo: notifications,
		Logger:           logger,
	})
	stats := service.NewStatsService(accounts, notifications, time.UTC)
	feed := service.NewFeedService(notifications)

	app := fiber.New()
	RegisterMiddlewares(app, logger, nil, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("campus-alert-service", "test", nil, nil),
		Accounts:       handlers.NewAccountsHandler(nil, service.NewAccountService(accounts, nil, logger, 4)),
		Notifications:  handlers.NewNotificationsHandler(feed),
		Evacuation:     handlers.NewEvacuationHandler(broadcasts),
		Stats:          handlers.NewStatsHandler(stats),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, accounts),
	})

	return &testServer{app: app, accounts: accounts, notifications: notifications, tokens: tokens}
}

// seedAccount persists an account and returns a valid bearer token for it.
func (s *testServer) seedAccount(t *testing.T, username string, admin bool) (*domain.Account, string) {
	t.Helper()
	account := domain.Account{Username: username, IsAdmin: admin, IsActive: true}
	if err := s.accounts.Create(context.Background(), &account); err != nil {
		t.Fatal(err)
	}
	token, _, err := s.tokens.GenerateToken(account.ID, admin)
	if err != nil {
		t.Fatal(err)
	}
	return &account, token
}

func (s *testServer) request(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	body := decodeBody(t, resp)
	errObj, _ := body["error"].(map[string]any)
	code, _ := errObj["code"].(string)
	return code
}

func TestHealthLive(t *testing.T) {
	server := newTestServer(t)
	resp := server.request(t, http.MethodGet, "/health/live", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestEvacuationTrigger_AdminHappyPath(t *testing.T) {
	server := newTestServer(t)
	_, token := server.seedAccount(t, "ops", true)
	server.seedAccount(t, "student1", false)
	server.seedAccount(t, "student2", false)

	resp := server.request(t, http.MethodPost, "/api/evacuation/fire", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	data, _ := body["data"].(map[string]any)
	if data["message"] != "Evacuate immediately" {
		t.Errorf("message = %v", data["message"])
	}
	if data["priority"] != "high" {
		t.Errorf("priority = %v, want high", data["priority"])
	}
	if data["recipients"] != float64(2) {
		t.Errorf("recipients = %v, want 2 (trigger admin excluded)", data["recipients"])
	}
}

func TestEvacuationTrigger_UnknownCategory(t *testing.T) {
	server := newTestServer(t)
	_, token := server.seedAccount(t, "ops", true)

	resp := server.request(t, http.MethodPost, "/api/evacuation/meteor", token, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if code := errorCode(t, resp); code != "UNKNOWN_CATEGORY" {
		t.Errorf("code = %q, want UNKNOWN_CATEGORY", code)
	}
}

func TestEvacuationTrigger_RequiresAdmin(t *testing.T) {
	server := newTestServer(t)
	_, token := server.seedAccount(t, "student", false)

	resp := server.request(t, http.MethodPost, "/api/evacuation/fire", token, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if code := errorCode(t, resp); code != "FORBIDDEN" {
		t.Errorf("code = %q, want FORBIDDEN", code)
	}
	if len(server.notifications.Stored) != 0 {
		t.Error("forbidden trigger must not write notifications")
	}
}

func TestEvacuationTrigger_RequiresToken(t *testing.T) {
	server := newTestServer(t)

	resp := server.request(t, http.MethodPost, "/api/evacuation/fire", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	resp = server.request(t, http.MethodPost, "/api/evacuation/fire", "not-a-jwt", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d, want 401", resp.StatusCode)
	}
}

func TestBroadcast_ValidationFailure(t *testing.T) {
	server := newTestServer(t)
	_, token := server.seedAccount(t, "ops", true)

	resp := server.request(t, http.MethodPost, "/api/broadcast", token, `{"message":""}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestBroadcast_ReachesAdminsToo(t *testing.T) {
	server := newTestServer(t)
	_, token := server.seedAccount(t, "ops", true)
	server.seedAccount(t, "student", false)

	resp := server.request(t, http.MethodPost, "/api/broadcast", token, `{"message":"Library closed today"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	data, _ := body["data"].(map[string]any)
	if data["recipients"] != float64(2) {
		t.Errorf("recipients = %v, want 2 (administrators included)", data["recipients"])
	}
	if data["priority"] != "medium" {
		t.Errorf("priority = %v, want medium default", data["priority"])
	}
}

func TestStats_AdminOnly(t *testing.T) {
	server := newTestServer(t)
	_, adminToken := server.seedAccount(t, "ops", true)
	_, userToken := server.seedAccount(t, "student", false)

	resp := server.request(t, http.MethodGet, "/api/stats", userToken, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}

	resp = server.request(t, http.MethodGet, "/api/stats", adminToken, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestDeactivatedAccountIsRejected(t *testing.T) {
	server := newTestServer(t)
	account, token := server.seedAccount(t, "leaver", false)
	if err := server.accounts.Deactivate(context.Background(), account.ID); err != nil {
		t.Fatal(err)
	}

	resp := server.request(t, http.MethodGet, "/api/notifications", token, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
