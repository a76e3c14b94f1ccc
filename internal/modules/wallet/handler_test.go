package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(t *testing.T, svc *Service, jovemID int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc, func(c *gin.Context) (int64, bool) { return jovemID, true })
	h.RegisterRoutes(r.Group("/"))
	return r
}

func postWithdraw(t *testing.T, r *gin.Engine, centavos int64) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(WithdrawRequest{AmountCentavos: centavos})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/wallet/withdraw", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWithdrawEndpoint(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if err := svc.Credit(ctx, 31, 100, 60); err != nil {
		t.Fatalf("Credit returned error: %v", err)
	}
	r := setupTestRouter(t, svc, 31)

	w := postWithdraw(t, r, 4000)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	wallet, err := svc.GetOrCreateWallet(ctx, 31)
	if err != nil {
		t.Fatalf("GetOrCreateWallet returned error: %v", err)
	}
	if wallet.Balance != 6000 {
		t.Fatalf("expected balance 6000 after withdraw, got %d", wallet.Balance)
	}
}

func TestWithdrawEndpointInsufficientFunds(t *testing.T) {
	svc := setupTestService(t)
	r := setupTestRouter(t, svc, 32)

	w := postWithdraw(t, r, 5000)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty wallet, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("INSUFFICIENT_FUNDS")) {
		t.Fatalf("expected INSUFFICIENT_FUNDS code, got %s", w.Body.String())
	}
}

func TestWithdrawEndpointRejectsNonPositiveAmount(t *testing.T) {
	svc := setupTestService(t)
	r := setupTestRouter(t, svc, 33)

	w := postWithdraw(t, r, 0)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero amount, got %d", w.Code)
	}
}
