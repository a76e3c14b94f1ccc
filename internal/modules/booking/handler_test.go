package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the handler behind a stub auth layer that injects
// the given identity, the way the real middleware does after token
// validation.
func newTestRouter(svc *Service, userID int64, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
	})
	NewHandler(svc, fakeJovens{}).RegisterRoutes(r.Group("/"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestConfirmRoute_ProviderOnly(t *testing.T) {
	svc, _ := newEngine(10)
	ctx := context.Background()
	date := time.Now().AddDate(0, 0, 5).Format("2006-01-02")

	b, err := svc.Create(ctx, 7, CreateBookingRequest{ServiceID: 1, Date: date})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, b.ID, 11)
	require.NoError(t, err)

	// a client must not be able to confirm and read the pin
	asClient := newTestRouter(svc, 7, "client")
	w := doJSON(t, asClient, http.MethodPost, "/bookings/1/confirm", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	asJovem := newTestRouter(svc, 111, "jovem")
	w = doJSON(t, asJovem, http.MethodPost, "/bookings/1/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	pinValue, ok := data["check_in_pin"].(string)
	require.True(t, ok, "confirm response must carry the pin for the provider")
	require.Len(t, pinValue, 4)

	// the client checks in with the pin the provider presents on site
	w = doJSON(t, asClient, http.MethodPost, "/bookings/1/checkin", CheckInRequest{Pin: pinValue})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssignRoute_OngOrAdminOnly(t *testing.T) {
	svc, _ := newEngine(10)
	ctx := context.Background()
	date := time.Now().AddDate(0, 0, 5).Format("2006-01-02")

	_, err := svc.Create(ctx, 7, CreateBookingRequest{ServiceID: 1, Date: date})
	require.NoError(t, err)

	asClient := newTestRouter(svc, 7, "client")
	w := doJSON(t, asClient, http.MethodPost, "/bookings/1/assign", AssignRequest{JovemID: 11})
	assert.Equal(t, http.StatusForbidden, w.Code)

	asJovem := newTestRouter(svc, 111, "jovem")
	w = doJSON(t, asJovem, http.MethodPost, "/bookings/1/assign", AssignRequest{JovemID: 11})
	assert.Equal(t, http.StatusForbidden, w.Code)

	asOng := newTestRouter(svc, 200, "ong")
	w = doJSON(t, asOng, http.MethodPost, "/bookings/1/assign", AssignRequest{JovemID: 11})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancelRoute_ClientOrJovem(t *testing.T) {
	svc, _ := newEngine(10)
	ctx := context.Background()
	date := time.Now().AddDate(0, 0, 5).Format("2006-01-02")

	b, err := svc.Create(ctx, 7, CreateBookingRequest{ServiceID: 1, Date: date})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, b.ID, 11)
	require.NoError(t, err)

	asOng := newTestRouter(svc, 200, "ong")
	w := doJSON(t, asOng, http.MethodPost, "/bookings/1/cancel", CancelRequest{Reason: "agenda cheia"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	asJovem := newTestRouter(svc, 111, "jovem")
	w = doJSON(t, asJovem, http.MethodPost, "/bookings/1/cancel", CancelRequest{Reason: "agenda cheia"})
	assert.Equal(t, http.StatusOK, w.Code)
}
