package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valleyautoparts/shop-api/auth"
	"github.com/valleyautoparts/shop-api/middleware"
	"gorm.io/gorm"
)

func newAPIEngine(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	api := r.Group("/api")
	api.Use(middleware.RequireAPIUser)
	api.GET("/orders", ListOrdersAPIHandler(db))
	api.POST("/orders", CreateOrderAPIHandler(db))
	return r
}

func TestCreateOrderAPIRequiresAuth(t *testing.T) {
	db := newTestDB(t)
	r := newAPIEngine(db)

	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		strings.NewReader(`{"items":["oil-filter-synthetic"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOrderAPI(t *testing.T) {
	t.Setenv("JWT_SECRET", "api-test-secret")

	db := newTestDB(t)
	r := newAPIEngine(db)

	token, err := auth.IssueToken("gearhead")
	require.NoError(t, err)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// Empty item list and all-invalid item list fail distinctly.
	w := post(`{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")

	w = post(`{"items":["no-such-part"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no valid items")

	w = post(`{"items":["oil-filter-synthetic","oil-filter-synthetic","spark-plug-iridium"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Username    string  `json:"username"`
		TotalAmount float64 `json:"total_amount"`
		Items       []struct {
			ProductID string  `json:"product_id"`
			Quantity  int     `json:"quantity"`
			LineTotal float64 `json:"line_total"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "gearhead", created.Username)
	assert.Equal(t, 31.47, created.TotalAmount)
	require.Len(t, created.Items, 2)

	// The persisted order shows up in the list endpoint.
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	list := httptest.NewRecorder()
	r.ServeHTTP(list, req)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "oil-filter-synthetic")
}
