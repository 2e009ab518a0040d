package dependency

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cashbook/backend/config"
	"github.com/cashbook/backend/internal/integration/persistence/persistencetest"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

func (c *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()

	cfg := &config.Config{
		Server:    config.ServerConfig{Environment: "test"},
		JWT:       config.JWTConfig{Secret: "test-secret", AccessTokenExpiry: time.Hour},
		Auth:      config.AuthConfig{BcryptCost: bcrypt.MinCost},
		RateLimit: config.RateLimitConfig{Enabled: false},
		Report:    config.ReportConfig{WeekStart: "monday", Currency: "IDR", CompanyName: "Toko Maju"},
		Payroll:   config.PayrollConfig{EmployeeDeletePolicy: "restrict", Category: "Payroll"},
	}
	clock := fixedClock{t: time.Date(2024, time.March, 28, 10, 0, 0, 0, time.UTC)}

	injector := NewInjector(cfg, persistencetest.NewSQLiteDB(t), nil, clock)
	return &apiClient{t: t, engine: injector.Router.Setup(cfg.Server.Environment)}
}

func TestInjector_EndToEnd(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/transactions", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email": "owner@example.com", "name": "Owner", "password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	api.token = decode(t, w)["access_token"].(string)

	w = api.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"date": "2024-03-01", "category": "Sales", "description": "Opening sale",
		"amount": "5000000", "type": "income",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "5000000.00", decode(t, w)["amount"])

	w = api.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"date": "2024-03-02", "category": "Utilities", "description": "Electricity",
		"amount": 2000000, "type": "expense",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/api/v1/employees", map[string]any{
		"name": "Ahmad Wijaya", "position": "Manager", "salary_type": "fixed", "base_salary": "12000000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	employeeID := decode(t, w)["id"].(string)

	w = api.do(http.MethodPost, "/api/v1/payslips", map[string]any{
		"employee_id": employeeID, "period": "2024-03", "allowance": "2000000", "deduction": "500000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	payslip := decode(t, w)
	assert.Equal(t, "13500000.00", payslip["net_salary"])

	w = api.do(http.MethodGet, "/api/v1/reports/cash-book?period=month&date=2024-03-15", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cashBook := decode(t, w)
	assert.Len(t, cashBook["rows"], 3)
	assert.Equal(t, "-10500000.00", cashBook["final_balance"])

	w = api.do(http.MethodGet, "/api/v1/reports/profit-loss?period=month&date=2024-03-15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "-10500000.00", decode(t, w)["profit"])

	w = api.do(http.MethodGet, "/api/v1/reports/cash-book/export?period=month&date=2024-03-15&format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	w = api.do(http.MethodGet, "/api/v1/payslips/"+payslip["id"].(string)+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = api.do(http.MethodDelete, "/api/v1/transactions/"+payslip["transaction_id"].(string), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "TXN-010011", decode(t, w)["code"])

	w = api.do(http.MethodDelete, "/api/v1/employees/"+employeeID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMP-010006", decode(t, w)["code"])
}

func TestInjector_ErrorMapping(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email": "owner@example.com", "name": "Owner", "password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	api.token = decode(t, w)["access_token"].(string)

	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"unknown period", "/api/v1/reports/cash-book?period=decade", http.StatusBadRequest, "RPT-010001"},
		{"bad reference date", "/api/v1/reports/profit-loss?period=day&date=2024-02-30", http.StatusBadRequest, "RPT-010002"},
		{"bad export format", "/api/v1/reports/cash-book/export?format=docx", http.StatusBadRequest, "RPT-010003"},
		{"missing transaction", "/api/v1/transactions/6b0f8a5e-3c3e-4a47-9a43-0f1f3b7c2d11", http.StatusNotFound, "TXN-020001"},
		{"malformed id", "/api/v1/employees/not-a-uuid", http.StatusNotFound, "EMP-020001"},
		{"inverted range", "/api/v1/transactions?start_date=2024-03-10&end_date=2024-03-01", http.StatusBadRequest, "TXN-010002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, tt.code, decode(t, w)["code"])
		})
	}
}

func TestReportLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
	}{
		{"empty means utc", "", "UTC"},
		{"iana name", "Asia/Jakarta", "Asia/Jakarta"},
		{"unknown name falls back to utc", "Mars/Olympus", "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Report: config.ReportConfig{Timezone: tt.timezone}}
			assert.Equal(t, tt.want, reportLocation(cfg).String())
		})
	}
}

func TestReportLocation_DateFollowsZone(t *testing.T) {
	cfg := &config.Config{Report: config.ReportConfig{Timezone: "Asia/Jakarta"}}
	// 20:30 UTC on the 14th is already the 15th in UTC+7
	instant := time.Date(2024, time.March, 14, 20, 30, 0, 0, time.UTC)

	assert.Equal(t, civil.Date{Year: 2024, Month: time.March, Day: 15}, civil.DateOf(instant.In(reportLocation(cfg))))
	assert.Equal(t, civil.Date{Year: 2024, Month: time.March, Day: 14}, civil.DateOf(instant))
}
