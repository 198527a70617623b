package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/i18n"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/password"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/testutil"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/token"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Status     int             `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *dto.Pagination `json:"pagination"`
	Error      json.RawMessage `json:"error"`
}

type client struct {
	t   *testing.T
	app *fiber.App
}

func newClient(t *testing.T) *client {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
		ResetTokenExpiry: 30 * time.Minute,
		DefaultPageLimit: 10,
		MaxPageLimit:     100,
		CORSOrigins:      "*",
	}
	translator, err := i18n.NewTranslator("en")
	require.NoError(t, err)

	m := metrics.New()
	engine := validation.NewEngine(db)
	hasher := password.NewBcrypt(bcrypt.MinCost)
	tokens := token.NewJWTService(cfg.JWTSecret)
	r := handlers.NewResponder(translator, cfg)

	app := fiber.New()
	app.Use(m.Middleware())
	Setup(app, cfg, m, Handlers{
		Responder:  r,
		Health:     handlers.NewHealthHandler(db),
		Auth:       handlers.NewAuthHandler(services.NewAuthService(db, cfg, engine, hasher, tokens, m), r),
		Customer:   handlers.NewCustomerHandler(services.NewCustomerService(db, engine, hasher, m), r),
		Employee:   handlers.NewEmployeeHandler(services.NewEmployeeService(db, engine, hasher, m), r),
		Job:        handlers.NewJobHandler(services.NewJobService(db, engine, m), r),
		Assignment: handlers.NewAssignmentHandler(services.NewAssignmentService(db, m), engine, r),
	})
	return &client{t: t, app: app}
}

func (c *client) do(method, path string, body any, headers ...string) (int, envelope) {
	c.t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(c.t, json.Unmarshal(raw, &env))
	}
	return resp.StatusCode, env
}

func janeDoe() map[string]any {
	return map[string]any{
		"cus_firstname":        "Jane",
		"cus_lastname":         "Doe",
		"cus_email":            "jane@example.com",
		"cus_phone_number":     "1234567890",
		"cus_password":         "Passw0rd!",
		"cus_confirm_password": "Passw0rd!",
	}
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestCustomer_JaneDoe(t *testing.T) {
	c := newClient(t)

	status, env := c.do("POST", "/api/v1/customer", janeDoe())
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, fiber.StatusCreated, env.Status)
	assert.Equal(t, "Customer added successfully", env.Message)

	data := decode[map[string]any](t, env.Data)
	assert.Equal(t, "active", data["cus_status"])
	assert.NotContains(t, data, "cus_password")

	dup := janeDoe()
	dup["cus_email"] = "other@example.com"
	status, env = c.do("POST", "/api/v1/customer", dup)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Phone number already exists", env.Message)

	violations := decode[[]dto.FieldViolation](t, env.Error)
	require.Len(t, violations, 1)
	assert.Equal(t, "cus_phone_number", violations[0].Field)
}

func TestCustomer_ValidationMessages(t *testing.T) {
	c := newClient(t)

	body := janeDoe()
	body["cus_confirm_password"] = "Different1!"
	status, env := c.do("POST", "/api/v1/customer", body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Passwords do not match", env.Message)

	status, env = c.do("POST", "/api/v1/customer", "{broken")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", env.Message)

	status, env = c.do("POST", "/api/v1/customer", janeDoe(), "Accept-Language", "es")
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Cliente agregado con éxito", env.Message)
}

func TestCustomer_ReadUpdateDelete(t *testing.T) {
	c := newClient(t)
	status, env := c.do("POST", "/api/v1/customer", janeDoe())
	require.Equal(t, fiber.StatusCreated, status)
	id := decode[struct {
		ID uint `json:"cus_id"`
	}](t, env.Data).ID

	path := "/api/v1/customer/" + itoa(id)
	_, first := c.do("GET", path, nil)
	_, second := c.do("GET", path, nil)
	assert.JSONEq(t, string(first.Data), string(second.Data))

	status, env = c.do("PUT", path, map[string]any{"cus_firstname": "Janet"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Janet", decode[map[string]any](t, env.Data)["cus_firstname"])

	status, _ = c.do("DELETE", path, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, env = c.do("GET", path, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, fiber.StatusNotFound, env.Status)

	status, env = c.do("GET", "/api/v1/customer/abc", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Record not found with specified ID", env.Message)
}

func TestCustomer_ListPagination(t *testing.T) {
	c := newClient(t)
	for i, phone := range []string{"1111111111", "2222222222", "3333333333"} {
		body := janeDoe()
		body["cus_email"] = "user" + itoa(uint(i)) + "@example.com"
		body["cus_phone_number"] = phone
		status, env := c.do("POST", "/api/v1/customer", body)
		require.Equal(t, fiber.StatusCreated, status, env.Message)
	}

	status, env := c.do("GET", "/api/v1/customer?page=2&limit=2", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 3, env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 2, env.Pagination.PerPage)
	assert.Equal(t, 2, env.Pagination.LastPage)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 1)
}

func TestJob_RemoteRequiresSKU(t *testing.T) {
	c := newClient(t)

	status, env := c.do("POST", "/api/v1/job", map[string]any{"job_name": "Support", "job_category": "Remote"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	violations := decode[[]dto.FieldViolation](t, env.Error)
	require.Len(t, violations, 1)
	assert.Equal(t, "job_sku", violations[0].Field)

	status, _ = c.do("POST", "/api/v1/job", map[string]any{"job_name": "Cleaner", "job_category": "Onsite"})
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestAssignments(t *testing.T) {
	c := newClient(t)

	status, env := c.do("POST", "/api/v1/customer", janeDoe())
	require.Equal(t, fiber.StatusCreated, status)
	cusID := decode[struct {
		ID uint `json:"cus_id"`
	}](t, env.Data).ID

	status, env = c.do("POST", "/api/v1/employee", map[string]any{
		"emp_name":          "Sam Smith",
		"emp_email":         "sam@example.com",
		"emp_password":      "Passw0rd!",
		"emp_company_name":  "Acme",
		"cus_id":            cusID,
		"emp_mobile_number": "5551234567",
	})
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	empID := decode[struct {
		ID uint `json:"emp_id"`
	}](t, env.Data).ID

	jobID := func(name string) uint {
		status, env := c.do("POST", "/api/v1/job", map[string]any{"job_name": name, "job_category": "Onsite"})
		require.Equal(t, fiber.StatusCreated, status, env.Message)
		return decode[struct {
			ID uint `json:"job_id"`
		}](t, env.Data).ID
	}
	jobA, jobB := jobID("Alpha"), jobID("Bravo")

	status, _ = c.do("POST", "/api/v1/employee-job", map[string]any{"emp_id": empID, "job_id": jobA})
	assert.Equal(t, fiber.StatusCreated, status)

	status, env = c.do("POST", "/api/v1/employee-job", map[string]any{"emp_id": empID, "job_id": jobB})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEmpty(t, env.Message)

	status, env = c.do("GET", "/api/v1/employee/"+itoa(empID), nil)
	require.Equal(t, fiber.StatusOK, status)
	emp := decode[struct {
		JobAssignment struct {
			JobID uint `json:"job_id"`
		} `json:"job_assignment"`
	}](t, env.Data)
	assert.Equal(t, jobA, emp.JobAssignment.JobID)

	status, env = c.do("POST", "/api/v1/employee-job/assign-many", map[string]any{"emp_ids": []uint{777}, "job_id": jobB})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, env.Message, "777")

	status, _ = c.do("DELETE", "/api/v1/employee-job/"+itoa(empID), nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, env = c.do("POST", "/api/v1/customer-employee", map[string]any{"emp_id": empID, "cus_id": cusID})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, env.Message, "already belongs")

	john := janeDoe()
	john["cus_firstname"], john["cus_email"], john["cus_phone_number"] = "John", "john@example.com", "1234567891"
	status, env = c.do("POST", "/api/v1/customer", john)
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	otherID := decode[struct {
		ID uint `json:"cus_id"`
	}](t, env.Data).ID

	status, _ = c.do("POST", "/api/v1/customer-employee", map[string]any{"emp_id": empID, "cus_id": otherID})
	assert.Equal(t, fiber.StatusCreated, status)

	status, env = c.do("GET", "/api/v1/customer-employee/get-all", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotNil(t, env.Pagination)

	status, env = c.do("GET", "/api/v1/customer-employee/"+itoa(otherID), nil)
	require.Equal(t, fiber.StatusOK, status)
	got := decode[struct {
		Assigned []struct {
			EmpID uint `json:"emp_id"`
		} `json:"assigned_employees"`
	}](t, env.Data)
	require.Len(t, got.Assigned, 1)
	assert.Equal(t, empID, got.Assigned[0].EmpID)
}

func TestAuthFlow(t *testing.T) {
	c := newClient(t)

	status, env := c.do("POST", "/api/v1/customer/auth/signup", janeDoe())
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	auth := decode[dto.AuthResponse](t, env.Data)
	require.NotEmpty(t, auth.AccessToken)
	assert.Equal(t, "active", auth.Customer.Status)

	bearer := "Bearer " + auth.AccessToken
	status, env = c.do("GET", "/api/v1/customer/auth/me", nil, "Authorization", bearer)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "jane@example.com", decode[dto.CustomerResponse](t, env.Data).Email)

	status, _ = c.do("POST", "/api/v1/customer/auth/logout", nil, "Authorization", bearer)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = c.do("GET", "/api/v1/customer/auth/me", nil, "Authorization", bearer)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, env = c.do("POST", "/api/v1/customer/auth/forget-password", map[string]any{"cus_email": "jane@example.com"})
	require.Equal(t, fiber.StatusOK, status, env.Message)
	reset := decode[dto.ForgotPasswordResponse](t, env.Data)

	body := map[string]any{
		"reset_token":      reset.ResetToken,
		"new_password":     "NewPassw0rd!",
		"confirm_password": "NewPassw0rd!",
	}
	status, _ = c.do("POST", "/api/v1/customer/auth/reset-password", body)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = c.do("POST", "/api/v1/customer/auth/reset-password", body)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = c.do("POST", "/api/v1/customer/auth/login", map[string]any{
		"cus_email":    "jane@example.com",
		"cus_password": "NewPassw0rd!",
	})
	assert.Equal(t, fiber.StatusOK, status)
}

func TestOperationalRoutes(t *testing.T) {
	c := newClient(t)

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	resp, err := c.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	status, env := c.do("GET", "/api/v1/nowhere", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Route not found", env.Message)

	resp, err = c.app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "workforce_http_requests_total")
}

func itoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
