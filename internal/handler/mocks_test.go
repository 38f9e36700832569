package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taxengine/internal/middleware"
	"taxengine/internal/service"
	"taxengine/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("handler-test-secret")

type MockTaxRuleService struct{ mock.Mock }

func (m *MockTaxRuleService) GetTaxRules(ctx context.Context, filter service.TaxRuleListFilter) (pagination.Page[service.TaxRuleResponse], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(pagination.Page[service.TaxRuleResponse]), args.Error(1)
}

func (m *MockTaxRuleService) GetTaxRule(ctx context.Context, id string) (service.TaxRuleResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.TaxRuleResponse), args.Error(1)
}

func (m *MockTaxRuleService) CreateTaxRule(ctx context.Context, req service.CreateTaxRuleRequest, userID string) (service.TaxRuleResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(service.TaxRuleResponse), args.Error(1)
}

func (m *MockTaxRuleService) UpdateTaxRule(ctx context.Context, id string, req service.UpdateTaxRuleRequest, userID string) (service.TaxRuleResponse, error) {
	args := m.Called(ctx, id, req, userID)
	return args.Get(0).(service.TaxRuleResponse), args.Error(1)
}

func (m *MockTaxRuleService) DeactivateTaxRule(ctx context.Context, id string, userID string) (service.TaxRuleResponse, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(service.TaxRuleResponse), args.Error(1)
}

func (m *MockTaxRuleService) DeleteTaxRule(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockTaxGroupService struct{ mock.Mock }

func (m *MockTaxGroupService) GetTaxGroups(ctx context.Context, filter service.TaxGroupListFilter) (pagination.Page[service.TaxGroupResponse], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(pagination.Page[service.TaxGroupResponse]), args.Error(1)
}

func (m *MockTaxGroupService) GetTaxGroup(ctx context.Context, id string) (service.TaxGroupResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.TaxGroupResponse), args.Error(1)
}

func (m *MockTaxGroupService) CreateTaxGroup(ctx context.Context, req service.CreateTaxGroupRequest, userID string) (service.TaxGroupResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(service.TaxGroupResponse), args.Error(1)
}

func (m *MockTaxGroupService) UpdateTaxGroup(ctx context.Context, id string, req service.UpdateTaxGroupRequest, userID string) (service.TaxGroupResponse, error) {
	args := m.Called(ctx, id, req, userID)
	return args.Get(0).(service.TaxGroupResponse), args.Error(1)
}

func (m *MockTaxGroupService) DeactivateTaxGroup(ctx context.Context, id string, userID string) (service.TaxGroupResponse, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(service.TaxGroupResponse), args.Error(1)
}

func (m *MockTaxGroupService) DeleteTaxGroup(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockTaxCalculationService struct{ mock.Mock }

func (m *MockTaxCalculationService) Calculate(ctx context.Context, req service.CalculateTaxRequest) (service.TaxCalculationResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.TaxCalculationResponse), args.Error(1)
}

func (m *MockTaxCalculationService) Preview(ctx context.Context, req service.PreviewTaxRequest) (service.TaxCalculationResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.TaxCalculationResponse), args.Error(1)
}

type MockAuditService struct{ mock.Mock }

func (m *MockAuditService) GetAuditLogs(ctx context.Context, entityID string, page, limit int) ([]service.AuditLogResponse, int64, error) {
	args := m.Called(ctx, entityID, page, limit)
	logs, _ := args.Get(0).([]service.AuditLogResponse)
	return logs, args.Get(1).(int64), args.Error(2)
}

type registrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func newRouter(handlers ...registrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetJWTSecret(testSecret)

	r := gin.New()
	for _, h := range handlers {
		h.RegisterRoutes(r.Group(""))
	}
	return r
}

func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID, "role": role}).SignedString(testSecret)
	require.NoError(t, err)
	return "Bearer " + s
}

type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func do(t *testing.T, r http.Handler, method, path, auth string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}
