package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hubber-api/internal/application/auth"
	"github.com/jhoicas/hubber-api/internal/application/billing"
	"github.com/jhoicas/hubber-api/internal/application/usecase"
	"github.com/jhoicas/hubber-api/internal/domain"
	"github.com/jhoicas/hubber-api/internal/domain/entity"
	"github.com/jhoicas/hubber-api/internal/testsupport/memory"
	apphttp "github.com/jhoicas/hubber-api/internal/interfaces/http"
	"github.com/jhoicas/hubber-api/pkg/logger"
)

const (
	testWebhookSecret = "whsec_test_secret"
	testPortalBase    = "https://hubber.test"
)

// apiFixture aplicación completa sobre repositorios en memoria.
type apiFixture struct {
	app       *fiber.App
	users     *memory.UserRepository
	companies *memory.CompanyRepository
	clients   *memory.ClientRepository
	jobs      *memory.JobRepository
}

// testGateway gateway de facturación que resuelve emails de un mapa fijo.
type testGateway struct {
	emails map[string]string
}

func (g *testGateway) CustomerEmail(_ context.Context, customerID string) (string, error) {
	email, ok := g.emails[customerID]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return email, nil
}

var testPriceTiers = map[string]string{
	"price_basic_123":   "basic",
	"price_premium_456": "premium",
}

// newAPIFixture monta el router completo igual que main, con dobles en memoria.
func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		users:     memory.NewUserRepository(),
		companies: memory.NewCompanyRepository(),
		clients:   memory.NewClientRepository(),
		jobs:      memory.NewJobRepository(),
	}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC: usecase.NewCompanyUseCase(f.companies, f.users, f.clients, f.jobs, testPortalBase),
		ClientUC:  usecase.NewClientUseCase(f.clients, f.companies),
		JobUC:     usecase.NewJobUseCase(f.jobs, f.companies),
		UserUC:    usecase.NewUserUseCase(f.users),
		AuthUC: auth.NewAuthUseCase(f.users, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		SubscriptionUC: billing.NewSubscriptionUseCase(f.users,
			&testGateway{emails: map[string]string{"cus_abc": "ana@hubber.test"}},
			testPriceTiers),
		JWTSecret:     testJWTSecret,
		WebhookSecret: testWebhookSecret,
		Logger:        logger.New(logger.Config{Env: "test", Level: "error"}),
	})
	f.app = app
	return f
}

// seedUser inserta un usuario directamente en el repositorio.
func (f *apiFixture) seedUser(t *testing.T, id, tier string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, f.users.Create(context.Background(), &entity.User{
		ID:        id,
		Email:     id + "@hubber.test",
		Tier:      tier,
		Companies: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

// doJSON lanza una petición con body JSON y token opcional.
func (f *apiFixture) doJSON(t *testing.T, method, path, authHeader string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
