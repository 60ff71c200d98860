package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hubber-api/internal/application/auth"
	"github.com/jhoicas/hubber-api/internal/application/billing"
	"github.com/jhoicas/hubber-api/internal/application/usecase"
	"github.com/jhoicas/hubber-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC      *usecase.CompanyUseCase
	ClientUC       *usecase.ClientUseCase
	JobUC          *usecase.JobUseCase
	UserUC         *usecase.UserUseCase
	AuthUC         *auth.AuthUseCase
	SubscriptionUC *billing.SubscriptionUseCase
	JWTSecret      string
	WebhookSecret  string
	Logger         *logger.Logger
}

// Router registra las rutas de la API. Todo lo que no sea auth, portal público
// o webhook exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Portal público (sin identidad)
	portalHandler := NewPortalHandler(deps.CompanyUC, deps.JobUC)
	public := api.Group("/public")
	public.Get("/company", portalHandler.GetCompany)
	public.Get("/jobs", portalHandler.ListJobs)
	public.Get("/:publicId", portalHandler.GetByPublicID)

	// Webhook de facturación (verificado por firma, no por token)
	webhookHandler := NewWebhookHandler(deps.SubscriptionUC, deps.WebhookSecret, deps.Logger)
	api.Post("/webhooks/stripe", webhookHandler.HandleStripe)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	// El parámetro opcional permite responder 400 explícito cuando falta el id.
	companies.Put("/:id?", companyHandler.Update)
	companies.Delete("/:id?", companyHandler.Delete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Patch("/:id?", clientHandler.Update)
	clients.Delete("/:id?", clientHandler.Delete)

	// Jobs (protegido)
	jobs := protected.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC)
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Patch("/:id?", jobHandler.Update)
	jobs.Delete("/:id?", jobHandler.Delete)

	// Perfil del usuario autenticado (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.Update)
}
