package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/jhoicas/hubber-api/internal/application/billing"
	"github.com/jhoicas/hubber-api/internal/application/dto"
	"github.com/jhoicas/hubber-api/internal/domain"
	"github.com/jhoicas/hubber-api/pkg/logger"
	hubmetrics "github.com/jhoicas/hubber-api/prometheus"
)

// WebhookHandler recibe los eventos firmados de la plataforma de facturación y
// los traduce a operaciones de suscripción.
type WebhookHandler struct {
	uc            *billing.SubscriptionUseCase
	webhookSecret string
	log           *logger.Logger
}

// NewWebhookHandler construye el handler con el secreto de verificación.
func NewWebhookHandler(uc *billing.SubscriptionUseCase, webhookSecret string, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, webhookSecret: webhookSecret, log: log}
}

// HandleStripe godoc
// @Summary      Webhook de facturación (firma requerida)
// @Tags         billing
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/webhooks/stripe [post]
func (h *WebhookHandler) HandleStripe(c *fiber.Ctx) error {
	event, err := webhook.ConstructEventWithOptions(
		c.Body(),
		c.Get("Stripe-Signature"),
		h.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		hubmetrics.RecordWebhookEvent("unknown", "invalid_signature")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SIGNATURE", Message: "firma inválida"})
	}

	eventType := string(event.Type)
	switch eventType {
	case "customer.subscription.created", "customer.subscription.updated":
		sub, err := parseSubscription(event.Data.Raw)
		if err != nil {
			hubmetrics.RecordWebhookEvent(eventType, "malformed")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_EVENT", Message: "evento malformado"})
		}
		priceID := ""
		if len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
			priceID = sub.Items.Data[0].Price.ID
		}
		if err := h.uc.SubscriptionUpserted(c.Context(), sub.Customer.ID, priceID); err != nil {
			return h.respond(c, eventType, err)
		}
	case "customer.subscription.deleted":
		sub, err := parseSubscription(event.Data.Raw)
		if err != nil {
			hubmetrics.RecordWebhookEvent(eventType, "malformed")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_EVENT", Message: "evento malformado"})
		}
		if err := h.uc.SubscriptionDeleted(c.Context(), sub.Customer.ID); err != nil {
			return h.respond(c, eventType, err)
		}
	default:
		// Eventos fuera del ciclo de suscripción se reconocen sin procesar para
		// que la plataforma no los reintente.
		hubmetrics.RecordWebhookEvent(eventType, "ignored")
		return c.JSON(fiber.Map{"received": true})
	}

	hubmetrics.RecordWebhookEvent(eventType, "processed")
	return c.JSON(fiber.Map{"received": true})
}

func (h *WebhookHandler) respond(c *fiber.Ctx, eventType string, err error) error {
	// Un usuario irresoluble no es reintentable: se registra y se responde 200
	// para no acumular reintentos de la plataforma.
	if errors.Is(err, domain.ErrUserNotFound) {
		h.log.Warn().Str("event_type", eventType).Msg("webhook sin usuario local resolvible")
		hubmetrics.RecordWebhookEvent(eventType, "user_not_found")
		return c.JSON(fiber.Map{"received": true})
	}
	hubmetrics.RecordWebhookEvent(eventType, "error")
	return respondDomainError(c, err)
}

func parseSubscription(raw json.RawMessage) (*stripe.Subscription, error) {
	var sub stripe.Subscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, err
	}
	if sub.Customer == nil || sub.Customer.ID == "" {
		return nil, errors.New("subscription sin customer")
	}
	return &sub, nil
}
