package billing

import (
	"context"

	"github.com/jhoicas/hubber-api/internal/application/ports"
	"github.com/jhoicas/hubber-api/internal/domain"
	"github.com/jhoicas/hubber-api/internal/domain/entity"
	"github.com/jhoicas/hubber-api/internal/domain/repository"
)

// SubscriptionUseCase sincroniza el plan almacenado del usuario con los eventos
// del ciclo de vida de suscripción de la plataforma de facturación. Todas las
// operaciones son idempotentes: reprocesar un evento converge al mismo plan.
type SubscriptionUseCase struct {
	users   repository.UserRepository
	gateway ports.BillingGateway
	// priceTiers mapea price ids externos a planes locales; se arma desde la
	// configuración estática y nunca admite valores desconocidos.
	priceTiers map[string]string
}

// NewSubscriptionUseCase construye el caso de uso con el mapa price→plan.
func NewSubscriptionUseCase(users repository.UserRepository, gateway ports.BillingGateway, priceTiers map[string]string) *SubscriptionUseCase {
	return &SubscriptionUseCase{users: users, gateway: gateway, priceTiers: priceTiers}
}

// SubscriptionUpserted procesa subscription.created/updated: resuelve el
// usuario local y escribe el plan que corresponde al price id.
//
// Resolución del usuario (enlace auto-reparable): primero por la referencia de
// customer almacenada; si no existe, consulta el email del customer en la
// plataforma y busca por email, persistiendo la referencia al encontrarla para
// que las próximas entregas no necesiten la consulta externa.
func (uc *SubscriptionUseCase) SubscriptionUpserted(ctx context.Context, customerID, priceID string) error {
	tier, ok := uc.priceTiers[priceID]
	if !ok {
		// Un price desconocido se rechaza; nunca degradar en silencio a free.
		return domain.ErrUnknownPrice
	}
	user, err := uc.resolveUser(ctx, customerID)
	if err != nil {
		return err
	}
	return uc.users.SetTier(ctx, user.ID, tier)
}

// SubscriptionDeleted procesa subscription.deleted: el plan vuelve a free.
func (uc *SubscriptionUseCase) SubscriptionDeleted(ctx context.Context, customerID string) error {
	user, err := uc.resolveUser(ctx, customerID)
	if err != nil {
		return err
	}
	return uc.users.SetTier(ctx, user.ID, entity.TierFree)
}

func (uc *SubscriptionUseCase) resolveUser(ctx context.Context, customerID string) (*entity.User, error) {
	user, err := uc.users.GetByStripeCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	email, err := uc.gateway.CustomerEmail(ctx, customerID)
	if err != nil {
		return nil, err
	}
	user, err = uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.users.SetStripeCustomerID(ctx, user.ID, customerID); err != nil {
		return nil, err
	}
	return user, nil
}
