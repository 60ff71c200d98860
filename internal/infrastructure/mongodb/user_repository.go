package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/hubber-api/internal/domain"
	"github.com/jhoicas/hubber-api/internal/domain/entity"
)

// UserRepository implementación MongoDB del puerto repository.UserRepository.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository construye el repositorio sobre la colección users.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

// EnsureIndexes crea el índice único por email.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	return err
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrEmailAlreadyExists
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"stripe_customer_id": customerID})
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrEmailAlreadyExists
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// PushCompany agrega la referencia con $addToSet: reintentar el mismo enlace no
// duplica la entrada.
func (r *UserRepository) PushCompany(ctx context.Context, userID, companyID string) error {
	return r.updateOne(ctx, userID, bson.M{
		"$addToSet": bson.M{"companies": companyID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
}

func (r *UserRepository) PullCompany(ctx context.Context, userID, companyID string) error {
	return r.updateOne(ctx, userID, bson.M{
		"$pull": bson.M{"companies": companyID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (r *UserRepository) SetTier(ctx context.Context, userID, tier string) error {
	return r.updateOne(ctx, userID, bson.M{
		"$set": bson.M{"tier": tier, "updated_at": time.Now()},
	})
}

func (r *UserRepository) SetStripeCustomerID(ctx context.Context, userID, customerID string) error {
	return r.updateOne(ctx, userID, bson.M{
		"$set": bson.M{"stripe_customer_id": customerID, "updated_at": time.Now()},
	})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var u entity.User
	err := r.coll.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
