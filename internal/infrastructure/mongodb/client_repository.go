package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/hubber-api/internal/domain"
	"github.com/jhoicas/hubber-api/internal/domain/entity"
)

// ClientRepository implementación MongoDB del puerto repository.ClientRepository.
type ClientRepository struct {
	coll *mongo.Collection
}

// NewClientRepository construye el repositorio sobre la colección clients.
func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection("clients")}
}

// EnsureIndexes crea el índice de consulta por empresa dueña.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "company_id", Value: 1}},
		Options: options.Index().SetName("idx_company_id"),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	return err
}

func (r *ClientRepository) Create(ctx context.Context, client *entity.Client) error {
	_, err := r.coll.InsertOne(ctx, client)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	var c entity.Client
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) ListByCompany(ctx context.Context, companyID string) ([]*entity.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []*entity.Client
	for cur.Next(ctx) {
		var c entity.Client
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, cur.Err()
}

func (r *ClientRepository) Update(ctx context.Context, client *entity.Client) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": client.ID}, client)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) DeleteByCompany(ctx context.Context, companyID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"company_id": companyID})
	return err
}
