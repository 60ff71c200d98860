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

// CompanyRepository implementación MongoDB del puerto repository.CompanyRepository.
// Las listas de referencias (clients, jobs, employees) se mutan con
// $addToSet/$pull, las primitivas atómicas a nivel de campo del almacén.
type CompanyRepository struct {
	coll *mongo.Collection
}

// NewCompanyRepository construye el repositorio sobre la colección companies.
func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection("companies")}
}

// EnsureIndexes crea el índice único del identificador público y el índice de
// consulta por dueño.
func (r *CompanyRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "public_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_public_id"),
		},
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}},
			Options: options.Index().SetName("idx_owner_id"),
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, models)
	return err
}

func (r *CompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	_, err := r.coll.InsertOne(ctx, company)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CompanyRepository) GetByPublicID(ctx context.Context, publicID string) (*entity.Company, error) {
	return r.findOne(ctx, bson.M{"public_id": publicID})
}

// ListByIDs expande una lista de referencias a documentos, en orden de creación.
func (r *CompanyRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.Company, error) {
	if len(ids) == 0 {
		return []*entity.Company{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []*entity.Company
	for cur.Next(ctx) {
		var c entity.Company
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, cur.Err()
}

func (r *CompanyRepository) Update(ctx context.Context, company *entity.Company) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": company.ID}, company)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) SetCompanyURL(ctx context.Context, id, url string) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{"company_url": url, "updated_at": time.Now()},
	})
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) PushClient(ctx context.Context, companyID, clientID string) error {
	return r.updateOne(ctx, companyID, bson.M{
		"$addToSet": bson.M{"clients": clientID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
}

func (r *CompanyRepository) PullClient(ctx context.Context, companyID, clientID string) error {
	return r.updateOne(ctx, companyID, bson.M{
		"$pull": bson.M{"clients": clientID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (r *CompanyRepository) PushJob(ctx context.Context, companyID, jobID string) error {
	return r.updateOne(ctx, companyID, bson.M{
		"$addToSet": bson.M{"jobs": jobID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
}

func (r *CompanyRepository) PullJob(ctx context.Context, companyID, jobID string) error {
	return r.updateOne(ctx, companyID, bson.M{
		"$pull": bson.M{"jobs": jobID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (r *CompanyRepository) findOne(ctx context.Context, filter bson.M) (*entity.Company, error) {
	var c entity.Company
	err := r.coll.FindOne(ctx, filter).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
