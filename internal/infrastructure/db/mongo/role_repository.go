package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hrops/payroll-system/internal/core/domain"
)

const roleCollection = "roles"

type MongoRoleRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{db: db, coll: db.Collection(roleCollection)}
}

type mongoRole struct {
	ID   int64  `bson:"_id"`
	Name string `bson:"name"`
}

func (r *MongoRoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	id, err := nextSequence(ctx, r.db, roleCollection)
	if err != nil {
		return nil, err
	}

	if _, err := r.coll.InsertOne(ctx, mongoRole{ID: id, Name: role.Name}); err != nil {
		return nil, fmt.Errorf("insert role: %w", err)
	}

	created := *role
	created.ID = id
	return &created, nil
}

func (r *MongoRoleRepository) Upsert(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	doc := mongoRole{ID: role.ID, Name: role.Name}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": role.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert role: %w", err)
	}
	return role, nil
}

func (r *MongoRoleRepository) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoRoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoRole
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}

	roles := make([]domain.Role, len(docs))
	for i, doc := range docs {
		roles[i] = domain.Role{ID: doc.ID, Name: doc.Name}
	}
	return roles, nil
}

func (r *MongoRoleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *MongoRoleRepository) findOne(ctx context.Context, filter bson.M) (*domain.Role, error) {
	var doc mongoRole
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{ID: doc.ID, Name: doc.Name}, nil
}
