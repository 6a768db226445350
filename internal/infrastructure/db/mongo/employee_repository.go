package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hrops/payroll-system/internal/core/domain"
)

const employeeCollection = "employees"

// MongoEmployeeRepository persists employee records with numeric ids drawn
// from the counters collection. Reads join the referenced role via $lookup,
// so role renames are reflected immediately and a deleted role reads back
// as an empty role.
type MongoEmployeeRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{db: db, coll: db.Collection(employeeCollection)}
}

type mongoEmployee struct {
	ID           int64      `bson:"_id"`
	Name         string     `bson:"name"`
	Username     string     `bson:"username"`
	PasswordHash string     `bson:"password_hash"`
	RoleID       int64      `bson:"role_id,omitempty"`
	Role         *mongoRole `bson:"role,omitempty"`
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	id, err := nextSequence(ctx, r.db, employeeCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoEmployee{
		ID:           id,
		Name:         e.Name,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		RoleID:       e.Role.ID,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *e
	created.ID = id
	return &created, nil
}

func (r *MongoEmployeeRepository) Upsert(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	doc := mongoEmployee{
		ID:           e.ID,
		Name:         e.Name,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		RoleID:       e.Role.ID,
	}

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": e.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("upsert employee: %w", err)
	}
	return e, nil
}

func (r *MongoEmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoEmployeeRepository) FindByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoEmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	cursor, err := r.coll.Aggregate(ctx, withRoleLookup(bson.M{}))
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoEmployee
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	employees := make([]domain.Employee, len(docs))
	for i, doc := range docs {
		employees[i] = *doc.toDomain()
	}
	return employees, nil
}

func (r *MongoEmployeeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *MongoEmployeeRepository) findOne(ctx context.Context, match bson.M) (*domain.Employee, error) {
	cursor, err := r.coll.Aggregate(ctx, withRoleLookup(match))
	if err != nil {
		return nil, fmt.Errorf("find employee: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("find employee: %w", err)
		}
		return nil, domain.ErrEmployeeNotFound
	}

	var doc mongoEmployee
	if err := cursor.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode employee: %w", err)
	}
	return doc.toDomain(), nil
}

// withRoleLookup joins the role referenced by role_id. preserveNullAndEmptyArrays
// keeps employees whose role was deleted out from under them.
func withRoleLookup(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         roleCollection,
			"localField":   "role_id",
			"foreignField": "_id",
			"as":           "role",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$role",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
}

func (m *mongoEmployee) toDomain() *domain.Employee {
	e := &domain.Employee{
		ID:           m.ID,
		Name:         m.Name,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
	}
	if m.Role != nil {
		e.Role = domain.Role{ID: m.Role.ID, Name: m.Role.Name}
	}
	return e
}
