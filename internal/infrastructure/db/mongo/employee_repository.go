package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

const employeesCollection = "employees"

type EmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{coll: db.Collection(employeesCollection)}
}

type mongoEmployee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Department string             `bson:"department,omitempty"`
	Position   string             `bson:"position,omitempty"`
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	doc := mongoEmployee{Name: e.Name, Department: e.Department, Position: e.Position}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *e
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*domain.Employee, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Employee
	for cursor.Next(ctx) {
		var me mongoEmployee
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		out = append(out, me.toDomain())
	}
	return out, cursor.Err()
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrEmployeeNotFound, id)
	}

	var me mongoEmployee
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrEmployeeNotFound, id)
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return me.toDomain(), nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(e.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrEmployeeNotFound, e.ID)
	}

	doc := mongoEmployee{ID: oid, Name: e.Name, Department: e.Department, Position: e.Position}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: id %s", domain.ErrEmployeeNotFound, e.ID)
	}
	return e, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: id %s", domain.ErrEmployeeNotFound, id)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrEmployeeNotFound, id)
	}
	return nil
}

func (me mongoEmployee) toDomain() *domain.Employee {
	return &domain.Employee{
		ID:         me.ID.Hex(),
		Name:       me.Name,
		Department: me.Department,
		Position:   me.Position,
	}
}
