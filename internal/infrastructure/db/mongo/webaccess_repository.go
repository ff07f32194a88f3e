package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

const webAccessesCollection = "web_accesses"

// WebAccessRepository persists stored web-service credentials. The password
// field is written as received; there is no application-layer encryption.
type WebAccessRepository struct {
	coll *mongo.Collection
}

func NewWebAccessRepository(db *mongo.Database) *WebAccessRepository {
	return &WebAccessRepository{coll: db.Collection(webAccessesCollection)}
}

type mongoWebAccess struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	URL                string             `bson:"url"`
	ServiceName        string             `bson:"service_name"`
	AccessUsername     string             `bson:"access_username"`
	AccessPassword     string             `bson:"access_password"`
	AssignedEmployeeID string             `bson:"assigned_employee_id,omitempty"`
}

func (r *WebAccessRepository) Create(ctx context.Context, w *domain.WebAccess) (*domain.WebAccess, error) {
	doc := mongoWebAccess{
		URL:                w.URL,
		ServiceName:        w.ServiceName,
		AccessUsername:     w.AccessUsername,
		AccessPassword:     w.AccessPassword,
		AssignedEmployeeID: w.AssignedEmployeeID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert web access: %w", err)
	}

	created := *w
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *WebAccessRepository) FindAll(ctx context.Context) ([]*domain.WebAccess, error) {
	return r.find(ctx, bson.M{})
}

func (r *WebAccessRepository) FindByAssignedEmployee(ctx context.Context, employeeID string) ([]*domain.WebAccess, error) {
	return r.find(ctx, bson.M{"assigned_employee_id": employeeID})
}

func (r *WebAccessRepository) find(ctx context.Context, filter bson.M) ([]*domain.WebAccess, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list web accesses: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.WebAccess
	for cursor.Next(ctx) {
		var mw mongoWebAccess
		if err := cursor.Decode(&mw); err != nil {
			return nil, fmt.Errorf("decode web access: %w", err)
		}
		out = append(out, mw.toDomain())
	}
	return out, cursor.Err()
}

func (r *WebAccessRepository) FindByID(ctx context.Context, id string) (*domain.WebAccess, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrWebAccessNotFound, id)
	}

	var mw mongoWebAccess
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrWebAccessNotFound, id)
		}
		return nil, fmt.Errorf("find web access: %w", err)
	}
	return mw.toDomain(), nil
}

func (r *WebAccessRepository) Update(ctx context.Context, w *domain.WebAccess) (*domain.WebAccess, error) {
	oid, err := primitive.ObjectIDFromHex(w.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrWebAccessNotFound, w.ID)
	}

	doc := mongoWebAccess{
		ID:                 oid,
		URL:                w.URL,
		ServiceName:        w.ServiceName,
		AccessUsername:     w.AccessUsername,
		AccessPassword:     w.AccessPassword,
		AssignedEmployeeID: w.AssignedEmployeeID,
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update web access: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: id %s", domain.ErrWebAccessNotFound, w.ID)
	}
	return w, nil
}

func (r *WebAccessRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: id %s", domain.ErrWebAccessNotFound, id)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete web access: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrWebAccessNotFound, id)
	}
	return nil
}

func (r *WebAccessRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "assigned_employee_id", Value: 1}},
	})
	return err
}

func (mw mongoWebAccess) toDomain() *domain.WebAccess {
	return &domain.WebAccess{
		ID:                 mw.ID.Hex(),
		URL:                mw.URL,
		ServiceName:        mw.ServiceName,
		AccessUsername:     mw.AccessUsername,
		AccessPassword:     mw.AccessPassword,
		AssignedEmployeeID: mw.AssignedEmployeeID,
	}
}
