package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

const hardwareCollection = "hardware"

type HardwareRepository struct {
	coll *mongo.Collection
}

func NewHardwareRepository(db *mongo.Database) *HardwareRepository {
	return &HardwareRepository{coll: db.Collection(hardwareCollection)}
}

type mongoHardware struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Type               string             `bson:"type"`
	Brand              string             `bson:"brand,omitempty"`
	SerialNumber       string             `bson:"serial_number"`
	Location           string             `bson:"location,omitempty"`
	AssignedEmployeeID string             `bson:"assigned_employee_id,omitempty"`
}

func (r *HardwareRepository) Create(ctx context.Context, h *domain.Hardware) (*domain.Hardware, error) {
	doc := mongoHardware{
		Type:               h.Type,
		Brand:              h.Brand,
		SerialNumber:       h.SerialNumber,
		Location:           h.Location,
		AssignedEmployeeID: h.AssignedEmployeeID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSerialNumber
		}
		return nil, fmt.Errorf("insert hardware: %w", err)
	}

	created := *h
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *HardwareRepository) FindAll(ctx context.Context) ([]*domain.Hardware, error) {
	return r.find(ctx, bson.M{})
}

func (r *HardwareRepository) FindByAssignedEmployee(ctx context.Context, employeeID string) ([]*domain.Hardware, error) {
	return r.find(ctx, bson.M{"assigned_employee_id": employeeID})
}

func (r *HardwareRepository) find(ctx context.Context, filter bson.M) ([]*domain.Hardware, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list hardware: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Hardware
	for cursor.Next(ctx) {
		var mh mongoHardware
		if err := cursor.Decode(&mh); err != nil {
			return nil, fmt.Errorf("decode hardware: %w", err)
		}
		out = append(out, mh.toDomain())
	}
	return out, cursor.Err()
}

func (r *HardwareRepository) FindByID(ctx context.Context, id string) (*domain.Hardware, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrHardwareNotFound, id)
	}

	var mh mongoHardware
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mh); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrHardwareNotFound, id)
		}
		return nil, fmt.Errorf("find hardware: %w", err)
	}
	return mh.toDomain(), nil
}

func (r *HardwareRepository) Update(ctx context.Context, h *domain.Hardware) (*domain.Hardware, error) {
	oid, err := primitive.ObjectIDFromHex(h.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrHardwareNotFound, h.ID)
	}

	doc := mongoHardware{
		ID:                 oid,
		Type:               h.Type,
		Brand:              h.Brand,
		SerialNumber:       h.SerialNumber,
		Location:           h.Location,
		AssignedEmployeeID: h.AssignedEmployeeID,
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSerialNumber
		}
		return nil, fmt.Errorf("update hardware: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: id %s", domain.ErrHardwareNotFound, h.ID)
	}
	return h, nil
}

func (r *HardwareRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: id %s", domain.ErrHardwareNotFound, id)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete hardware: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrHardwareNotFound, id)
	}
	return nil
}

// EnsureIndexes creates the unique serial number constraint and the
// assignment lookup index used by the delete-cascade.
func (r *HardwareRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "serial_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "assigned_employee_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mh mongoHardware) toDomain() *domain.Hardware {
	return &domain.Hardware{
		ID:                 mh.ID.Hex(),
		Type:               mh.Type,
		Brand:              mh.Brand,
		SerialNumber:       mh.SerialNumber,
		Location:           mh.Location,
		AssignedEmployeeID: mh.AssignedEmployeeID,
	}
}
