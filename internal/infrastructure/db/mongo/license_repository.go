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

const licensesCollection = "licenses"

type LicenseRepository struct {
	coll *mongo.Collection
}

func NewLicenseRepository(db *mongo.Database) *LicenseRepository {
	return &LicenseRepository{coll: db.Collection(licensesCollection)}
}

type mongoLicense struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	SoftwareName       string             `bson:"software_name"`
	LicenseKey         string             `bson:"license_key"`
	PurchaseDate       *time.Time         `bson:"purchase_date,omitempty"`
	ExpirationDate     *time.Time         `bson:"expiration_date,omitempty"`
	AssignedEmployeeID string             `bson:"assigned_employee_id,omitempty"`
}

func (r *LicenseRepository) Create(ctx context.Context, l *domain.License) (*domain.License, error) {
	doc := mongoLicense{
		SoftwareName:       l.SoftwareName,
		LicenseKey:         l.LicenseKey,
		PurchaseDate:       l.PurchaseDate,
		ExpirationDate:     l.ExpirationDate,
		AssignedEmployeeID: l.AssignedEmployeeID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateLicenseKey
		}
		return nil, fmt.Errorf("insert license: %w", err)
	}

	created := *l
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *LicenseRepository) FindAll(ctx context.Context) ([]*domain.License, error) {
	return r.find(ctx, bson.M{})
}

func (r *LicenseRepository) FindByAssignedEmployee(ctx context.Context, employeeID string) ([]*domain.License, error) {
	return r.find(ctx, bson.M{"assigned_employee_id": employeeID})
}

func (r *LicenseRepository) find(ctx context.Context, filter bson.M) ([]*domain.License, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.License
	for cursor.Next(ctx) {
		var ml mongoLicense
		if err := cursor.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode license: %w", err)
		}
		out = append(out, ml.toDomain())
	}
	return out, cursor.Err()
}

func (r *LicenseRepository) FindByID(ctx context.Context, id string) (*domain.License, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrLicenseNotFound, id)
	}

	var ml mongoLicense
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrLicenseNotFound, id)
		}
		return nil, fmt.Errorf("find license: %w", err)
	}
	return ml.toDomain(), nil
}

func (r *LicenseRepository) Update(ctx context.Context, l *domain.License) (*domain.License, error) {
	oid, err := primitive.ObjectIDFromHex(l.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrLicenseNotFound, l.ID)
	}

	doc := mongoLicense{
		ID:                 oid,
		SoftwareName:       l.SoftwareName,
		LicenseKey:         l.LicenseKey,
		PurchaseDate:       l.PurchaseDate,
		ExpirationDate:     l.ExpirationDate,
		AssignedEmployeeID: l.AssignedEmployeeID,
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateLicenseKey
		}
		return nil, fmt.Errorf("update license: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: id %s", domain.ErrLicenseNotFound, l.ID)
	}
	return l, nil
}

func (r *LicenseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: id %s", domain.ErrLicenseNotFound, id)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrLicenseNotFound, id)
	}
	return nil
}

func (r *LicenseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "license_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "assigned_employee_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (ml mongoLicense) toDomain() *domain.License {
	return &domain.License{
		ID:                 ml.ID.Hex(),
		SoftwareName:       ml.SoftwareName,
		LicenseKey:         ml.LicenseKey,
		PurchaseDate:       ml.PurchaseDate,
		ExpirationDate:     ml.ExpirationDate,
		AssignedEmployeeID: ml.AssignedEmployeeID,
	}
}
