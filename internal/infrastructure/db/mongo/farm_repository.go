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

	"github.com/agrovia/farm-management/internal/core/domain"
)

const farmsCollection = "farms"

type FarmRepository struct {
	coll *mongo.Collection
}

func NewFarmRepository(db *mongo.Database) *FarmRepository {
	return &FarmRepository{coll: db.Collection(farmsCollection)}
}

type farmDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Location  string             `bson:"location"`
	SizeHa    float64            `bson:"size_ha"`
	OwnerID   string             `bson:"owner_id"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d farmDoc) toDomain() *domain.Farm {
	return &domain.Farm{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Location:  d.Location,
		SizeHa:    d.SizeHa,
		OwnerID:   d.OwnerID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *FarmRepository) Create(ctx context.Context, farm *domain.Farm) (*domain.Farm, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := farmDoc{
		Name:      farm.Name,
		Location:  farm.Location,
		SizeHa:    farm.SizeHa,
		OwnerID:   farm.OwnerID,
		CreatedAt: farm.CreatedAt,
		UpdatedAt: farm.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert farm: %w", err)
	}

	created := *farm
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *FarmRepository) FindByID(ctx context.Context, id string) (*domain.Farm, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFarmNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc farmDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFarmNotFound
		}
		return nil, fmt.Errorf("find farm: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns farms scoped to ownerID when non-empty; empty returns all.
func (r *FarmRepository) List(ctx context.Context, ownerID string) ([]*domain.Farm, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	defer cur.Close(ctx)

	var farms []*domain.Farm
	for cur.Next(ctx) {
		var doc farmDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode farm: %w", err)
		}
		farms = append(farms, doc.toDomain())
	}
	return farms, cur.Err()
}

func (r *FarmRepository) Update(ctx context.Context, farm *domain.Farm) (*domain.Farm, error) {
	oid, err := primitive.ObjectIDFromHex(farm.ID)
	if err != nil {
		return nil, domain.ErrFarmNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       farm.Name,
		"location":   farm.Location,
		"size_ha":    farm.SizeHa,
		"updated_at": farm.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update farm: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrFarmNotFound
	}
	return farm, nil
}

func (r *FarmRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFarmNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete farm: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFarmNotFound
	}
	return nil
}

func (r *FarmRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the owner index used by scoped listing.
func (r *FarmRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
