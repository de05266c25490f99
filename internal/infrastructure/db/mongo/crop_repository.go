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

const cropsCollection = "crops"

type CropRepository struct {
	coll *mongo.Collection
}

func NewCropRepository(db *mongo.Database) *CropRepository {
	return &CropRepository{coll: db.Collection(cropsCollection)}
}

type cropDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FarmID       string             `bson:"farm_id"`
	Name         string             `bson:"name"`
	AreaHa       float64            `bson:"area_ha"`
	YieldTons    float64            `bson:"yield_tons"`
	PlantingDate time.Time          `bson:"planting_date"`
	HarvestDate  time.Time          `bson:"harvest_date"`
	Stage        string             `bson:"stage"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d cropDoc) toDomain() *domain.Crop {
	return &domain.Crop{
		ID:           d.ID.Hex(),
		FarmID:       d.FarmID,
		Name:         d.Name,
		AreaHa:       d.AreaHa,
		YieldTons:    d.YieldTons,
		PlantingDate: d.PlantingDate,
		HarvestDate:  d.HarvestDate,
		Stage:        d.Stage,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *CropRepository) Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := cropDoc{
		FarmID:       crop.FarmID,
		Name:         crop.Name,
		AreaHa:       crop.AreaHa,
		YieldTons:    crop.YieldTons,
		PlantingDate: crop.PlantingDate,
		HarvestDate:  crop.HarvestDate,
		Stage:        crop.Stage,
		CreatedAt:    crop.CreatedAt,
		UpdatedAt:    crop.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert crop: %w", err)
	}

	created := *crop
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CropRepository) FindByID(ctx context.Context, id string) (*domain.Crop, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCropNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc cropDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCropNotFound
		}
		return nil, fmt.Errorf("find crop: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CropRepository) ListByFarm(ctx context.Context, farmID string) ([]*domain.Crop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"farm_id": farmID}, options.Find().SetSort(bson.D{{Key: "planting_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	defer cur.Close(ctx)

	var crops []*domain.Crop
	for cur.Next(ctx) {
		var doc cropDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode crop: %w", err)
		}
		crops = append(crops, doc.toDomain())
	}
	return crops, cur.Err()
}

func (r *CropRepository) Update(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	oid, err := primitive.ObjectIDFromHex(crop.ID)
	if err != nil {
		return nil, domain.ErrCropNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":          crop.Name,
		"area_ha":       crop.AreaHa,
		"yield_tons":    crop.YieldTons,
		"planting_date": crop.PlantingDate,
		"harvest_date":  crop.HarvestDate,
		"stage":         crop.Stage,
		"updated_at":    crop.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update crop: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCropNotFound
	}
	return crop, nil
}

func (r *CropRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCropNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete crop: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCropNotFound
	}
	return nil
}

func (r *CropRepository) DeleteByFarm(ctx context.Context, farmID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"farm_id": farmID})
	if err != nil {
		return fmt.Errorf("delete farm crops: %w", err)
	}
	return nil
}

func (r *CropRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the farm index used by per-farm listing.
func (r *CropRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "farm_id", Value: 1}},
	})
	return err
}
