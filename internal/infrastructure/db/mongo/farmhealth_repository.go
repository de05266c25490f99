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

const healthCollection = "farm_health"

type FarmHealthRepository struct {
	coll *mongo.Collection
}

func NewFarmHealthRepository(db *mongo.Database) *FarmHealthRepository {
	return &FarmHealthRepository{coll: db.Collection(healthCollection)}
}

type farmHealthDoc struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty"`
	FarmID         string                `bson:"farm_id"`
	PestPressure   domain.PestPressure   `bson:"pest_pressure"`
	NutrientStatus domain.NutrientStatus `bson:"nutrient_status"`
	DiseaseRisk    domain.DiseaseRisk    `bson:"disease_risk"`
	CreatedAt      time.Time             `bson:"created_at"`
	UpdatedAt      time.Time             `bson:"updated_at"`
}

func (d farmHealthDoc) toDomain() *domain.FarmHealth {
	return &domain.FarmHealth{
		ID:             d.ID.Hex(),
		FarmID:         d.FarmID,
		PestPressure:   d.PestPressure,
		NutrientStatus: d.NutrientStatus,
		DiseaseRisk:    d.DiseaseRisk,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// Upsert creates or replaces the single health document of a farm.
func (r *FarmHealthRepository) Upsert(ctx context.Context, health *domain.FarmHealth) (*domain.FarmHealth, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"pest_pressure":   health.PestPressure,
			"nutrient_status": health.NutrientStatus,
			"disease_risk":    health.DiseaseRisk,
			"updated_at":      health.UpdatedAt,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"farm_id": health.FarmID}, update, opts); err != nil {
		return nil, fmt.Errorf("upsert farm health: %w", err)
	}

	return r.FindByFarm(ctx, health.FarmID)
}

func (r *FarmHealthRepository) FindByFarm(ctx context.Context, farmID string) (*domain.FarmHealth, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc farmHealthDoc
	if err := r.coll.FindOne(ctx, bson.M{"farm_id": farmID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHealthNotFound
		}
		return nil, fmt.Errorf("find farm health: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FarmHealthRepository) DeleteByFarm(ctx context.Context, farmID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"farm_id": farmID})
	if err != nil {
		return fmt.Errorf("delete farm health: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique farm index (one health record per farm).
func (r *FarmHealthRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "farm_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
