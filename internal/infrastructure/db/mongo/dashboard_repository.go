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

const dashboardsCollection = "dashboards"

type DashboardRepository struct {
	coll *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{coll: db.Collection(dashboardsCollection)}
}

type dashboardDoc struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty"`
	OwnerID       string                 `bson:"owner_id"`
	FarmID        string                 `bson:"farm_id"`
	Charts        domain.ChartData       `bson:"charts"`
	Weather       domain.WeatherSnapshot `bson:"weather"`
	Soil          domain.SoilStatus      `bson:"soil"`
	UpcomingTasks []string               `bson:"upcoming_tasks,omitempty"`
	ImageURL      string                 `bson:"image_url,omitempty"`
	CreatedAt     time.Time              `bson:"created_at"`
	UpdatedAt     time.Time              `bson:"updated_at"`
}

func (d dashboardDoc) toDomain() *domain.Dashboard {
	return &domain.Dashboard{
		ID:            d.ID.Hex(),
		OwnerID:       d.OwnerID,
		FarmID:        d.FarmID,
		Charts:        d.Charts,
		Weather:       d.Weather,
		Soil:          d.Soil,
		UpcomingTasks: d.UpcomingTasks,
		ImageURL:      d.ImageURL,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// Upsert creates or replaces the single dashboard document of a farm.
func (r *DashboardRepository) Upsert(ctx context.Context, dashboard *domain.Dashboard) (*domain.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"owner_id":       dashboard.OwnerID,
			"charts":         dashboard.Charts,
			"weather":        dashboard.Weather,
			"soil":           dashboard.Soil,
			"upcoming_tasks": dashboard.UpcomingTasks,
			"image_url":      dashboard.ImageURL,
			"updated_at":     dashboard.UpdatedAt,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"farm_id": dashboard.FarmID}, update, opts); err != nil {
		return nil, fmt.Errorf("upsert dashboard: %w", err)
	}

	return r.FindByFarm(ctx, dashboard.FarmID)
}

func (r *DashboardRepository) FindByFarm(ctx context.Context, farmID string) (*domain.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc dashboardDoc
	if err := r.coll.FindOne(ctx, bson.M{"farm_id": farmID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDashboardNotFound
		}
		return nil, fmt.Errorf("find dashboard: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *DashboardRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list dashboards: %w", err)
	}
	defer cur.Close(ctx)

	var dashboards []*domain.Dashboard
	for cur.Next(ctx) {
		var doc dashboardDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode dashboard: %w", err)
		}
		dashboards = append(dashboards, doc.toDomain())
	}
	return dashboards, cur.Err()
}

func (r *DashboardRepository) DeleteByFarm(ctx context.Context, farmID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"farm_id": farmID})
	if err != nil {
		return fmt.Errorf("delete farm dashboard: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique farm index (one dashboard per farm) and
// the owner index used by the client overview.
func (r *DashboardRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "farm_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
