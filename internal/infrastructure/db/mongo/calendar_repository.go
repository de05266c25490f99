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

const eventsCollection = "calendar_events"

type CalendarRepository struct {
	coll *mongo.Collection
}

func NewCalendarRepository(db *mongo.Database) *CalendarRepository {
	return &CalendarRepository{coll: db.Collection(eventsCollection)}
}

type eventDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	Date        time.Time          `bson:"date"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Type        string             `bson:"type"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d eventDoc) toDomain() *domain.CalendarEvent {
	return &domain.CalendarEvent{
		ID:          d.ID.Hex(),
		OwnerID:     d.OwnerID,
		Date:        d.Date,
		Title:       d.Title,
		Description: d.Description,
		Type:        domain.EventType(d.Type),
		CreatedAt:   d.CreatedAt,
	}
}

func (r *CalendarRepository) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := eventDoc{
		OwnerID:     event.OwnerID,
		Date:        event.Date,
		Title:       event.Title,
		Description: event.Description,
		Type:        string(event.Type),
		CreatedAt:   event.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	created := *event
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CalendarRepository) FindByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc eventDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CalendarRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	var events []*domain.CalendarEvent
	for cur.Next(ctx) {
		var doc eventDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, doc.toDomain())
	}
	return events, cur.Err()
}

func (r *CalendarRepository) Update(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	oid, err := primitive.ObjectIDFromHex(event.ID)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"date":        event.Date,
		"title":       event.Title,
		"description": event.Description,
		"type":        string(event.Type),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func (r *CalendarRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *CalendarRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the owner+date index used by calendar listing.
func (r *CalendarRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "date", Value: 1}},
	})
	return err
}
