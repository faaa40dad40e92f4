package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/outage_reporting_system/internal/models"
	"github.com/shenikar/outage_reporting_system/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// outageDocument - документ коллекции outages. Старые документы могут не
// содержать latitude/longitude, поэтому поля указатели. _id бывает ObjectID
// (наши вставки) или строкой (перенесенные документы).
type outageDocument struct {
	ID          any                `bson:"_id,omitempty"`
	Type        string             `bson:"type"`
	Description string             `bson:"description"`
	Latitude    *float64           `bson:"latitude,omitempty"`
	Longitude   *float64           `bson:"longitude,omitempty"`
	Address     string             `bson:"address,omitempty"`
	UserID      string             `bson:"userId,omitempty"`
	Status      string             `bson:"status"`
	Severity    string             `bson:"severity,omitempty"`
	Timestamp   time.Time          `bson:"timestamp"`
}

func (d outageDocument) toModel() *models.OutageReport {
	status := d.Status
	if status == "" {
		status = models.StatusActive
	}
	return &models.OutageReport{
		ID:          documentID(d.ID),
		Type:        d.Type,
		Description: d.Description,
		Location:    pointFrom(d.Latitude, d.Longitude),
		Address:     d.Address,
		UserID:      d.UserID,
		Status:      status,
		Severity:    d.Severity,
		ReportedAt:  d.Timestamp,
	}
}

// documentID приводит _id документа к строке
func documentID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// idFilter ищет по ObjectID, если id похож на него, и по строковому _id
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{"_id": id}
}

// MongoOutageRepository хранит отчеты в документной бд
type MongoOutageRepository struct {
	collection *mongo.Collection
	clock      clockwork.Clock
}

func NewMongoOutageRepository(collection *mongo.Collection, clock clockwork.Clock) service.OutageRepository {
	return &MongoOutageRepository{
		collection: collection,
		clock:      clock,
	}
}

// Create вставляет документ, время отчета ставит хранилище
func (m *MongoOutageRepository) Create(ctx context.Context, report *models.OutageReport) error {
	doc := outageDocument{
		Type:        report.Type,
		Description: report.Description,
		Address:     report.Address,
		UserID:      report.UserID,
		Status:      report.Status,
		Severity:    report.Severity,
		Timestamp:   m.clock.Now().UTC().Truncate(time.Millisecond),
	}
	if report.Location != nil {
		lat, lon := report.Location.Latitude, report.Location.Longitude
		doc.Latitude, doc.Longitude = &lat, &lon
	}

	res, err := m.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert outage document: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	report.ID = id.Hex()
	report.ReportedAt = doc.Timestamp
	return nil
}

// GetByID ищет документ по ObjectID или строковому _id
func (m *MongoOutageRepository) GetByID(ctx context.Context, id string) (*models.OutageReport, error) {
	var doc outageDocument
	if err := m.collection.FindOne(ctx, idFilter(id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("outage with id %s: %w", id, models.ErrOutageNotFound)
		}
		return nil, fmt.Errorf("failed to find outage document: %w", err)
	}
	return doc.toModel(), nil
}

// ListAll возвращает все документы, новые первыми
func (m *MongoOutageRepository) ListAll(ctx context.Context) ([]*models.OutageReport, error) {
	return m.find(ctx, bson.M{})
}

// ListByType возвращает документы одного типа, новые первыми
func (m *MongoOutageRepository) ListByType(ctx context.Context, outageType string) ([]*models.OutageReport, error) {
	return m.find(ctx, bson.M{"type": outageType})
}

// UpdateStatus меняет статус документа
func (m *MongoOutageRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := m.collection.UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update outage document: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("outage with id %s: %w", id, models.ErrOutageNotFound)
	}
	return nil
}

func (m *MongoOutageRepository) find(ctx context.Context, filter bson.M) ([]*models.OutageReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query outage documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []outageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode outage documents: %w", err)
	}

	reports := make([]*models.OutageReport, 0, len(docs))
	for _, doc := range docs {
		reports = append(reports, doc.toModel())
	}
	return reports, nil
}

// EnsureOutageIndexes создает индексы под сортировку по времени
func EnsureOutageIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create outage indexes: %w", err)
	}
	return nil
}
