package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/magabrotheeeer/health-tracker/internal/models"
	"github.com/magabrotheeeer/health-tracker/internal/storage"
)

type symptomDoc struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	UserID      bson.ObjectID `bson:"userId"`
	Category    string        `bson:"category"`
	Description string        `bson:"description"`
	Severity    string        `bson:"severity,omitempty"`
	Duration    string        `bson:"duration,omitempty"`
	Notes       string        `bson:"notes,omitempty"`
	Date        time.Time     `bson:"date"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

func (d *symptomDoc) model() models.Symptom {
	return models.Symptom{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		Category:    d.Category,
		Description: d.Description,
		Severity:    d.Severity,
		Duration:    d.Duration,
		Notes:       d.Notes,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ownedFilter фильтр по идентификатору симптома и владельцу.
func ownedFilter(op, userID, id string) (bson.M, error) {
	uid, err := objectID(op, userID)
	if err != nil {
		return nil, err
	}
	oid, err := objectID(op, id)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": oid, "userId": uid}, nil
}

// CreateSymptom сохраняет симптом.
func (s *Storage) CreateSymptom(ctx context.Context, sm models.Symptom) (*models.Symptom, error) {
	const op = "storage.mongodb.CreateSymptom"
	uid, err := objectID(op, sm.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := symptomDoc{
		ID:          bson.NewObjectID(),
		UserID:      uid,
		Category:    sm.Category,
		Description: sm.Description,
		Severity:    sm.Severity,
		Duration:    sm.Duration,
		Notes:       sm.Notes,
		Date:        sm.Date.UTC().Truncate(time.Millisecond),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err = s.symptoms.InsertOne(ctx, doc); err != nil {
		return nil, wrap(op, err)
	}
	out := doc.model()
	return &out, nil
}

// GetSymptom возвращает симптом пользователя по идентификатору.
func (s *Storage) GetSymptom(ctx context.Context, userID, id string) (*models.Symptom, error) {
	const op = "storage.mongodb.GetSymptom"
	filter, err := ownedFilter(op, userID, id)
	if err != nil {
		return nil, err
	}
	var doc symptomDoc
	if err = s.symptoms.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, wrap(op, err)
	}
	out := doc.model()
	return &out, nil
}

// ListSymptoms возвращает симптомы пользователя, свежие первыми.
func (s *Storage) ListSymptoms(ctx context.Context, userID string) ([]models.Symptom, error) {
	const op = "storage.mongodb.ListSymptoms"
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return []models.Symptom{}, nil
	}
	cursor, err := s.symptoms.Find(ctx, bson.M{"userId": uid}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, wrap(op, err)
	}
	var docs []symptomDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, wrap(op, err)
	}
	out := make([]models.Symptom, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].model())
	}
	return out, nil
}

// UpdateSymptom перезаписывает изменяемые поля симптома.
func (s *Storage) UpdateSymptom(ctx context.Context, sm models.Symptom) (*models.Symptom, error) {
	const op = "storage.mongodb.UpdateSymptom"
	filter, err := ownedFilter(op, sm.UserID, sm.ID)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{
		"category":    sm.Category,
		"description": sm.Description,
		"severity":    sm.Severity,
		"duration":    sm.Duration,
		"notes":       sm.Notes,
		"date":        sm.Date.UTC(),
		"updatedAt":   time.Now().UTC(),
	}}
	var doc symptomDoc
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err = s.symptoms.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, wrap(op, err)
	}
	out := doc.model()
	return &out, nil
}

// DeleteSymptom удаляет симптом пользователя.
func (s *Storage) DeleteSymptom(ctx context.Context, userID, id string) error {
	const op = "storage.mongodb.DeleteSymptom"
	filter, err := ownedFilter(op, userID, id)
	if err != nil {
		return err
	}
	res, err := s.symptoms.DeleteOne(ctx, filter)
	if err != nil {
		return wrap(op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}
