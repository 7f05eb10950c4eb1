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

type bloodPressureDoc struct {
	Systolic  *float64 `bson:"systolic,omitempty"`
	Diastolic *float64 `bson:"diastolic,omitempty"`
}

type healthDoc struct {
	ID            bson.ObjectID     `bson:"_id,omitempty"`
	UserID        bson.ObjectID     `bson:"userId"`
	Date          string            `bson:"date"`
	Weight        *float64          `bson:"weight,omitempty"`
	Height        *float64          `bson:"height,omitempty"`
	BloodPressure *bloodPressureDoc `bson:"bloodPressure,omitempty"`
	BloodSugar    *float64          `bson:"bloodSugar,omitempty"`
	Steps         *int64            `bson:"steps,omitempty"`
	SleepHours    *float64          `bson:"sleepHours,omitempty"`
	Note          string            `bson:"note,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt"`
}

func newHealthDoc(r models.HealthRecord, userID bson.ObjectID) healthDoc {
	d := healthDoc{
		UserID:     userID,
		Date:       r.Date,
		Weight:     r.Weight,
		Height:     r.Height,
		BloodSugar: r.BloodSugar,
		Steps:      r.Steps,
		SleepHours: r.SleepHours,
		Note:       r.Note,
	}
	if r.BloodPressure != nil {
		d.BloodPressure = &bloodPressureDoc{Systolic: r.BloodPressure.Systolic, Diastolic: r.BloodPressure.Diastolic}
	}
	return d
}

func (d *healthDoc) model() models.HealthRecord {
	r := models.HealthRecord{
		ID:         d.ID.Hex(),
		UserID:     d.UserID.Hex(),
		Date:       d.Date,
		Weight:     d.Weight,
		Height:     d.Height,
		BloodSugar: d.BloodSugar,
		Steps:      d.Steps,
		SleepHours: d.SleepHours,
		Note:       d.Note,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.BloodPressure != nil {
		r.BloodPressure = &models.BloodPressure{Systolic: d.BloodPressure.Systolic, Diastolic: d.BloodPressure.Diastolic}
	}
	return r
}

// CreateHealthRecord сохраняет запись. Повтор даты даёт storage.ErrDuplicateRecord.
func (s *Storage) CreateHealthRecord(ctx context.Context, r models.HealthRecord) (*models.HealthRecord, error) {
	const op = "storage.mongodb.CreateHealthRecord"
	uid, err := objectID(op, r.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := newHealthDoc(r, uid)
	doc.ID = bson.NewObjectID()
	doc.CreatedAt, doc.UpdatedAt = now, now
	if _, err = s.health.InsertOne(ctx, doc); err != nil {
		return nil, wrap(op, err)
	}
	out := doc.model()
	return &out, nil
}

// GetHealthRecord возвращает запись пользователя за день.
func (s *Storage) GetHealthRecord(ctx context.Context, userID, date string) (*models.HealthRecord, error) {
	const op = "storage.mongodb.GetHealthRecord"
	uid, err := objectID(op, userID)
	if err != nil {
		return nil, err
	}
	var doc healthDoc
	if err = s.health.FindOne(ctx, bson.M{"userId": uid, "date": date}).Decode(&doc); err != nil {
		return nil, wrap(op, err)
	}
	out := doc.model()
	return &out, nil
}

// UpdateHealthRecord перезаписывает показатели записи (UserID, Date).
func (s *Storage) UpdateHealthRecord(ctx context.Context, r models.HealthRecord) (*models.HealthRecord, error) {
	const op = "storage.mongodb.UpdateHealthRecord"
	uid, err := objectID(op, r.UserID)
	if err != nil {
		return nil, err
	}

	doc := newHealthDoc(r, uid)
	set := bson.M{"updatedAt": time.Now().UTC(), "note": doc.Note}
	unset := bson.M{}
	for field, v := range map[string]any{
		"weight":        doc.Weight,
		"height":        doc.Height,
		"bloodPressure": doc.BloodPressure,
		"bloodSugar":    doc.BloodSugar,
		"steps":         doc.Steps,
		"sleepHours":    doc.SleepHours,
	} {
		if isNil(v) {
			unset[field] = ""
		} else {
			set[field] = v
		}
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var updated healthDoc
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err = s.health.FindOneAndUpdate(ctx, bson.M{"userId": uid, "date": r.Date}, update, opts).
		Decode(&updated); err != nil {
		return nil, wrap(op, err)
	}
	out := updated.model()
	return &out, nil
}

func isNil(v any) bool {
	switch p := v.(type) {
	case *float64:
		return p == nil
	case *int64:
		return p == nil
	case *bloodPressureDoc:
		return p == nil
	}
	return v == nil
}

// DeleteHealthRecord удаляет запись пользователя за день.
func (s *Storage) DeleteHealthRecord(ctx context.Context, userID, date string) error {
	const op = "storage.mongodb.DeleteHealthRecord"
	uid, err := objectID(op, userID)
	if err != nil {
		return err
	}
	res, err := s.health.DeleteOne(ctx, bson.M{"userId": uid, "date": date})
	if err != nil {
		return wrap(op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

// DeleteHealthRecords удаляет записи пользователя из списка ids. Чужие и
// некорректные идентификаторы пропускаются.
func (s *Storage) DeleteHealthRecords(ctx context.Context, userID string, ids []string) (int64, error) {
	const op = "storage.mongodb.DeleteHealthRecords"
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return 0, nil
	}
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := bson.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return 0, nil
	}
	res, err := s.health.DeleteMany(ctx, bson.M{"userId": uid, "_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, wrap(op, err)
	}
	return res.DeletedCount, nil
}

func (s *Storage) findHealth(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]models.HealthRecord, error) {
	cursor, err := s.health.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []healthDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.HealthRecord, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].model())
	}
	return out, nil
}

// ListHealthRecords возвращает страницу записей по убыванию даты и общее количество.
func (s *Storage) ListHealthRecords(ctx context.Context, userID string, q models.ListQuery) ([]models.HealthRecord, int64, error) {
	const op = "storage.mongodb.ListHealthRecords"
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return []models.HealthRecord{}, 0, nil
	}

	filter := dateFilter(uid, q.Start, q.End)
	total, err := s.health.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, wrap(op, err)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(q.Offset()).
		SetLimit(int64(q.Limit))
	records, err := s.findHealth(ctx, filter, opts)
	if err != nil {
		return nil, 0, wrap(op, err)
	}
	return records, total, nil
}

// HealthRecordsInRange возвращает все записи в интервале по возрастанию даты.
func (s *Storage) HealthRecordsInRange(ctx context.Context, userID string, dr models.DateRange) ([]models.HealthRecord, error) {
	const op = "storage.mongodb.HealthRecordsInRange"
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}
	records, err := s.findHealth(ctx, dateFilter(uid, dr.Start, dr.End),
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, wrap(op, err)
	}
	return records, nil
}

// ExistingDates возвращает те из dates, на которые у пользователя уже есть записи.
func (s *Storage) ExistingDates(ctx context.Context, userID string, dates []string) ([]string, error) {
	const op = "storage.mongodb.ExistingDates"
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil || len(dates) == 0 {
		return nil, nil
	}
	opts := options.Find().
		SetProjection(bson.M{"date": 1}).
		SetSort(bson.D{{Key: "date", Value: 1}})
	records, err := s.findHealth(ctx, bson.M{"userId": uid, "date": bson.M{"$in": dates}}, opts)
	if err != nil {
		return nil, wrap(op, err)
	}
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Date)
	}
	return out, nil
}

// InsertHealthRecords сохраняет записи целиком или не сохраняет ни одной.
// Идентификаторы назначаются заранее, чтобы при частичной вставке удалить
// уже записанные документы.
func (s *Storage) InsertHealthRecords(ctx context.Context, records []models.HealthRecord) error {
	const op = "storage.mongodb.InsertHealthRecords"
	if len(records) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(records))
	ids := make([]bson.ObjectID, 0, len(records))
	for _, r := range records {
		uid, err := objectID(op, r.UserID)
		if err != nil {
			return err
		}
		doc := newHealthDoc(r, uid)
		doc.ID = bson.NewObjectID()
		doc.CreatedAt, doc.UpdatedAt = now, now
		docs = append(docs, doc)
		ids = append(ids, doc.ID)
	}

	if _, err := s.health.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		if _, delErr := s.health.DeleteMany(context.WithoutCancel(ctx), bson.M{"_id": bson.M{"$in": ids}}); delErr != nil {
			return fmt.Errorf("%s: rollback failed: %v: %w", op, delErr, wrap(op, err))
		}
		return wrap(op, err)
	}
	return nil
}
