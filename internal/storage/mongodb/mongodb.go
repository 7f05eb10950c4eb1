// Package mongodb реализует хранилище пользователей, записей о здоровье
// и симптомов на MongoDB. Уникальность email, username и пары
// (userId, date) обеспечивается индексами.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/magabrotheeeer/health-tracker/internal/storage"
)

// Имена коллекций и уникальных индексов.
const (
	usersCollection    = "users"
	healthCollection   = "health_records"
	symptomsCollection = "symptoms"

	indexEmail    = "email_unique"
	indexUsername = "username_unique"
	indexUserDate = "user_date_unique"
)

// Storage хранит клиента и коллекции базы.
type Storage struct {
	client   *mongo.Client
	users    *mongo.Collection
	health   *mongo.Collection
	symptoms *mongo.Collection
}

// New подключается к MongoDB, проверяет соединение и создаёт индексы.
func New(ctx context.Context, uri, database string) (*Storage, error) {
	const op = "storage.mongodb.New"

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(database)
	s := &Storage{
		client:   client,
		users:    db.Collection(usersCollection),
		health:   db.Collection(healthCollection),
		symptoms: db.Collection(symptomsCollection),
	}
	if err = s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	if _, err := s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName(indexEmail)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName(indexUsername)},
	}); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if _, err := s.health.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(indexUserDate),
	}); err != nil {
		return fmt.Errorf("health indexes: %w", err)
	}
	if _, err := s.symptoms.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
	}); err != nil {
		return fmt.Errorf("symptoms indexes: %w", err)
	}
	return nil
}

// Ping проверяет соединение.
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close отключает клиента.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// duplicateIndex возвращает имя нарушенного уникального индекса.
func duplicateIndex(err error) (string, bool) {
	if !mongo.IsDuplicateKeyError(err) {
		return "", false
	}
	msg := err.Error()
	for _, name := range []string{indexEmail, indexUsername, indexUserDate} {
		if strings.Contains(msg, name) {
			return name, true
		}
	}
	return "", true
}

// translate переводит ошибки драйвера в ошибки пакета storage.
func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storage.ErrNotFound
	}
	if name, ok := duplicateIndex(err); ok {
		switch name {
		case indexEmail:
			return storage.ErrDuplicateEmail
		case indexUsername:
			return storage.ErrDuplicateUsername
		case indexUserDate:
			return storage.ErrDuplicateRecord
		}
	}
	return err
}

func wrap(op string, err error) error {
	t := translate(err)
	if t == err {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, t, err)
}

// objectID разбирает hex-идентификатор. Некорректный идентификатор означает,
// что такого документа нет.
func objectID(op, id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return oid, nil
}

func dateFilter(userID bson.ObjectID, start, end string) bson.M {
	filter := bson.M{"userId": userID}
	if start != "" || end != "" {
		rng := bson.M{}
		if start != "" {
			rng["$gte"] = start
		}
		if end != "" {
			rng["$lte"] = end
		}
		filter["date"] = rng
	}
	return filter
}
