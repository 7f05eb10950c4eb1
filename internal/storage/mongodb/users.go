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

type userDoc struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Email        string        `bson:"email"`
	Username     string        `bson:"username"`
	Name         string        `bson:"name"`
	PasswordHash string        `bson:"passwordHash"`
	Role         string        `bson:"role"`
	Active       bool          `bson:"active"`
	Bio          string        `bson:"bio,omitempty"`
	ProfileImage string        `bson:"profileImage,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt"`
	LastLoginAt  *time.Time    `bson:"lastLoginAt,omitempty"`
}

func (d *userDoc) model() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		Active:       d.Active,
		Bio:          d.Bio,
		ProfileImage: d.ProfileImage,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		LastLoginAt:  d.LastLoginAt,
	}
}

// CreateUser сохраняет нового пользователя. Нарушение уникального индекса
// email или username возвращается как storage.ErrDuplicateEmail / ErrDuplicateUsername.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.mongodb.CreateUser"

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := userDoc{
		ID:           bson.NewObjectID(),
		Email:        user.Email,
		Username:     user.Username,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Active:       user.Active,
		Bio:          user.Bio,
		ProfileImage: user.ProfileImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		return nil, wrap(op, err)
	}
	return doc.model(), nil
}

// EnsureUser создаёт пользователя, если email ещё не занят. Возвращает true при создании.
func (s *Storage) EnsureUser(ctx context.Context, user models.User) (bool, error) {
	const op = "storage.mongodb.EnsureUser"

	now := time.Now().UTC()
	update := bson.M{
		"$setOnInsert": bson.M{
			"email":        user.Email,
			"username":     user.Username,
			"name":         user.Name,
			"passwordHash": user.PasswordHash,
			"role":         user.Role,
			"active":       user.Active,
			"createdAt":    now,
			"updatedAt":    now,
		},
	}
	res, err := s.users.UpdateOne(ctx, bson.M{"email": user.Email}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return false, wrap(op, err)
	}
	return res.UpsertedCount == 1, nil
}

func (s *Storage) findUser(ctx context.Context, op string, filter bson.M) (*models.User, error) {
	var doc userDoc
	if err := s.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, wrap(op, err)
	}
	return doc.model(), nil
}

// GetUserByID возвращает пользователя по идентификатору.
func (s *Storage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.mongodb.GetUserByID"
	oid, err := objectID(op, id)
	if err != nil {
		return nil, err
	}
	return s.findUser(ctx, op, bson.M{"_id": oid})
}

// GetUserByEmail возвращает пользователя по нормализованному email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, "storage.mongodb.GetUserByEmail", bson.M{"email": email})
}

// GetUserByUsername возвращает пользователя по username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findUser(ctx, "storage.mongodb.GetUserByUsername", bson.M{"username": username})
}

// UpdateUser применяет непустые поля patch и возвращает обновлённого пользователя.
func (s *Storage) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	const op = "storage.mongodb.UpdateUser"
	oid, err := objectID(op, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.ProfileImage != nil {
		set["profileImage"] = *patch.ProfileImage
	}
	if patch.PasswordHash != nil {
		set["passwordHash"] = *patch.PasswordHash
	}
	if patch.Active != nil {
		set["active"] = *patch.Active
	}

	var doc userDoc
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err = s.users.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		return nil, wrap(op, err)
	}
	return doc.model(), nil
}

// TouchLastLogin обновляет время последнего входа.
func (s *Storage) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	const op = "storage.mongodb.TouchLastLogin"
	oid, err := objectID(op, id)
	if err != nil {
		return err
	}
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"lastLoginAt": at}})
	if err != nil {
		return wrap(op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

// ListUsers возвращает страницу пользователей, новые первыми, и их общее количество.
func (s *Storage) ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, int64, error) {
	const op = "storage.mongodb.ListUsers"

	total, err := s.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, wrap(op, err)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(q.Offset()).
		SetLimit(int64(q.Limit))
	cursor, err := s.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, wrap(op, err)
	}
	var docs []userDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, wrap(op, err)
	}
	users := make([]models.User, 0, len(docs))
	for i := range docs {
		users = append(users, *docs[i].model())
	}
	return users, total, nil
}
