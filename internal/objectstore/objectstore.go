// Package objectstore сохраняет загруженные файлы (аватары) и отдаёт их публичный URL.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/health-tracker/internal/config"
)

// Store сохраняет объект под ключом и возвращает его публичный адрес.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// New выбирает S3-совместимое хранилище, если задан bucket, иначе локальный каталог.
func New(ctx context.Context, cfg config.ObjectStorage) (Store, error) {
	if cfg.Bucket != "" {
		return NewS3(ctx, cfg)
	}
	return NewLocal(cfg.LocalDir, LocalURLPrefix)
}

// AvatarKey строит ключ объекта для аватара пользователя.
func AvatarKey(userID, ext string) string {
	d := time.Now().UTC()
	return path.Join("avatars", userID, fmt.Sprintf("%d%02d%02d-%s%s", d.Year(), d.Month(), d.Day(), uuid.NewString(), ext))
}
