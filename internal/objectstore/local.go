package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalURLPrefix путь, под которым роутер раздаёт локальные файлы.
const LocalURLPrefix = "/uploads"

var errBadKey = errors.New("object key escapes storage directory")

// Local хранит файлы в каталоге на диске.
type Local struct {
	dir       string
	urlPrefix string
}

// NewLocal создаёт каталог при необходимости.
func NewLocal(dir, urlPrefix string) (*Local, error) {
	const op = "objectstore.NewLocal"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Local{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

// Dir каталог с файлами.
func (l *Local) Dir() string {
	return l.dir
}

// Put записывает объект в файл и возвращает относительный URL.
func (l *Local) Put(ctx context.Context, key, _ string, body io.Reader) (string, error) {
	const op = "objectstore.Local.Put"
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	clean := filepath.Clean(filepath.FromSlash(key))
	if filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("%s: %w", op, errBadKey)
	}
	dst := filepath.Join(l.dir, clean)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if _, err = io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return l.urlPrefix + "/" + filepath.ToSlash(clean), nil
}
