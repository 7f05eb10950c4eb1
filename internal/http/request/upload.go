package request

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/gabriel-vasile/mimetype"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
)

// MaxUploadSize предел размера загружаемого файла.
const MaxUploadSize = 5 << 20

// Имена полей multipart-формы.
const (
	FieldProfileImage = "profileImage"
	FieldImportFile   = "file"
)

// Upload содержимое загруженного файла и определённый по нему тип.
type Upload struct {
	Filename string
	Data     []byte
	MIME     string
	Ext      string
}

// ImageTypes растровые форматы, допустимые для аватара.
var ImageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// Image читает изображение из поля profileImage.
func Image(w http.ResponseWriter, r *http.Request) (*Upload, error) {
	return file(w, r, FieldProfileImage, func(m *mimetype.MIME) bool {
		return slices.ContainsFunc(ImageTypes, m.Is)
	}, "only PNG, JPEG, GIF or WebP images are allowed")
}

// CSV читает текстовый файл из поля file.
func CSV(w http.ResponseWriter, r *http.Request) (*Upload, error) {
	return file(w, r, FieldImportFile, func(m *mimetype.MIME) bool {
		for ; m != nil; m = m.Parent() {
			if m.Is("text/plain") {
				return true
			}
		}
		return false
	}, "only CSV files are allowed")
}

func file(w http.ResponseWriter, r *http.Request, field string, accept func(*mimetype.MIME) bool, rejectMsg string) (*Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperr.Wrap(apperr.KindPayloadTooLarge, "file exceeds 5 MB limit", err)
		}
		return nil, apperr.Wrap(apperr.KindBadRequest, "failed to parse multipart form", err)
	}

	f, header, err := r.FormFile(field)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindBadRequest, fmt.Sprintf("file field %q is required", field), err)
	}
	defer f.Close()

	if header.Size > MaxUploadSize {
		return nil, apperr.New(apperr.KindPayloadTooLarge, "file exceeds 5 MB limit")
	}
	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindBadRequest, "failed to read uploaded file", err)
	}
	if len(data) > MaxUploadSize {
		return nil, apperr.New(apperr.KindPayloadTooLarge, "file exceeds 5 MB limit")
	}
	if len(data) == 0 {
		return nil, apperr.New(apperr.KindBadRequest, "uploaded file is empty")
	}

	m := mimetype.Detect(data)
	if !accept(m) {
		return nil, apperr.Invalid(rejectMsg, apperr.FieldError{Field: field, Message: "unsupported file type " + m.String()})
	}
	return &Upload{
		Filename: header.Filename,
		Data:     data,
		MIME:     m.String(),
		Ext:      m.Extension(),
	}, nil
}
