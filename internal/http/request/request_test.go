package request

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

func TestListQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    models.ListQuery
		wantErr []string
	}{
		{name: "defaults", query: "", want: models.ListQuery{Page: 1, Limit: 10}},
		{
			name:  "explicit",
			query: "page=3&limit=100&startDate=2024-01-01&endDate=2024-02-01T10:00:00Z",
			want: models.ListQuery{Page: 3, Limit: 100, DateRange: models.DateRange{
				Start: "2024-01-01", End: "2024-02-01",
			}},
		},
		{name: "page zero", query: "page=0", wantErr: []string{"page"}},
		{name: "limit too big", query: "limit=101", wantErr: []string{"limit"}},
		{name: "limit not a number", query: "limit=ten&page=x", wantErr: []string{"page", "limit"}},
		{name: "bad date", query: "startDate=yesterday", wantErr: []string{"startDate"}},
		{name: "reversed range", query: "startDate=2024-02-01&endDate=2024-01-01", wantErr: []string{"endDate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/health-info?"+tt.query, nil)
			got, err := ListQuery(r)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var e *apperr.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, apperr.KindInvalidInput, e.Kind)
			var fields []string
			for _, f := range e.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.wantErr, fields)
		})
	}
}

func TestDay(t *testing.T) {
	d, err := Day("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", d)

	_, err = Day("2024-13-01")
	assert.ErrorIs(t, err, apperr.Invalid(""))
}

func TestDecodeValid(t *testing.T) {
	v := validation.New()

	t.Run("bad json", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
		var in models.LoginInput
		err := DecodeValid(httptest.NewRecorder(), r, v, &in)
		assert.ErrorIs(t, err, apperr.New(apperr.KindBadRequest, ""))
	})

	t.Run("too large", func(t *testing.T) {
		body := `{"email":"` + strings.Repeat("a", MaxBodySize) + `"}`
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var in models.LoginInput
		err := DecodeValid(httptest.NewRecorder(), r, v, &in)
		assert.ErrorIs(t, err, apperr.New(apperr.KindPayloadTooLarge, ""))
	})

	t.Run("invalid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope"}`))
		var in models.LoginInput
		err := DecodeValid(httptest.NewRecorder(), r, v, &in)
		assert.ErrorIs(t, err, apperr.Invalid(""))
	})

	t.Run("ok", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","password":"x"}`))
		var in models.LoginInput
		require.NoError(t, DecodeValid(httptest.NewRecorder(), r, v, &in))
		assert.Equal(t, "a@b.co", in.Email)
	})
}

func multipartRequest(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

// минимальный валидный PNG 1x1
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestImage(t *testing.T) {
	t.Run("png accepted", func(t *testing.T) {
		r := multipartRequest(t, FieldProfileImage, "me.png", pngBytes)
		up, err := Image(httptest.NewRecorder(), r)
		require.NoError(t, err)
		assert.Equal(t, "image/png", up.MIME)
		assert.Equal(t, ".png", up.Ext)
		assert.Equal(t, "me.png", up.Filename)
	})

	t.Run("text rejected despite extension", func(t *testing.T) {
		r := multipartRequest(t, FieldProfileImage, "me.png", []byte("just text"))
		_, err := Image(httptest.NewRecorder(), r)
		assert.ErrorIs(t, err, apperr.Invalid(""))
	})

	t.Run("non-raster images rejected", func(t *testing.T) {
		for name, data := range map[string][]byte{
			"me.svg": []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"><script>alert(1)</script></svg>`),
			"me.bmp": append([]byte("BM"), make([]byte, 64)...),
		} {
			r := multipartRequest(t, FieldProfileImage, name, data)
			_, err := Image(httptest.NewRecorder(), r)
			require.ErrorIs(t, err, apperr.Invalid(""), name)
			assert.Equal(t, "only PNG, JPEG, GIF or WebP images are allowed", apperr.From(err).Message, name)
		}
	})

	t.Run("gif accepted", func(t *testing.T) {
		gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
		r := multipartRequest(t, FieldProfileImage, "me.gif", gif)
		up, err := Image(httptest.NewRecorder(), r)
		require.NoError(t, err)
		assert.Equal(t, "image/gif", up.MIME)
	})

	t.Run("missing field", func(t *testing.T) {
		r := multipartRequest(t, "other", "me.png", pngBytes)
		_, err := Image(httptest.NewRecorder(), r)
		assert.ErrorIs(t, err, apperr.New(apperr.KindBadRequest, ""))
	})

	t.Run("too large", func(t *testing.T) {
		data := append(append([]byte{}, pngBytes...), make([]byte, MaxUploadSize)...)
		r := multipartRequest(t, FieldProfileImage, "big.png", data)
		_, err := Image(httptest.NewRecorder(), r)
		assert.ErrorIs(t, err, apperr.New(apperr.KindPayloadTooLarge, ""))
	})
}

func TestCSV(t *testing.T) {
	r := multipartRequest(t, FieldImportFile, "data.csv", []byte("Date,Weight,Height,Systolic,Diastolic,Steps\n2024-01-01,70,,,,\n"))
	up, err := CSV(httptest.NewRecorder(), r)
	require.NoError(t, err)
	assert.Contains(t, string(up.Data), "2024-01-01")

	r = multipartRequest(t, FieldImportFile, "data.csv", pngBytes)
	_, err = CSV(httptest.NewRecorder(), r)
	assert.ErrorIs(t, err, apperr.Invalid(""))
}
