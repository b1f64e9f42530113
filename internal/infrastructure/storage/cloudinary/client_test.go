package cloudinary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"content-manager-api/config"
	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/domain/attachment"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(zap.NewNop(), config.Storage{
		CloudName:    "demo",
		APIKey:       "key-123",
		APISecret:    "shh",
		UploadFolder: "content",
	}).WithBaseURL(srv.URL)
	return c, srv
}

func TestPut(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "key-123", r.FormValue("api_key"))
		assert.NotEmpty(t, r.FormValue("signature"))
		assert.Equal(t, "content/content/image/x/photo", r.FormValue("public_id"),
			"folder prefixed, extension stripped")

		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		_ = json.NewEncoder(w).Encode(map[string]string{
			"public_id":  "content/content/image/x/photo",
			"secure_url": "https://res.cloudinary.com/demo/image/upload/photo.png",
		})
	})

	obj, err := c.Put(context.Background(), ports.Upload{
		Key:      "content/image/x/photo.png",
		FileName: "photo.png",
		MimeType: "image/png",
		Kind:     attachment.KindImage,
		Body:     strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/photo.png", obj.URL)
	assert.Equal(t, "content/content/image/x/photo", obj.PublicID)
	assert.Equal(t, attachment.KindImage, obj.Kind)
}

func TestPut_RemoteError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid signature", http.StatusUnauthorized)
	})

	_, err := c.Put(context.Background(), ports.Upload{
		Key:  "content/image/x/photo.png",
		Kind: attachment.KindImage,
		Body: strings.NewReader("x"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestDelete_UsesRecordedKind(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]string{"result": "ok"})
	})

	err := c.Delete(context.Background(), "content/content/video/x/clip", attachment.KindVideo)
	require.NoError(t, err)
	assert.Equal(t, "/demo/video/destroy", gotPath)
}

func TestDelete_NotFoundIsFine(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"result": "not found"})
	})

	assert.NoError(t, c.Delete(context.Background(), "gone", attachment.KindImage))
}

func TestDelete_UnexpectedResult(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"result": "pending"})
	})

	err := c.Delete(context.Background(), "x", attachment.KindImage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `result "pending"`)
}

func Test_sign_Deterministic(t *testing.T) {
	c := New(zap.NewNop(), config.Storage{APISecret: "shh"})

	a := c.sign(map[string]string{"public_id": "p", "timestamp": "100"})
	b := c.sign(map[string]string{"timestamp": "100", "public_id": "p"})
	assert.Equal(t, a, b, "signature is order independent")
	assert.Len(t, a, 40)
}

func Test_publicID(t *testing.T) {
	c := New(zap.NewNop(), config.Storage{UploadFolder: "content"})
	assert.Equal(t, "content/a/b/photo", c.publicID("a/b/photo.png"))
	assert.Equal(t, "content/a.b/photo", c.publicID("a.b/photo"))

	bare := New(zap.NewNop(), config.Storage{})
	assert.Equal(t, "a/b/photo", bare.publicID("a/b/photo.png"))
}
