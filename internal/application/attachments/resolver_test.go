package attachments

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/domain/attachment"
)

type FakeStore struct {
	PutFunc    func(ctx context.Context, up ports.Upload) (ports.StoredObject, error)
	DeleteFunc func(ctx context.Context, publicID string, kind attachment.ResourceKind) error

	puts    atomic.Int32
	deletes atomic.Int32
}

func (f *FakeStore) Put(ctx context.Context, up ports.Upload) (ports.StoredObject, error) {
	f.puts.Add(1)
	if f.PutFunc == nil {
		return ports.StoredObject{}, errors.New("not used")
	}
	return f.PutFunc(ctx, up)
}

func (f *FakeStore) Delete(ctx context.Context, publicID string, kind attachment.ResourceKind) error {
	f.deletes.Add(1)
	if f.DeleteFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFunc(ctx, publicID, kind)
}

func echoStore() *FakeStore {
	return &FakeStore{
		PutFunc: func(_ context.Context, up ports.Upload) (ports.StoredObject, error) {
			return ports.StoredObject{
				URL:      "https://cdn.example.org/" + up.Key,
				PublicID: up.Key,
				Kind:     up.Kind,
			}, nil
		},
		DeleteFunc: func(context.Context, string, attachment.ResourceKind) error { return nil },
	}
}

type part struct {
	field       string
	filename    string
	contentType string
	content     string
}

func buildPayload(t *testing.T, parts ...part) ports.UploadPayload {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+p.field+`"; filename="`+p.filename+`"`)
		h.Set("Content-Type", p.contentType)
		fw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = io.WriteString(fw, p.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File
}

func newTestManager(store ports.MediaStore) *Manager {
	return NewManager(store, zap.NewNop(), 1<<20, 3)
}

func TestResolve_UploadsOnePerSlot(t *testing.T) {
	store := echoStore()
	m := newTestManager(store)
	pol := attachment.NewPolicy(attachment.SlotImage, attachment.SlotPDF)

	files := buildPayload(t,
		part{"image", "cover.png", "image/png", "png-bytes"},
		part{"pdf", "report.pdf", "application/pdf", "pdf-bytes"},
	)

	resolved, err := m.Resolve(context.Background(), files, pol)
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	img := resolved[attachment.SlotImage]
	assert.Equal(t, attachment.SlotImage, img.Slot)
	assert.Equal(t, attachment.KindImage, img.ResourceKind)
	assert.Equal(t, "cover.png", img.FileName)
	assert.NotEmpty(t, img.ExternalRef)
	assert.NotEmpty(t, img.ExternalID)

	pdf := resolved[attachment.SlotPDF]
	assert.Equal(t, attachment.KindRaw, pdf.ResourceKind)
	assert.Equal(t, int64(len("pdf-bytes")), pdf.SizeBytes)
}

func TestResolve_ExtraFilesInSlotDropped(t *testing.T) {
	store := echoStore()
	m := newTestManager(store)
	pol := attachment.NewPolicy(attachment.SlotImage)

	files := buildPayload(t,
		part{"image", "first.png", "image/png", "aaa"},
		part{"image", "second.png", "image/png", "bbb"},
	)

	resolved, err := m.Resolve(context.Background(), files, pol)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "first.png", resolved[attachment.SlotImage].FileName)
	assert.Equal(t, int32(1), store.puts.Load())
}

func TestResolve_EmptyPayload(t *testing.T) {
	store := echoStore()
	m := newTestManager(store)

	resolved, err := m.Resolve(context.Background(), nil, attachment.NewPolicy(attachment.SlotImage))
	require.NoError(t, err)
	assert.Nil(t, resolved)
	assert.Equal(t, int32(0), store.puts.Load())
}

func TestResolve_UnknownField(t *testing.T) {
	store := echoStore()
	m := newTestManager(store)
	pol := attachment.NewPolicy(attachment.SlotImage)

	files := buildPayload(t, part{"banner", "b.png", "image/png", "x"})

	_, err := m.Resolve(context.Background(), files, pol)
	require.ErrorIs(t, err, attachment.ErrUnsupportedMediaType)
	assert.Equal(t, int32(0), store.puts.Load())
}

func TestResolve_DisallowedMime(t *testing.T) {
	store := echoStore()
	m := newTestManager(store)
	pol := attachment.NewPolicy(attachment.SlotImage)

	files := buildPayload(t, part{"image", "evil.exe", "application/octet-stream", "x"})

	_, err := m.Resolve(context.Background(), files, pol)
	require.ErrorIs(t, err, attachment.ErrUnsupportedMediaType)
	assert.Equal(t, int32(0), store.puts.Load())
}

func TestResolve_FileTooLarge(t *testing.T) {
	store := echoStore()
	m := NewManager(store, zap.NewNop(), 4, 3)
	pol := attachment.NewPolicy(attachment.SlotImage)

	files := buildPayload(t, part{"image", "big.png", "image/png", "more-than-four-bytes"})

	_, err := m.Resolve(context.Background(), files, pol)
	require.ErrorIs(t, err, attachment.ErrFileTooLarge)
	assert.Equal(t, int32(0), store.puts.Load())
}

func TestResolve_TooManyFiles(t *testing.T) {
	store := echoStore()
	m := NewManager(store, zap.NewNop(), 1<<20, 1)
	pol := attachment.NewPolicy(attachment.SlotImage, attachment.SlotPDF)

	files := buildPayload(t,
		part{"image", "a.png", "image/png", "x"},
		part{"pdf", "b.pdf", "application/pdf", "y"},
	)

	_, err := m.Resolve(context.Background(), files, pol)
	require.ErrorIs(t, err, attachment.ErrTooManyFiles)
	assert.Equal(t, int32(0), store.puts.Load())
}

func TestResolve_ValidatesBeforeUploading(t *testing.T) {
	store := echoStore()
	m := newTestManager(store)
	pol := attachment.NewPolicy(attachment.SlotImage, attachment.SlotVideo)

	// the image alone is fine, the video mime is not: nothing may be uploaded
	files := buildPayload(t,
		part{"image", "ok.png", "image/png", "x"},
		part{"video", "clip.txt", "text/plain", "y"},
	)

	_, err := m.Resolve(context.Background(), files, pol)
	require.ErrorIs(t, err, attachment.ErrUnsupportedMediaType)
	assert.Equal(t, int32(0), store.puts.Load())
}

func TestResolve_UploadFailure(t *testing.T) {
	var calls int32
	store := &FakeStore{
		PutFunc: func(_ context.Context, up ports.Upload) (ports.StoredObject, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return ports.StoredObject{URL: "u", PublicID: "p", Kind: up.Kind}, nil
			}
			return ports.StoredObject{}, errors.New("remote 500")
		},
	}
	m := newTestManager(store)
	pol := attachment.NewPolicy(attachment.SlotImage, attachment.SlotPDF)

	files := buildPayload(t,
		part{"image", "a.png", "image/png", "x"},
		part{"pdf", "b.pdf", "application/pdf", "y"},
	)

	resolved, err := m.Resolve(context.Background(), files, pol)
	require.ErrorIs(t, err, attachment.ErrUploadFailed)
	assert.Nil(t, resolved)
}
