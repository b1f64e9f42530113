package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"content-manager-api/internal/application/attachments"
	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/application/services"
	"content-manager-api/internal/domain/attachment"
	domain "content-manager-api/internal/domain/teammember"
	"content-manager-api/internal/infrastructure/cache"
	jwtSvc "content-manager-api/internal/infrastructure/jwt"
	"content-manager-api/internal/infrastructure/mq"
)

// FakeMediaStore records uploads and deletions of the lifecycle under test.
type FakeMediaStore struct {
	PutFunc    func(ctx context.Context, up ports.Upload) (ports.StoredObject, error)
	DeleteFunc func(ctx context.Context, publicID string, kind attachment.ResourceKind) error

	Deleted []string
}

func (f *FakeMediaStore) Put(ctx context.Context, up ports.Upload) (ports.StoredObject, error) {
	if f.PutFunc == nil {
		return ports.StoredObject{
			URL:      "https://cdn.example.org/" + up.Key,
			PublicID: up.Key,
			Kind:     up.Kind,
		}, nil
	}
	return f.PutFunc(ctx, up)
}

func (f *FakeMediaStore) Delete(ctx context.Context, publicID string, kind attachment.ResourceKind) error {
	f.Deleted = append(f.Deleted, publicID)
	if f.DeleteFunc == nil {
		return nil
	}
	return f.DeleteFunc(ctx, publicID, kind)
}

// FakeRabbit satisfies the publisher port with a buffered channel, so notify
// never blocks in tests.
type FakeRabbit struct {
	ch chan mq.Event
}

func NewFakeRabbit() *FakeRabbit { return &FakeRabbit{ch: make(chan mq.Event, 16)} }

func (f *FakeRabbit) Connect(context.Context, string) error  { return nil }
func (f *FakeRabbit) Init() error                            { return nil }
func (f *FakeRabbit) PublisherWorker(context.Context)        {}
func (f *FakeRabbit) GetInputChan() chan mq.Event            { return f.ch }
func (f *FakeRabbit) GetConn() *amqp091.Connection           { return nil }
func (f *FakeRabbit) Events() []mq.Event {
	var evs []mq.Event
	for {
		select {
		case e := <-f.ch:
			evs = append(evs, e)
		default:
			return evs
		}
	}
}

// FakeTeamMemberRepo keeps members in memory keyed by UUID.
type FakeTeamMemberRepo struct {
	byUUID map[domain.UUID]*domain.TeamMember
}

func NewFakeTeamMemberRepo() *FakeTeamMemberRepo {
	return &FakeTeamMemberRepo{byUUID: make(map[domain.UUID]*domain.TeamMember)}
}

func (f *FakeTeamMemberRepo) Fetch(_ context.Context, flt domain.Filter, page, limit int) (domain.TeamMembers, int, error) {
	var ms domain.TeamMembers
	for _, m := range f.byUUID {
		if flt.Category == "" || m.Category == flt.Category {
			cp := *m
			ms = append(ms, &cp)
		}
	}
	return ms, len(ms), nil
}

func (f *FakeTeamMemberRepo) FetchByID(_ context.Context, id domain.UUID) (*domain.TeamMember, error) {
	m, ok := f.byUUID[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *FakeTeamMemberRepo) Create(_ context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	m.UUID = uuid.New()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	f.byUUID[m.UUID] = &m
	cp := m
	return &cp, nil
}

func (f *FakeTeamMemberRepo) Update(_ context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	if _, ok := f.byUUID[m.UUID]; !ok {
		return nil, nil
	}
	m.UpdatedAt = time.Now()
	f.byUUID[m.UUID] = &m
	cp := m
	return &cp, nil
}

func (f *FakeTeamMemberRepo) Delete(_ context.Context, id domain.UUID) (*domain.TeamMember, error) {
	m, ok := f.byUUID[id]
	if !ok {
		return nil, nil
	}
	delete(f.byUUID, id)
	return m, nil
}

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

func setupTeamRouter(t *testing.T, store ports.MediaStore, rabbit ports.RabbitMQ) (*gin.Engine, *FakeTeamMemberRepo, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	repo := NewFakeTeamMemberRepo()
	manager := attachments.NewManager(store, logger, 1<<20, 3)
	svc := services.NewTeamMemberService(repo, manager, rabbit, testCounter(), cache.Noop{})

	j := jwtSvc.New("test-secret")
	token, err := j.GenerateJWT(uuid.NewString(), "admin", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	NewTeamMemberController(r, svc, logger, j, cache.Noop{})

	return r, repo, token
}

type filePart struct {
	field       string
	filename    string
	contentType string
	content     string
}

func doMultipart(t *testing.T, r *gin.Engine, method, path, token string, fields map[string]string, files ...filePart) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, fp := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+fp.field+`"; filename="`+fp.filename+`"`)
		h.Set("Content-Type", fp.contentType)
		fw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = io.WriteString(fw, fp.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestTeamMemberLifecycle(t *testing.T) {
	store := &FakeMediaStore{}
	rabbit := NewFakeRabbit()
	r, _, token := setupTeamRouter(t, store, rabbit)

	// create with portrait
	rr := doMultipart(t, r, http.MethodPost, RouteTeam, token,
		map[string]string{"name": "Alice", "role": "Engineer", "category": "current"},
		filePart{"image", "alice.jpg", "image/jpeg", "jpeg-bytes"},
	)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	body := decodeBody(t, rr)
	require.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	memberID := data["uuid"].(string)
	firstImage := data["image"].(string)
	assert.NotEmpty(t, firstImage)

	// replace the portrait: old remote object must be reclaimed
	rr = doMultipart(t, r, http.MethodPut, RouteTeam+"/"+memberID, token,
		map[string]string{"role": "Staff Engineer"},
		filePart{"image", "alice2.png", "image/png", "png-bytes"},
	)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	body = decodeBody(t, rr)
	data = body["data"].(map[string]any)
	assert.Equal(t, "Staff Engineer", data["role"])
	assert.Equal(t, "Alice", data["name"], "omitted fields stay unchanged")
	secondImage := data["image"].(string)
	assert.NotEmpty(t, secondImage)
	assert.NotEqual(t, firstImage, secondImage)
	require.Len(t, store.Deleted, 1)

	// delete: the current portrait goes too
	req, err := http.NewRequest(http.MethodDelete, RouteTeam+"/"+memberID, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	rrDel := httptest.NewRecorder()
	r.ServeHTTP(rrDel, req)
	require.Equal(t, http.StatusOK, rrDel.Code, rrDel.Body.String())
	assert.Len(t, store.Deleted, 2)

	evs := rabbit.Events()
	require.Len(t, evs, 3)
	assert.Equal(t, mq.ActionCreated, evs[0].Action)
	assert.Equal(t, mq.ActionUpdated, evs[1].Action)
	assert.Equal(t, mq.ActionDeleted, evs[2].Action)
	assert.Equal(t, "teammember", evs[0].Kind)
}

func TestCreateTeamMember_Unauthorized(t *testing.T) {
	r, _, _ := setupTeamRouter(t, &FakeMediaStore{}, NewFakeRabbit())

	rr := doMultipart(t, r, http.MethodPost, RouteTeam, "",
		map[string]string{"name": "Alice", "role": "Engineer", "category": "current"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateTeamMember_ValidationErrors(t *testing.T) {
	r, _, token := setupTeamRouter(t, &FakeMediaStore{}, NewFakeRabbit())

	rr := doMultipart(t, r, http.MethodPost, RouteTeam, token,
		map[string]string{"category": "former"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	body := decodeBody(t, rr)
	errs := body["error"].(map[string]any)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "role")
	assert.Contains(t, errs, "category")
}

func TestCreateTeamMember_RejectsWrongMime(t *testing.T) {
	store := &FakeMediaStore{
		PutFunc: func(context.Context, ports.Upload) (ports.StoredObject, error) {
			t.Fatal("store must not be touched for a rejected upload")
			return ports.StoredObject{}, nil
		},
	}
	r, _, token := setupTeamRouter(t, store, NewFakeRabbit())

	rr := doMultipart(t, r, http.MethodPost, RouteTeam, token,
		map[string]string{"name": "Alice", "role": "Engineer", "category": "current"},
		filePart{"image", "cv.pdf", "application/pdf", "pdf-bytes"},
	)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateTeamMember_UploadFailure(t *testing.T) {
	store := &FakeMediaStore{
		PutFunc: func(context.Context, ports.Upload) (ports.StoredObject, error) {
			return ports.StoredObject{}, errors.New("remote 500")
		},
	}
	r, _, token := setupTeamRouter(t, store, NewFakeRabbit())

	rr := doMultipart(t, r, http.MethodPost, RouteTeam, token,
		map[string]string{"name": "Alice", "role": "Engineer", "category": "current"},
		filePart{"image", "alice.jpg", "image/jpeg", "jpeg-bytes"},
	)
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "media upload failed", body["error"])
}

func TestGetTeamMember_NotFound(t *testing.T) {
	r, _, _ := setupTeamRouter(t, &FakeMediaStore{}, NewFakeRabbit())

	req, err := http.NewRequest(http.MethodGet, RouteTeam+"/"+uuid.NewString(), nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetTeamMember_BadUUID(t *testing.T) {
	r, _, _ := setupTeamRouter(t, &FakeMediaStore{}, NewFakeRabbit())

	req, err := http.NewRequest(http.MethodGet, RouteTeam+"/not-a-uuid", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
