package localdisk

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"content-manager-api/config"
	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/domain/attachment"
)

// Store keeps uploads on the local filesystem under cfg.UploadsDir and hands
// out URLs below <base url>/uploads/. PublicID is the relative file path.
type Store struct {
	logger  *zap.Logger
	dir     string
	baseURL string
}

func New(logger *zap.Logger, cfg config.Storage, baseURL string) (*Store, error) {
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		return nil, err
	}

	return &Store{
		logger:  logger,
		dir:     cfg.UploadsDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Dir is the root the HTTP layer serves as /uploads.
func (s *Store) Dir() string { return s.dir }

func (s *Store) Put(_ context.Context, up ports.Upload) (ports.StoredObject, error) {
	rel := filepath.FromSlash(up.Key)
	dst := filepath.Join(s.dir, rel)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return ports.StoredObject{}, err
	}

	f, err := os.Create(dst)
	if err != nil {
		return ports.StoredObject{}, err
	}
	defer f.Close()

	if _, err = io.Copy(f, up.Body); err != nil {
		os.Remove(dst)
		return ports.StoredObject{}, err
	}

	return ports.StoredObject{
		URL:      s.baseURL + "/uploads/" + up.Key,
		PublicID: up.Key,
		Kind:     up.Kind,
	}, nil
}

func (s *Store) Delete(_ context.Context, publicID string, _ attachment.ResourceKind) error {
	dst := filepath.Join(s.dir, filepath.FromSlash(publicID))

	// Refuse anything escaping the uploads root.
	if rel, err := filepath.Rel(s.dir, dst); err != nil || strings.HasPrefix(rel, "..") {
		s.logger.Warn("refusing delete outside uploads dir", zap.String("public_id", publicID))
		return nil
	}

	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
