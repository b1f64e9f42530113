package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"content-manager-api/config"
	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/domain/attachment"
)

const requestTimeout = 2 * time.Minute

// Client talks to the Cloudinary upload API over signed requests. Every
// object is filed under a resource type ("image", "video" or "raw") which
// must be repeated verbatim on deletion.
type Client struct {
	logger *zap.Logger
	http   *http.Client

	baseURL   string
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
}

func New(logger *zap.Logger, cfg config.Storage) *Client {
	return &Client{
		logger:    logger,
		http:      &http.Client{Timeout: requestTimeout},
		baseURL:   "https://api.cloudinary.com/v1_1",
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.UploadFolder,
	}
}

// WithBaseURL points the client at a different API host. Used by tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimRight(u, "/")
	return c
}

type uploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

func (c *Client) Put(ctx context.Context, up ports.Upload) (ports.StoredObject, error) {
	publicID := c.publicID(up.Key)

	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}
	params["signature"] = c.sign(params)
	params["api_key"] = c.apiKey

	body, contentType, err := multipartBody(params, up)
	if err != nil {
		return ports.StoredObject{}, err
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", c.baseURL, c.cloudName, up.Kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return ports.StoredObject{}, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return ports.StoredObject{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return ports.StoredObject{}, fmt.Errorf("cloudinary upload: status %d: %s", resp.StatusCode, msg)
	}

	var out uploadResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ports.StoredObject{}, err
	}

	url := out.SecureURL
	if url == "" {
		url = out.URL
	}

	return ports.StoredObject{
		URL:      url,
		PublicID: out.PublicID,
		Kind:     up.Kind,
	}, nil
}

func (c *Client) Delete(ctx context.Context, publicID string, kind attachment.ResourceKind) error {
	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}
	params["signature"] = c.sign(params)
	params["api_key"] = c.apiKey

	form := make([]string, 0, len(params))
	for k, v := range params {
		form = append(form, k+"="+v)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/destroy", c.baseURL, c.cloudName, kind)
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, endpoint,
		strings.NewReader(strings.Join(form, "&")),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("cloudinary destroy: status %d: %s", resp.StatusCode, msg)
	}

	var out struct {
		Result string `json:"result"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	// "not found" counts as deleted, the object is already gone
	if out.Result != "ok" && out.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: result %q", out.Result)
	}

	return nil
}

func (c *Client) publicID(key string) string {
	// Cloudinary appends the format itself, the public id carries no extension.
	if idx := strings.LastIndex(key, "."); idx > strings.LastIndex(key, "/") {
		key = key[:idx]
	}
	if c.folder == "" {
		return key
	}
	return c.folder + "/" + key
}

// sign produces the request signature: sorted params joined with '&',
// followed by the API secret, hashed with sha1.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

func multipartBody(params map[string]string, up ports.Upload) (io.Reader, string, error) {
	var buf strings.Builder
	w := multipart.NewWriter(&buf)

	for k, v := range params {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	fw, err := w.CreateFormFile("file", up.FileName)
	if err != nil {
		return nil, "", err
	}
	if _, err = io.Copy(fw, up.Body); err != nil {
		return nil, "", err
	}
	if err = w.Close(); err != nil {
		return nil, "", err
	}

	return strings.NewReader(buf.String()), w.FormDataContentType(), nil
}
