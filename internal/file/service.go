package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/credential"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
	pkgLog "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

// Service talks to the file backend: multipart uploads, per-user listings
// and downloads. Downloads bypass the request pipeline because the download
// URL is a plain public GET, and recently fetched content is kept in a small
// TTL cache.
type Service struct {
	l          pkgLog.Logger
	gw         *gateway.Gateway
	creds      credential.Store
	policy     UploadPolicy
	httpClient *http.Client
	cache      *expirable.LRU[string, []byte]
}

// Config holds the file service construction parameters.
type Config struct {
	Policy UploadPolicy
	// CacheSize and CacheTTL shape the download cache; size 0 disables it.
	CacheSize int
	CacheTTL  time.Duration
	// HTTPClient overrides the direct-download client. Mostly for tests.
	HTTPClient *http.Client
}

// NewService creates a file service over the gateway. The credential store
// is needed separately because the backend keys file ownership by the same
// value the credential carries.
func NewService(l pkgLog.Logger, gw *gateway.Gateway, creds credential.Store, cfg Config) *Service {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	var cache *expirable.LRU[string, []byte]
	if cfg.CacheSize > 0 {
		cache = expirable.NewLRU[string, []byte](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return &Service{
		l:          l,
		gw:         gw,
		creds:      creds,
		policy:     cfg.Policy,
		httpClient: httpClient,
		cache:      cache,
	}
}

// Upload validates the file against the policy, then sends it as a
// multipart form. Ownership is recorded under the stored credential.
func (s *Service) Upload(ctx context.Context, input UploadInput) (model.FileRecord, error) {
	if err := s.policy.Validate(input.Filename, input.Size); err != nil {
		return model.FileRecord{}, err
	}
	userID, err := s.creds.Get()
	if err != nil {
		return model.FileRecord{}, fmt.Errorf("upload requires an authenticated session: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", input.Filename)
	if err != nil {
		return model.FileRecord{}, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, input.Content); err != nil {
		return model.FileRecord{}, fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := w.WriteField("description", input.Description); err != nil {
		return model.FileRecord{}, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := w.WriteField("user_id", userID); err != nil {
		return model.FileRecord{}, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return model.FileRecord{}, fmt.Errorf("failed to build multipart body: %w", err)
	}

	var record model.FileRecord
	if err := s.gw.PostMultipart(ctx, "/upload", &buf, w.FormDataContentType(), &record); err != nil {
		return model.FileRecord{}, err
	}
	s.l.Infof(ctx, "uploaded %s (%d bytes) as %s", input.Filename, input.Size, record.ID)
	return record, nil
}

// List returns the current user's file records.
func (s *Service) List(ctx context.Context) ([]model.FileRecord, error) {
	userID, err := s.creds.Get()
	if err != nil {
		return nil, fmt.Errorf("listing files requires an authenticated session: %w", err)
	}
	var records []model.FileRecord
	if err := s.gw.Get(ctx, "/files/"+url.PathEscape(userID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes a file record and drops any cached content for it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.gw.Delete(ctx, "/files/"+url.PathEscape(id)); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Remove(id)
	}
	return nil
}

// DownloadURL returns the direct address of a file's content. The link is
// shareable and does not carry a credential.
func (s *Service) DownloadURL(id string) string {
	return s.gw.Endpoints().BaseURL(gateway.TargetFile) + "/files/download/" + url.PathEscape(id)
}

// Download fetches a file's content, serving repeat reads from the TTL
// cache.
func (s *Service) Download(ctx context.Context, id string) ([]byte, error) {
	if s.cache != nil {
		if content, ok := s.cache.Get(id); ok {
			s.l.Debugf(ctx, "download %s served from cache (%d bytes)", id, len(content))
			return content, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.DownloadURL(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request for %s: %w", id, err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("download %s: %w", id, gateway.ErrUnreachable)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &gateway.RejectedError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download %s: failed to read content: %w", id, err)
	}
	if s.cache != nil {
		s.cache.Add(id, content)
	}
	return content, nil
}
