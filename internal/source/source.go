package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/busedmrly/vitrin/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Vitrin/1.0"
)

// document is the wire shape of a catalog payload.
type document struct {
	Media []domain.MediaRecord `json:"media"`
}

// New returns a CatalogSource for the configured location. http(s)
// locations are fetched over the network; anything else is treated as a
// local file path.
func New(location string, timeout time.Duration, logger *slog.Logger) domain.CatalogSource {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, timeout, logger)
	}
	return NewFileSource(location, logger)
}

// HTTPSource implements domain.CatalogSource over HTTP.
type HTTPSource struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSource creates a catalog source that fetches from url.
func NewHTTPSource(url string, timeout time.Duration, logger *slog.Logger) *HTTPSource {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPSource{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.MediaRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	s.logger.Debug("catalog request", "url", s.url)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("catalog request failed", "error", err)
		return nil, domain.ErrSourceUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("catalog request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parseDocument(body, s.logger)
}

// FileSource implements domain.CatalogSource from a file on disk.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a catalog source that reads from path.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{path: path, logger: logger}
}

func (s *FileSource) Fetch(ctx context.Context) ([]domain.MediaRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Error("catalog read failed", "path", s.path, "error", err)
		return nil, domain.ErrSourceUnavailable
	}
	return parseDocument(data, s.logger)
}

// parseDocument decodes a catalog payload. A well-formed document with no
// media field is an empty catalog, not an error.
func parseDocument(body []byte, logger *slog.Logger) ([]domain.MediaRecord, error) {
	var doc document
	if err := json.Unmarshal(body, &doc); err != nil {
		logger.Error("catalog parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: %v", domain.ErrBadDocument, err)
	}
	if doc.Media == nil {
		return []domain.MediaRecord{}, nil
	}
	return doc.Media, nil
}
