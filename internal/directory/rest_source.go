package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RESTSource queries a profile directory over HTTP. The endpoint performs the
// month/day filtering; one GET is issued per query.
type RESTSource struct {
	endpoint   *url.URL
	token      string
	logger     *slog.Logger
	httpClient *http.Client
}

type directoryAPIResponse struct {
	OK        bool        `json:"ok"`
	Error     string      `json:"error"`
	Employees []RawRecord `json:"employees"`
}

func NewRESTSource(endpoint, token string, timeout time.Duration, logger *slog.Logger) (*RESTSource, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("directory endpoint is required")
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse directory endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("directory endpoint must be http or https, got %q", parsed.Scheme)
	}

	if timeout <= 0 {
		timeout = 12 * time.Second
	}

	return &RESTSource{
		endpoint: parsed,
		token:    strings.TrimSpace(token),
		logger:   logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (s *RESTSource) QueryHireDateAnniversaries(ctx context.Context, window Window) ([]RawRecord, error) {
	u := *s.endpoint
	q := u.Query()
	q.Set("range", window.Range.String())
	q.Set("from", window.From.Format("2006-01-02"))
	q.Set("to", window.To.Format("2006-01-02"))
	for _, key := range window.Keys() {
		q.Add("key", key)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.ErrorContext(ctx, "directory request failed", slog.String("window", window.String()), slog.String("error", err.Error()))
		return nil, fmt.Errorf("call directory api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("directory api returned status %d%s", resp.StatusCode, bodyHint(snippet))
	}

	var parsed directoryAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode directory response: %w", err)
	}

	if !parsed.OK {
		if parsed.Error == "" {
			parsed.Error = "unknown_error"
		}
		return nil, fmt.Errorf("directory api error: %s", parsed.Error)
	}

	s.logger.DebugContext(ctx, "directory query completed",
		slog.String("window", window.String()),
		slog.Int("count", len(parsed.Employees)),
	)

	return parsed.Employees, nil
}

func bodyHint(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", text)
}
