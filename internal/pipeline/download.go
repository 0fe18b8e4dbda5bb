package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"enricher/pkg/serrors"
)

// DefaultMaxDownloadBytes caps downloads when no limit is configured.
const DefaultMaxDownloadBytes = 50 << 20

// Fetcher retrieves the bytes of a CSV file.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// HTTPFetcher downloads files with HTTP GET. With AllowFiles it also reads
// file:// URLs and plain paths from the local file system.
type HTTPFetcher struct {
	client     *http.Client
	maxBytes   int64
	timeout    time.Duration
	allowFiles bool
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher constructs an HTTPFetcher. A non-positive maxBytes means
// DefaultMaxDownloadBytes.
func NewHTTPFetcher(client *http.Client, maxBytes int64, timeout time.Duration, allowFiles bool) *HTTPFetcher {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxDownloadBytes
	}

	return &HTTPFetcher{
		client:     client,
		maxBytes:   maxBytes,
		timeout:    timeout,
		allowFiles: allowFiles,
	}
}

// Fetch returns the body of location. Client errors and oversized files are
// reported as input errors; server and transport errors as ErrUnavailable.
func (f *HTTPFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid file URL")
	}

	switch {
	case u.Scheme == "http" || u.Scheme == "https":
		return f.fetchHTTP(ctx, u.String())
	case f.allowFiles && u.Scheme == "file":
		return f.readFile(u.Path)
	case f.allowFiles && u.Scheme == "":
		return f.readFile(location)
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unsupported file URL scheme %q", u.Scheme)
	}
}

func (f *HTTPFetcher) fetchHTTP(ctx context.Context, target string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not create download request")
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not download file")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		kind := serrors.ErrBadRequest
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			kind = serrors.ErrUnavailable
		}

		return nil, serrors.With(kind, "could not download file: %s %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	return f.read(resp.Body)
}

func (f *HTTPFetcher) readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not open file")
	}
	defer func() {
		_ = file.Close()
	}()

	return f.read(file)
}

func (f *HTTPFetcher) read(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read file")
	}
	if int64(len(data)) > f.maxBytes {
		return nil, serrors.With(serrors.ErrUnprocessable, "file exceeds %d bytes", f.maxBytes)
	}

	return data, nil
}

// fetchError annotates download failures that carry no semantic kind.
func fetchError(err error) error {
	if serrors.KindOf(err) != nil {
		return err
	}

	return fmt.Errorf("could not fetch file: %w", err)
}
