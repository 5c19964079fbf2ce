package source

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// ViewPath is the image-view route of the graph server.
const ViewPath = "/too/view/image"

// HTTPSource fetches images through the server's image-view route.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
	// Now stamps the cache-busting t parameter; nil means time.Now.
	Now func() time.Time
}

// NewHTTPSource returns a source for baseURL that fetches with client, or
// with http.DefaultClient when client is nil.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	return &HTTPSource{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

// ViewURL builds the image-view URL for a server-side path.
func (s *HTTPSource) ViewURL(id string) string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	q := url.Values{}
	q.Set("filename", id)
	q.Set("type", "path")
	q.Set("t", strconv.FormatInt(now().UnixMilli(), 10))
	return strings.TrimRight(s.BaseURL, "/") + ViewPath + "?" + q.Encode()
}

func (s *HTTPSource) Load(ctx context.Context, id string) (image.Image, error) {
	id = CleanID(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	return fetch(ctx, s.client(), s.ViewURL(id))
}

func (s *HTTPSource) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

// fetch GETs rawURL and decodes the body.
func fetch(ctx context.Context, client *http.Client, rawURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("source: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("source: fetch %s: %s", rawURL, resp.Status)
	}
	img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("source: decode: %w", err)
	}
	return img, nil
}
