package source

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestCleanID(t *testing.T) {
	cases := map[string]string{
		`  C:\img\a.png `:    `C:\img\a.png`,
		`"/tmp/my file.png"`: "/tmp/my file.png",
		`"`:                  `"`,
		"":                   "",
	}
	for in, want := range cases {
		if got := CleanID(in); got != want {
			t.Fatalf("CleanID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHTTPSource_Load(t *testing.T) {
	body := pngBytes(t, 6, 4)
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != ViewPath {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	s := NewHTTPSource(srv.URL+"/", &http.Client{Timeout: time.Second})
	s.Now = func() time.Time { return time.UnixMilli(1234) }
	img, err := s.Load(context.Background(), ` "/data/in.png" `)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("bounds = %v", b)
	}
	if gotQuery["filename"][0] != "/data/in.png" || gotQuery["type"][0] != "path" || gotQuery["t"][0] != "1234" {
		t.Fatalf("query = %v", gotQuery)
	}
}

func TestHTTPSource_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("filename") == "missing.png" {
			http.Error(w, "nope", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	s := NewHTTPSource(srv.URL, &http.Client{Timeout: time.Second})
	if _, err := s.Load(context.Background(), "missing.png"); err == nil {
		t.Fatalf("expected status error")
	}
	if _, err := s.Load(context.Background(), "garbage.png"); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := s.Load(context.Background(), "  "); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("empty id err = %v", err)
	}
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	if err := os.WriteFile(path, pngBytes(t, 3, 5), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	img, err := FileSource{}.Load(context.Background(), `"`+path+`"`)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 5 {
		t.Fatalf("bounds = %v", b)
	}
	if _, err := (FileSource{}).Load(context.Background(), filepath.Join(t.TempDir(), "none.png")); err == nil {
		t.Fatalf("expected open error")
	}
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("screen")
	if err != nil || !r.Empty() {
		t.Fatalf("full screen = %v, %v", r, err)
	}
	r, err = ParseRegion("screen:10, 20,300,200")
	if err != nil || r != image.Rect(10, 20, 310, 220) {
		t.Fatalf("region = %v, %v", r, err)
	}
	for _, bad := range []string{"screen:1,2,3", "screen:a,b,c,d", "screen:0,0,0,10", "screens", "file.png"} {
		if _, err := ParseRegion(bad); !errors.Is(err, ErrBadRegion) {
			t.Fatalf("ParseRegion(%q) err = %v", bad, err)
		}
	}
}

type mockSource struct {
	calls []string
	img   image.Image
}

func (m *mockSource) Load(_ context.Context, id string) (image.Image, error) {
	m.calls = append(m.calls, id)
	return m.img, nil
}

func TestRouter_Routes(t *testing.T) {
	server, files := &mockSource{}, &mockSource{}
	var grabbed image.Rectangle
	r := &Router{Server: server, Files: files, Screen: ScreenSource{Grab: func(rect image.Rectangle) (image.Image, error) {
		grabbed = rect
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	}}}

	if _, err := r.Load(context.Background(), " screen:1,2,3,4 "); err != nil {
		t.Fatalf("screen load: %v", err)
	}
	if grabbed != image.Rect(1, 2, 4, 6) {
		t.Fatalf("grabbed = %v", grabbed)
	}
	if _, err := r.Load(context.Background(), `"/out/a.png"`); err != nil {
		t.Fatalf("server load: %v", err)
	}
	if len(server.calls) != 1 || server.calls[0] != "/out/a.png" || len(files.calls) != 0 {
		t.Fatalf("server=%v files=%v", server.calls, files.calls)
	}

	r.Server = nil
	if got := r.Route("/out/a.png"); got != "file" {
		t.Fatalf("route without server = %q", got)
	}
	if got := r.Route("https://example.com/a.png"); got != "url" {
		t.Fatalf("route for url = %q", got)
	}
	if _, err := r.Load(context.Background(), ""); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("empty id err = %v", err)
	}
}

func TestRouter_DirectURL(t *testing.T) {
	body := pngBytes(t, 2, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	r := NewRouter("", srv.Client(), nil)
	img, err := r.Load(context.Background(), srv.URL+"/any.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestNewRouter_ServerRoute(t *testing.T) {
	body := pngBytes(t, 3, 3)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != ViewPath || r.URL.Query().Get("filename") != "/out/a.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	r := NewRouter(srv.URL+"/", srv.Client(), nil)
	hs, ok := r.Server.(*HTTPSource)
	if !ok || hs.BaseURL != srv.URL || hs.Client != srv.Client() {
		t.Fatalf("server source = %+v", r.Server)
	}
	img, err := r.Load(context.Background(), "/out/a.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 3 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}
