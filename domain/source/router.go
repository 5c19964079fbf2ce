package source

import (
	"context"
	"image"
	"log/slog"
	"net/http"
	"strings"
)

// Router picks a source from the shape of the identifier.
type Router struct {
	Server Source // image-view endpoint; nil falls back to Files
	Files  Source
	Screen Source
	Client *http.Client // for direct http(s) identifiers
	logger *slog.Logger
}

// NewRouter wires the default sources. serverURL may be empty.
func NewRouter(serverURL string, client *http.Client, logger *slog.Logger) *Router {
	r := &Router{Files: FileSource{}, Screen: ScreenSource{}, Client: client, logger: logger}
	if serverURL != "" {
		r.Server = NewHTTPSource(serverURL, client)
	}
	return r
}

// Route names the source an id goes to: "screen", "url", "server" or "file".
func (r *Router) Route(id string) string {
	switch {
	case id == ScreenPrefix || strings.HasPrefix(id, ScreenPrefix+":"):
		return "screen"
	case strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://"):
		return "url"
	case r.Server != nil:
		return "server"
	default:
		return "file"
	}
}

func (r *Router) Load(ctx context.Context, id string) (image.Image, error) {
	id = CleanID(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	route := r.Route(id)
	if r.logger != nil {
		r.logger.Debug("load image", "id", id, "route", route)
	}
	switch route {
	case "screen":
		return r.Screen.Load(ctx, id)
	case "url":
		client := r.Client
		if client == nil {
			client = http.DefaultClient
		}
		return fetch(ctx, client, id)
	case "server":
		return r.Server.Load(ctx, id)
	default:
		return r.Files.Load(ctx, id)
	}
}
