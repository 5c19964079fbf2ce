// Package source loads preview images from an image-view HTTP endpoint, the
// local filesystem or the screen.
package source

import (
	"context"
	"errors"
	"image"
	"strings"
)

// ErrEmptyID is returned when a load is requested without an identifier.
var ErrEmptyID = errors.New("source: empty image identifier")

// Source loads the image named by id.
type Source interface {
	Load(ctx context.Context, id string) (image.Image, error)
}

// CleanID trims whitespace and one pair of surrounding double quotes, the
// form paths take when copied from a file manager.
func CleanID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) >= 2 && strings.HasPrefix(id, `"`) && strings.HasSuffix(id, `"`) {
		id = strings.TrimSpace(id[1 : len(id)-1])
	}
	return id
}
