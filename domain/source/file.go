package source

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// FileSource opens images from the local filesystem.
type FileSource struct{}

func (FileSource) Load(ctx context.Context, id string) (image.Image, error) {
	id = CleanID(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := imaging.Open(id, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", id, err)
	}
	return img, nil
}
