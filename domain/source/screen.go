package source

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/vova616/screenshot"
)

// ScreenPrefix selects the screen source. "screen" grabs the whole primary
// screen and "screen:x,y,w,h" grabs a region.
const ScreenPrefix = "screen"

// ErrBadRegion is returned for a malformed screen region.
var ErrBadRegion = errors.New("source: malformed screen region")

// ScreenSource captures the screen.
type ScreenSource struct {
	// Grab captures r, or the whole screen when r is empty. nil uses the
	// system screen.
	Grab func(r image.Rectangle) (image.Image, error)
}

func (s ScreenSource) Load(ctx context.Context, id string) (image.Image, error) {
	r, err := ParseRegion(CleanID(id))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	grab := s.Grab
	if grab == nil {
		grab = grabScreen
	}
	img, err := grab(r)
	if err != nil {
		return nil, fmt.Errorf("source: capture screen: %w", err)
	}
	return img, nil
}

// ParseRegion parses a screen identifier. The whole screen is the empty
// rectangle.
func ParseRegion(id string) (image.Rectangle, error) {
	rest, ok := strings.CutPrefix(id, ScreenPrefix)
	if !ok {
		return image.Rectangle{}, ErrBadRegion
	}
	if rest == "" {
		return image.Rectangle{}, nil
	}
	rest, ok = strings.CutPrefix(rest, ":")
	if !ok {
		return image.Rectangle{}, ErrBadRegion
	}
	parts := strings.Split(rest, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, ErrBadRegion
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("%w: %v", ErrBadRegion, err)
		}
		v[i] = n
	}
	if v[2] <= 0 || v[3] <= 0 {
		return image.Rectangle{}, ErrBadRegion
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}

func grabScreen(r image.Rectangle) (image.Image, error) {
	if r.Empty() {
		return screenshot.CaptureScreen()
	}
	return screenshot.CaptureRect(r)
}
