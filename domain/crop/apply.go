package crop

import (
	"image"

	"github.com/disintegration/imaging"
)

// ClampForImage bounds typed insets against an image of the given size the
// way the render step does: each inset into [0, dim-1], then the right and
// bottom insets give way when the pair would remove the whole axis.
func ClampForImage(in Insets, width, height int) Insets {
	in.Left = clampInt(in.Left, 0, width-1)
	in.Right = clampInt(in.Right, 0, width-1)
	in.Top = clampInt(in.Top, 0, height-1)
	in.Bottom = clampInt(in.Bottom, 0, height-1)
	if in.Left+in.Right >= width {
		in.Right = width - in.Left - 1
	}
	if in.Top+in.Bottom >= height {
		in.Bottom = height - in.Top - 1
	}
	return in
}

// Apply returns the visible part of img after removing the insets.
func Apply(img image.Image, in Insets) (*image.NRGBA, error) {
	if img == nil {
		return nil, ErrInvalidSize
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrInvalidSize
	}
	in = ClampForImage(in, b.Dx(), b.Dy())
	r := image.Rect(b.Min.X+in.Left, b.Min.Y+in.Top, b.Max.X-in.Right, b.Max.Y-in.Bottom)
	return imaging.Crop(img, r), nil
}
