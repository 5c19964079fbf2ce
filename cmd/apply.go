package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/soocke/insetcrop/domain/crop"
	"github.com/soocke/insetcrop/domain/source"
	"github.com/spf13/cobra"
)

type applyOptions struct {
	in      string
	out     string
	server  string
	timeout time.Duration
	insets  crop.Insets
}

func applyCmd() *cobra.Command {
	o := applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Crop an image by the given insets and save it",
		Example: "  insetcrop apply --in photo.png --left 10 --right 10 --top 40\n" +
			"  insetcrop apply --in output/ComfyUI_0001.png --server http://127.0.0.1:8188 --out crop.png",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLoggerTo(cmd.ErrOrStderr(), slog.LevelWarn)
			return runApply(cmd.Context(), cmd.OutOrStdout(), o, logger)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.in, "in", "i", "", "Image to crop: file path, URL, server path or screen[:x,y,w,h]")
	f.StringVarP(&o.out, "out", "o", "", "Output file (default <in>_cropped.png)")
	f.StringVar(&o.server, "server", "", "Base URL of the image-view server")
	f.DurationVar(&o.timeout, "timeout", 10*time.Second, "HTTP timeout")
	f.IntVar(&o.insets.Left, "left", 0, "Pixels removed from the left edge")
	f.IntVar(&o.insets.Right, "right", 0, "Pixels removed from the right edge")
	f.IntVar(&o.insets.Top, "top", 0, "Pixels removed from the top edge")
	f.IntVar(&o.insets.Bottom, "bottom", 0, "Pixels removed from the bottom edge")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func runApply(ctx context.Context, w io.Writer, o applyOptions, logger *slog.Logger) error {
	if source.CleanID(o.in) == "" {
		return source.ErrEmptyID
	}
	if o.insets.Left < 0 || o.insets.Right < 0 || o.insets.Top < 0 || o.insets.Bottom < 0 {
		return errors.New("insets must not be negative")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	router := source.NewRouter(o.server, &http.Client{Timeout: o.timeout}, logger)
	img, err := router.Load(ctx, o.in)
	if err != nil {
		return err
	}
	out, err := crop.Apply(img, o.insets)
	if err != nil {
		return err
	}
	dst := o.out
	if dst == "" {
		dst = croppedName(o.in)
	}
	if err := imaging.Save(out, dst); err != nil {
		return fmt.Errorf("save %s: %w", dst, err)
	}
	b := img.Bounds()
	Good.Fprintf(w, "cropped %s\n", dst)
	Subtle.Fprintf(w, "  Original: %dx%d -> Cropped: %dx%d\n", b.Dx(), b.Dy(), out.Bounds().Dx(), out.Bounds().Dy())
	return nil
}

// croppedName derives the default output file from an image id. Ids that
// are not local files (URLs, server paths, screen grabs) still end up as a
// file in the working directory.
func croppedName(id string) string {
	id = source.CleanID(id)
	if id == source.ScreenPrefix || strings.HasPrefix(id, source.ScreenPrefix+":") {
		return "screen_cropped.png"
	}
	base := filepath.Base(id)
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "image"
	}
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff":
	default:
		ext = ".png"
	}
	return name + "_cropped" + ext
}
