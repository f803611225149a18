package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slateboard/slateboard/pkg/board"
	"github.com/slateboard/slateboard/pkg/errors"
	"github.com/slateboard/slateboard/pkg/render"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
	formatDOT = "dot"

	defaultWidth  = 1200 // default viewport width
	defaultHeight = 800  // default viewport height
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path; derived from the input when empty
	format   string  // output format: "svg", "png", "dot"
	graphviz bool    // lay the document out with graphviz instead of authored positions
	width    float64 // viewport width in pixels
	height   float64 // viewport height in pixels

	// Optional drag overlay: when shape is set, guides and gaps for
	// that shape at (x, y) are drawn on top of the document.
	shape string
	x, y  float64
}

// newRenderCmd creates the render command for generating document images.
//
// Default settings:
//   - format: svg
//   - width: 1200px, height: 800px
//   - output: input path with the format's extension
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		format: formatSVG,
		width:  defaultWidth,
		height: defaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to SVG, PNG, or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRenderOpts(&opts); err != nil {
				return err
			}
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to the input path with the format's extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.graphviz, "graphviz", false, "lay out with graphviz instead of authored positions")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "frame height")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "overlay guides for this shape at --x/--y")
	cmd.Flags().Float64Var(&opts.x, "x", 0, "overlay pointer x position")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "overlay pointer y position")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatDOT: true}

func validateRenderOpts(opts *renderOpts) error {
	if !validFormats[opts.format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'svg', 'png', or 'dot')", opts.format)
	}
	if opts.graphviz && opts.shape != "" {
		return errors.New(errors.ErrCodeInvalidInput,
			"--shape overlays require authored positions; drop --graphviz")
	}
	return nil
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	p := newProgress(logger)

	doc, err := board.ReadDocumentFile(path)
	if err != nil {
		return err
	}

	svgOpts := []render.SVGOption{
		render.WithSize(opts.width, opts.height),
		render.WithSizeDefaults(cfg.SizeDefaults()),
	}
	if opts.shape != "" {
		sess, err := board.NewDragSession(ctx, doc, opts.shape, board.DragOptions{
			Threshold: cfg.Snap.Threshold,
			Tolerance: cfg.Snap.Tolerance,
			Defaults:  cfg.SizeDefaults(),
		})
		if err != nil {
			return err
		}
		frame := sess.Move(ctx, opts.x, opts.y, false)
		svgOpts = append(svgOpts, render.WithGuides(frame.Guides), render.WithGaps(frame.Gaps))
	}

	var data []byte
	switch {
	case opts.format == formatDOT:
		data = []byte(render.ToDOT(doc))
	case opts.graphviz && opts.format == formatSVG:
		data, err = render.RenderDOTSVG(ctx, render.ToDOT(doc))
	case opts.graphviz && opts.format == formatPNG:
		data, err = render.RenderDOTPNG(ctx, render.ToDOT(doc))
	case opts.format == formatSVG:
		data = render.RenderSVG(doc, svgOpts...)
	default:
		data, err = render.RenderPNG(doc, svgOpts...)
	}
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = replaceExt(path, opts.format)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", out)
	}

	w := cmd.OutOrStdout()
	printSuccess(w, "Rendered %d shapes as %s", len(doc.Shapes), opts.format)
	printFile(w, out)
	p.done("Render complete")
	return nil
}

// replaceExt swaps path's extension for the given one.
func replaceExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		path = path[:i]
	}
	return path + "." + ext
}
