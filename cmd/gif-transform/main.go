package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/gif-transform/internal/diag"
	"github.com/ironsheep/gif-transform/internal/gif"
	"github.com/ironsheep/gif-transform/internal/render"
	"github.com/ironsheep/gif-transform/internal/xform"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// changeList collects repeated --change-color OLD=NEW options in order.
type changeList []xform.ColorChange

func (c *changeList) String() string { return fmt.Sprintf("%d changes", len(*c)) }

func (c *changeList) Set(value string) error {
	old, new, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("want OLD=NEW, got %q", value)
	}
	oldColor, err := parseColor(old)
	if err != nil {
		return err
	}
	newColor, err := parseColor(new)
	if err != nil {
		return err
	}
	*c = append(*c, xform.ColorChange{Old: oldColor, New: newColor})
	return nil
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("gif-transform %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		output       = flag.String("o", "", "output GIF path (default stdout)")
		cropSpec     = flag.String("crop", "", "crop to rectangle X,Y+WxH (screen coordinates)")
		preserveCrop = flag.Bool("crop-preserve-empty", false, "keep fully cropped-out frames as 1x1 transparent frames")
		flipH        = flag.Bool("flip-h", false, "flip frames horizontally")
		flipV        = flag.Bool("flip-v", false, "flip frames vertically")
		rotation     = flag.Int("rotate", 0, "rotate by 90 or 270 degrees")
		resizeWidth  = flag.Int("resize-width", 0, "target screen width (0 = derive from height)")
		resizeHeight = flag.Int("resize-height", 0, "target screen height (0 = derive from width)")
		resizeFit    = flag.Bool("resize-fit", false, "fit inside the target box, never upscale")
		pipeCommand  = flag.String("use-colormap", "", "pipe colormaps through an external filter command")
		grayscale    = flag.Bool("grayscale", false, "desaturate all colormaps")
		posterize    = flag.Int("posterize", 0, "posterize colormaps to N bits per channel (1-7)")
		preview      = flag.String("preview", "", "write a PNG preview of the first frame")
	)
	var changes changeList
	flag.Var(&changes, "change-color", "replace a color: OLD=NEW, each #RRGGBB or a palette index (repeatable)")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gif-transform [options] input.gif")
		flag.PrintDefaults()
		os.Exit(2)
	}

	rep := diag.NewStderr("gif-transform")

	in, err := os.Open(flag.Arg(0))
	if err != nil {
		rep.Fatal("%v", err)
	}
	st, err := gif.Decode(in)
	in.Close()
	if err != nil {
		rep.Fatal("%s: %v", flag.Arg(0), err)
	}

	if *cropSpec != "" {
		crop, err := parseCrop(*cropSpec)
		if err != nil {
			rep.Fatal("bad -crop: %v", err)
		}
		kept := st.Frames[:0]
		for _, f := range st.Frames {
			if xform.CropFrame(f, crop, *preserveCrop) {
				kept = append(kept, f)
			}
		}
		st.Frames = kept
		st.RecomputeScreen(true)
	}

	if *flipH {
		for _, f := range st.Frames {
			xform.Flip(f, st.ScreenWidth, st.ScreenHeight, false)
		}
	}
	if *flipV {
		for _, f := range st.Frames {
			xform.Flip(f, st.ScreenWidth, st.ScreenHeight, true)
		}
	}

	if *rotation != 0 {
		if *rotation != 90 && *rotation != 270 {
			rep.Fatal("-rotate must be 90 or 270")
		}
		for _, f := range st.Frames {
			xform.Rotate(f, st.ScreenWidth, st.ScreenHeight, *rotation/90)
		}
		st.ScreenWidth, st.ScreenHeight = st.ScreenHeight, st.ScreenWidth
	}

	if *resizeWidth > 0 || *resizeHeight > 0 {
		if err := xform.ResizeStream(st, *resizeWidth, *resizeHeight, *resizeFit, rep); err != nil {
			rep.Fatal("resize: %v", err)
		}
	}

	var pipeline xform.Pipeline
	for _, ch := range changes {
		xform.AppendColorChange(&pipeline, ch.Old, ch.New)
	}
	if *grayscale {
		pipeline.Append(xform.Gray{})
	}
	if *posterize != 0 {
		pipeline.Append(&xform.Posterize{Bits: *posterize})
	}
	if *pipeCommand != "" {
		pipeline.Append(&xform.Pipe{Command: *pipeCommand})
	}
	pipeline.Apply(st, rep)

	if *preview != "" {
		img, err := render.Preview(st, 512, 512)
		if err != nil {
			rep.Fatal("preview: %v", err)
		}
		f, err := os.Create(*preview)
		if err != nil {
			rep.Fatal("preview: %v", err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			rep.Fatal("preview: %v", err)
		}
		if err := f.Close(); err != nil {
			rep.Fatal("preview: %v", err)
		}
	}

	out := os.Stdout
	if *output != "" {
		out, err = os.Create(*output)
		if err != nil {
			rep.Fatal("%v", err)
		}
	}
	if err := gif.Encode(out, st); err != nil {
		rep.Fatal("%v", err)
	}
	if *output != "" {
		if err := out.Close(); err != nil {
			rep.Fatal("%v", err)
		}
	}
}

// parseColor accepts "#RRGGBB", "RRGGBB", or a decimal palette index.
func parseColor(s string) (gif.Color, error) {
	if idx, err := strconv.Atoi(s); err == nil && idx >= 0 {
		return gif.PinnedColor(uint32(idx)), nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return gif.Color{}, fmt.Errorf("bad color %q: want #RRGGBB or a palette index", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return gif.Color{}, fmt.Errorf("bad color %q: %v", s, err)
	}
	return gif.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// parseCrop accepts "X,Y+WxH".
func parseCrop(s string) (xform.Crop, error) {
	var x, y, w, h int
	if _, err := fmt.Sscanf(s, "%d,%d+%dx%d", &x, &y, &w, &h); err != nil {
		return xform.Crop{}, fmt.Errorf("want X,Y+WxH, got %q", s)
	}
	if w <= 0 || h <= 0 {
		return xform.Crop{}, fmt.Errorf("crop size %dx%d is empty", w, h)
	}
	return xform.NewCrop(x, y, w, h), nil
}
