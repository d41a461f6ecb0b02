// Command scenerender renders a scene document to PNG files, without window.
//
// With -anim, the given animation is played and every frame is written
// next to the output file (scene_000.png, scene_001.png, ...).
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/shapecraft/anim"
	"github.com/benoitkugler/shapecraft/config"
	"github.com/benoitkugler/shapecraft/persist"
	"github.com/benoitkugler/shapecraft/raster"
	"github.com/benoitkugler/shapecraft/render"
	"github.com/benoitkugler/shapecraft/scene"
	"github.com/benoitkugler/shapecraft/utils"
)

func main() {
	in := flag.String("in", "", "scene document (JSON)")
	out := flag.String("out", "scene.png", "output PNG file")
	width := flag.Int("width", config.CanvasWidth, "canvas width, in pixels")
	height := flag.Int("height", config.CanvasHeight, "canvas height, in pixels")
	bg := flag.String("bg", config.BackgroundColor, "background color")
	label := flag.String("charset", "", "encoding of the document, if not UTF-8")
	strict := flag.Bool("strict", false, "fail on unknown object types")
	mode := flag.String("anim", "", "animation to play (rotate, move, expand, contract, blink, color_cycle)")
	maxFrames := flag.Int("frames", 120, "maximum number of animation frames")
	thumb := flag.Int("thumb", 0, "if positive, also write a thumbnail fitting in a square of this size")
	flag.Parse()
	log.SetFlags(0)

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	errorMode := persist.WarnErrorMode
	if *strict {
		errorMode = persist.StrictErrorMode
	}
	sc, err := readScene(*in, *label, errorMode)
	if err != nil {
		log.Fatalf("reading %s: %s", *in, err)
	}
	fmt.Fprintln(os.Stderr, utils.DecorateText(fmt.Sprintf("%d objects read from %s", sc.Len(), *in), utils.StatusMessage))

	surface := raster.NewSurface(*width, *height)
	if err := surface.SetBackground(*bg); err != nil {
		log.Fatal(err)
	}
	pl := render.New(surface)
	if err := pl.RenderFull(sc); err != nil {
		// degenerate objects are skipped, the rest is still drawn
		fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	if err := writePNG(*out, surface); err != nil {
		log.Fatal(err)
	}
	if *thumb > 0 {
		if err := writeThumbnail(suffixed(*out, "thumb"), surface, *thumb); err != nil {
			log.Fatal(err)
		}
	}

	if *mode != "" {
		m, err := anim.ParseMode(*mode)
		if err != nil {
			log.Fatal(err)
		}
		n, err := playAnimation(sc, pl, surface, m, *out, *maxFrames)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintln(os.Stderr, utils.DecorateText(fmt.Sprintf("%d frames written", n), utils.StatusMessage))
	}
	fmt.Fprintln(os.Stderr, utils.DecorateText(fmt.Sprintf("Rendered %s", *out), utils.SuccessMessage))
}

func readScene(path, label string, mode persist.ErrorMode) (*scene.Scene, error) {
	if label == "" {
		return persist.ReadFile(path, mode)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return persist.DecodeCharset(f, label, mode)
}

// playAnimation ticks the animation until it ends (or maxFrames is reached),
// writing each published frame.
func playAnimation(sc *scene.Scene, pl *render.Pipeline, surface *raster.Surface, m anim.Mode, out string, maxFrames int) (int, error) {
	engine := anim.NewEngine(sc, pl)
	engine.Start(m)
	written := 0
	for written < maxFrames {
		before := surface.Frames()
		running, err := engine.Tick()
		if err != nil {
			fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		if surface.Frames() != before {
			if err := writePNG(suffixed(out, fmt.Sprintf("%03d", written)), surface); err != nil {
				return written, err
			}
			written++
		}
		if !running {
			break
		}
	}
	engine.Stop()
	return written, nil
}

// suffixed returns path with "_suffix" inserted before its extension.
func suffixed(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + suffix + ext
}

func writePNG(path string, surface *raster.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = surface.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeThumbnail(path string, surface *raster.Surface, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, surface.Thumbnail(size, size)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
