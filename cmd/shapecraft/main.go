// Command shapecraft is an interactive editor for ShapeCraft scenes.
//
// Objects are added under the cursor with the keys 1 to 9, 0 and W,
// and dragged with the left mouse button. R, M, E, C, B and H start
// an animation, S stops it. U (or Backspace) removes the last object,
// Ctrl+S saves the scene and Ctrl+O reloads it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/benoitkugler/shapecraft/anim"
	"github.com/benoitkugler/shapecraft/config"
	"github.com/benoitkugler/shapecraft/drag"
	"github.com/benoitkugler/shapecraft/persist"
	"github.com/benoitkugler/shapecraft/raster"
	"github.com/benoitkugler/shapecraft/scene"
	"github.com/benoitkugler/shapecraft/studio"
	"github.com/benoitkugler/shapecraft/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxDelta bounds the time given to the animations after a stall
// (window moved, debugger...).
const maxDelta = 250 * time.Millisecond

var animationKeys = map[ebiten.Key]anim.Mode{
	ebiten.KeyR: anim.Rotate,
	ebiten.KeyM: anim.Move,
	ebiten.KeyE: anim.Expand,
	ebiten.KeyC: anim.Contract,
	ebiten.KeyB: anim.Blink,
	ebiten.KeyH: anim.ColorCycle,
	ebiten.KeyS: anim.None,
}

// presets returns the object added by the key, placed at (x, y).
var presets = map[ebiten.Key]func(p scene.Pose) scene.Object{
	ebiten.Key1: func(p scene.Pose) scene.Object {
		return &scene.Square{Pose: p, Style: shapeStyle("gold"), Size: 60}
	},
	ebiten.Key2: func(p scene.Pose) scene.Object {
		return &scene.Rectangle{Pose: p, Style: shapeStyle("skyblue"), Width: 100, Height: 50}
	},
	ebiten.Key3: func(p scene.Pose) scene.Object {
		return &scene.Circle{Pose: p, Style: shapeStyle("salmon"), Size: 40}
	},
	ebiten.Key4: func(p scene.Pose) scene.Object {
		return &scene.Triangle{Pose: p, Style: shapeStyle("lightgreen"), Size: 70}
	},
	ebiten.Key5: func(p scene.Pose) scene.Object {
		return &scene.Star{Pose: p, Style: shapeStyle("yellow"), Size: 80}
	},
	ebiten.Key6: func(p scene.Pose) scene.Object {
		return &scene.Polygon{Pose: p, Style: shapeStyle("plum"), Size: 40, Sides: 6}
	},
	ebiten.Key7: func(p scene.Pose) scene.Object {
		return &scene.Spiral{Pose: p, Color: "blue", Repeat: 60, TurnAngle: 91, StartLength: 2, Grow: 2}
	},
	ebiten.Key8: func(p scene.Pose) scene.Object {
		return &scene.Flower{Pose: p, Color: "deeppink", Petals: 8, Radius: 50}
	},
	ebiten.Key9: func(p scene.Pose) scene.Object {
		return &scene.Mandala{Pose: p, Color: "purple", Layers: 4, Step: 20, Circles: 12}
	},
	ebiten.Key0: func(p scene.Pose) scene.Object {
		return &scene.Grid{Pose: p, Color: "gray", Rows: 4, Cols: 6, CellSize: 20}
	},
	ebiten.KeyW: func(p scene.Pose) scene.Object {
		return &scene.RandomWalk{Pose: p, Color: "green", Steps: 200, StepLen: 8}
	},
}

func shapeStyle(fill string) scene.Style {
	return scene.Style{FillColor: fill, PenColor: config.DefaultPenColor, PenThickness: config.DefaultPenThickness}
}

type AppGame struct {
	studio  *studio.Studio
	surface *raster.Surface
	file    string

	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	delta := min(now.Sub(a.lastUpdateTime), maxDelta)
	a.lastUpdateTime = now

	a.handleMouse()
	a.handleKeys()

	if err := a.studio.Update(delta); err != nil {
		report(err)
	}
	return nil
}

func (a *AppGame) handleMouse() {
	cx, cy := ebiten.CursorPosition()
	sx, sy := float64(cx), float64(cy)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		a.studio.PointerDown(sx, sy)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		a.studio.PointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if err := a.studio.PointerMove(sx, sy); err != nil {
			report(err)
		}
	}
}

func (a *AppGame) handleKeys() {
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			a.save()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyO) {
			a.load()
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyU) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if err := a.studio.Undo(); err != nil {
			report(err)
		}
	}
	for key, mode := range animationKeys {
		if inpututil.IsKeyJustPressed(key) {
			a.studio.StartAnimation(mode)
		}
	}
	for key, preset := range presets {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		cx, cy := ebiten.CursorPosition()
		x, y := drag.ScreenToModel(config.CanvasWidth, config.CanvasHeight, float64(cx), float64(cy))
		if err := a.studio.Add(preset(scene.Pose{X: x, Y: y})); err != nil {
			report(err)
		}
	}
}

func (a *AppGame) save() {
	f, err := os.Create(a.file)
	if err != nil {
		report(err)
		return
	}
	defer f.Close()
	if err := a.studio.Save(f); err != nil {
		report(err)
		return
	}
	log.Println(utils.DecorateText(fmt.Sprintf("Scene saved to %s", a.file), utils.SuccessMessage))
}

func (a *AppGame) load() {
	f, err := os.Open(a.file)
	if err != nil {
		report(err)
		return
	}
	defer f.Close()
	if err := a.studio.Load(f); err != nil {
		report(err)
		return
	}
	log.Println(utils.DecorateText(fmt.Sprintf("Loaded %d objects from %s", a.studio.Scene().Len(), a.file), utils.StatusMessage))
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.WritePixels(a.surface.Image().Pix)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.CanvasWidth, config.CanvasHeight
}

func report(err error) {
	log.Println(utils.DecorateText(err.Error(), utils.ErrorMessage))
}

func main() {
	file := flag.String("file", "shapecraft.json", "scene document to load at startup and to save to")
	background := flag.String("bg", config.BackgroundColor, "background color")
	strict := flag.Bool("strict", false, "refuse documents with unknown object types")
	flag.Parse()
	log.SetFlags(0)

	surface := raster.NewSurface(config.CanvasWidth, config.CanvasHeight)
	app := &AppGame{
		studio:         studio.New(surface),
		surface:        surface,
		file:           *file,
		lastUpdateTime: time.Now(),
	}
	if *strict {
		app.studio.ErrorMode = persist.StrictErrorMode
	}
	if err := app.studio.SetBackground(*background); err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stat(*file); err == nil {
		app.load()
	}
	if err := app.studio.Redraw(); err != nil {
		report(err)
	}

	ebiten.SetWindowSize(config.CanvasWidth, config.CanvasHeight)
	ebiten.SetWindowTitle("ShapeCraft")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
