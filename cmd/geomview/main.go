// geomview draws the 2D bodies of a scene file and casts a ray against them.
// Left-drag moves the ray start, the mouse wheel zooms and the sliders steer
// the ray.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"geomkit/internal/geometry"
	"geomkit/internal/log"
	"geomkit/internal/query"
	"geomkit/internal/scene"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

var (
	colorBackground = rl.NewColor(20, 20, 30, 255)
	colorPanel      = rl.NewColor(35, 35, 48, 230)
	colorHover      = rl.White
	colorOverlap    = rl.Red
	colorBounds     = rl.Fade(rl.SkyBlue, 0.35)
)

var panel = rl.Rectangle{X: 10, Y: 10, Width: 260, Height: 170}

type viewer struct {
	world  *query.World
	colors map[string]rl.Color
	pairs  map[string]bool
	logger *zap.Logger

	view     view
	rayStart rl.Vector2
	angle    float32
	length   float32

	showBounds   bool
	showOverlaps bool
	showHover    bool
}

func main() {
	scenePath := flag.String("scene", "", "scene file (.yaml, .yml or .json)")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	scale := flag.Float64("scale", 20, "pixels per world unit")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	dev := flag.Bool("dev", true, "human-readable console logs")
	flag.Parse()
	if *scenePath == "" && flag.NArg() > 0 {
		*scenePath = flag.Arg(0)
	}

	if err := run(*scenePath, int32(*width), int32(*height), float32(*scale), *logLevel, *dev); err != nil {
		fmt.Fprintf(os.Stderr, "geomview: %v\n", err)
		os.Exit(1)
	}
}

func run(scenePath string, width, height int32, scale float32, logLevel string, dev bool) error {
	if scenePath == "" {
		return errors.New("no scene file given (use -scene)")
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger, err := log.New(level, dev)
	if err != nil {
		return err
	}
	defer logger.Sync()

	file, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	world, err := file.Build(logger)
	if err != nil {
		return err
	}

	v := &viewer{
		world:        world,
		colors:       make(map[string]rl.Color, len(file.Bodies2D)),
		pairs:        make(map[string]bool),
		logger:       logger,
		view:         view{origin: rl.Vector2{X: float32(width) / 2, Y: float32(height) / 2}, scale: scale},
		length:       30,
		showOverlaps: true,
		showHover:    true,
	}
	for _, def := range file.Bodies2D {
		v.colors[def.ID] = scene.LookupColor(def.Color)
	}
	for _, p := range world.OverlapPairs2D() {
		v.pairs[p.A] = true
		v.pairs[p.B] = true
	}
	if rays, err := file.QueryRays2D(); err == nil && len(rays) > 0 {
		v.rayStart = rays[0].Start
		v.angle = degreesOf(rays[0].Forward)
		v.length = rays[0].MaxDist
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, "geomview - "+scenePath)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		v.update()
		v.draw()
	}
	return nil
}

func (v *viewer) update() {
	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && !rl.CheckCollisionPointRec(mouse, panel) {
		v.rayStart = v.view.toWorld(mouse)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		factor := float32(1.1)
		if wheel < 0 {
			factor = 1 / factor
		}
		v.view = v.view.zoom(mouse, factor)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		v.rayStart = rl.Vector2{}
		v.angle = 0
	}
}

func (v *viewer) ray() query.Ray2D {
	return query.Ray2D{Start: v.rayStart, Forward: directionFromDegrees(v.angle), MaxDist: v.length}
}

func (v *viewer) draw() {
	ray := v.ray()
	hit, err := v.world.Raycast2D(ray)
	if err != nil {
		v.logger.Warn("raycast rejected", zap.Error(err))
	}
	var hovered map[string]bool
	if v.showHover {
		hovered = make(map[string]bool)
		for _, id := range v.world.BodiesContaining2D(v.view.toWorld(rl.GetMousePosition())) {
			hovered[id] = true
		}
	}

	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	for _, body := range v.world.Bodies2D() {
		col := v.colors[body.ID]
		switch {
		case hovered[body.ID]:
			col = colorHover
		case v.showOverlaps && v.pairs[body.ID]:
			col = colorOverlap
		}
		drawShape(v.view, body.Shape, col)
		if v.showBounds {
			if b, ok := body.Shape.(interface{ Bounds() geometry.AABB2 }); ok {
				drawBounds(v.view, b.Bounds(), colorBounds)
			}
		}
	}
	drawRay(v.view, ray, hit)

	v.drawPanel(hit)
	rl.EndDrawing()
}

func (v *viewer) drawPanel(hit query.Hit2D) {
	rl.DrawRectangleRec(panel, colorPanel)
	x, y := panel.X+10, panel.Y+10

	v.angle = gui.Slider(rl.Rectangle{X: x + 50, Y: y, Width: 140, Height: 16}, "Angle", fmt.Sprintf("%.0f", v.angle), v.angle, 0, 360)
	y += 24
	v.length = gui.Slider(rl.Rectangle{X: x + 50, Y: y, Width: 140, Height: 16}, "Length", fmt.Sprintf("%.1f", v.length), v.length, 1, 200)
	y += 28
	v.showBounds = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 14, Height: 14}, "Bounds", v.showBounds)
	v.showOverlaps = gui.CheckBox(rl.Rectangle{X: x + 80, Y: y, Width: 14, Height: 14}, "Overlaps", v.showOverlaps)
	v.showHover = gui.CheckBox(rl.Rectangle{X: x + 170, Y: y, Width: 14, Height: 14}, "Hover", v.showHover)
	y += 26

	status := "miss"
	if hit.DidImpact {
		status = fmt.Sprintf("%s at %.2f", hit.BodyID, hit.ImpactDist)
	}
	rl.DrawText(status, int32(x), int32(y), 16, rl.RayWhite)
	y += 22
	start := v.rayStart
	rl.DrawText(fmt.Sprintf("start (%.2f, %.2f)", start.X, start.Y), int32(x), int32(y), 14, rl.LightGray)
	y += 20
	rl.DrawText("drag: move start  wheel: zoom  R: reset", int32(x), int32(y), 12, rl.Gray)
}
