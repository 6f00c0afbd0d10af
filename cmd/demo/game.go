package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/camkit/pancam"
	"github.com/camkit/pancam/ecs"
	"github.com/camkit/pancam/ecs/component"
	"github.com/camkit/pancam/input"
	"github.com/camkit/pancam/inspector"
	"github.com/camkit/pancam/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game wires the camera-control plugin into a small physics scene: drag to
// pan, wheel to zoom, F1 for the settings inspector.
type Game struct {
	world  *ecs.World
	sched  *ecs.Scheduler
	ins    *inspector.Inspector
	scene  *Scene
	camera ecs.Entity

	settingsPath string
	watcher      *prefabs.Watcher
}

func NewGame(settingsPath string, withInspector bool) (*Game, error) {
	world := ecs.NewWorld()

	cam := component.NewPanCam()
	if settingsPath != "" {
		spec, err := prefabs.LoadSpec[prefabs.CameraSpec](settingsPath)
		if err != nil {
			return nil, err
		}
		if err := spec.Apply(&cam); err != nil {
			return nil, err
		}
	}

	camera, err := pancam.Spawn(world, cam, component.NewProjection(baseWidth, baseHeight))
	if err != nil {
		return nil, err
	}

	var ins *inspector.Inspector
	if withInspector {
		ins = inspector.New()
	}

	scene, err := NewScene(world)
	if err != nil {
		return nil, err
	}

	sched := ecs.NewScheduler()
	pancam.Plugin{Inspector: ins}.Build(sched, world)
	// the scene reads camera state for culling-free drawing only; stepping
	// physics after camera control keeps crate transforms one frame fresh
	sched.AddAfter(pancam.SystemLabel, "demo-physics", scene)

	g := &Game{
		world:        world,
		sched:        sched,
		ins:          ins,
		scene:        scene,
		camera:       camera,
		settingsPath: settingsPath,
	}

	if settingsPath != "" {
		watcher, err := prefabs.NewWatcher(filepath.Dir(settingsPath))
		if err != nil {
			log.Printf("demo: settings watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.ins != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.ins.Toggle()
	}
	g.pollSettings()

	snap := input.Collect(baseWidth, baseHeight, g.ins)
	g.world.SetInput(&snap)
	g.sched.Update(g.world)

	if g.ins != nil {
		g.ins.Update()
	}
	return nil
}

// pollSettings drains watcher events and re-applies the settings file on
// top of the camera's current state.
func (g *Game) pollSettings() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(name) == filepath.Clean(g.settingsPath) {
				reload = true
			}
			continue
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("demo: settings watch: %v", err)
			}
			continue
		default:
		}
		break
	}
	if !reload {
		return
	}

	spec, err := prefabs.LoadSpec[prefabs.CameraSpec](g.settingsPath)
	if err != nil {
		log.Printf("demo: reload settings: %v", err)
		return
	}
	cam, ok := ecs.Get(g.world, g.camera, component.PanCamComponent.Kind())
	if !ok {
		return
	}
	if err := spec.Apply(cam); err != nil {
		log.Printf("demo: reload settings: %v", err)
		return
	}
	log.Printf("demo: reloaded %s", g.settingsPath)
}

func (g *Game) Draw(screen *ebiten.Image) {
	tr, okT := ecs.Get(g.world, g.camera, component.TransformComponent.Kind())
	proj, okP := ecs.Get(g.world, g.camera, component.ProjectionComponent.Kind())
	if okT && okP {
		g.scene.Draw(screen, tr, proj)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.2f    drag: pan    wheel: zoom    F1: inspector", ebiten.ActualFPS()))

	if g.ins != nil {
		g.ins.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
