package main

import (
	"fmt"
	"image/color"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/camkit/pancam/ecs"
	"github.com/camkit/pancam/ecs/component"
)

// Crate is a demo-local component: the drawable half of a physics box.
type Crate struct {
	W, H float64
}

var crateComponent = component.NewComponent[Crate]()

const (
	groundY         = 200.0
	groundHalfWidth = 2000.0
	crateMass       = 1.0
	physicsStep     = 1.0 / 60.0
)

// sceneScript lays out the crate stack. Each entry is [x, y, w, h] in world
// units (y down, ground at groundY).
const sceneScript = `
crates := []
rows := 7
size := 40.0
gap := 4.0
for row := 0; row < rows; row++ {
	count := rows - row
	for i := 0; i < count; i++ {
		x := (float(i) - float(count-1) / 2.0) * (size + gap)
		y := 196.0 - float(row) * (size + gap) - size / 2.0
		crates = append(crates, [x, y, size, size])
	}
}
`

// Scene owns the chipmunk space and the crate entities. It is scheduled as a
// system after camera control: it steps physics and syncs body positions
// into Transforms.
type Scene struct {
	world  *ecs.World
	space  *cp.Space
	bodies map[ecs.Entity]*cp.Body

	pixel *ebiten.Image
}

func NewScene(w *ecs.World) (*Scene, error) {
	crates, err := runSceneScript()
	if err != nil {
		return nil, err
	}

	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: 600})

	ground := cp.NewSegment(space.StaticBody,
		cp.Vector{X: -groundHalfWidth, Y: groundY},
		cp.Vector{X: groundHalfWidth, Y: groundY}, 2)
	ground.SetFriction(0.9)
	space.AddShape(ground)

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	s := &Scene{
		world:  w,
		space:  space,
		bodies: make(map[ecs.Entity]*cp.Body, len(crates)),
		pixel:  pixel,
	}

	for _, c := range crates {
		if err := s.spawnCrate(w, c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

type crateSpec struct {
	x, y, w, h float64
}

func runSceneScript() ([]crateSpec, error) {
	script := tengo.NewScript([]byte(sceneScript))
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("demo: scene script: %w", err)
	}

	raw := compiled.Get("crates").Array()
	crates := make([]crateSpec, 0, len(raw))
	for i, entry := range raw {
		vals, ok := entry.([]interface{})
		if !ok || len(vals) != 4 {
			return nil, fmt.Errorf("demo: scene script: crate %d: want [x, y, w, h]", i)
		}
		var nums [4]float64
		for j, v := range vals {
			switch n := v.(type) {
			case float64:
				nums[j] = n
			case int64:
				nums[j] = float64(n)
			default:
				return nil, fmt.Errorf("demo: scene script: crate %d: non-numeric value", i)
			}
		}
		crates = append(crates, crateSpec{x: nums[0], y: nums[1], w: nums[2], h: nums[3]})
	}
	return crates, nil
}

func (s *Scene) spawnCrate(w *ecs.World, spec crateSpec) error {
	body := cp.NewBody(crateMass, cp.MomentForBox(crateMass, spec.w, spec.h))
	body.SetPosition(cp.Vector{X: spec.x, Y: spec.y})
	s.space.AddBody(body)

	shape := cp.NewBox(body, spec.w, spec.h, 0)
	shape.SetFriction(0.7)
	shape.SetElasticity(0.1)
	s.space.AddShape(shape)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.x, Y: spec.y}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, crateComponent.Kind(), &Crate{W: spec.w, H: spec.h}); err != nil {
		return err
	}
	s.bodies[e] = body
	return nil
}

// Update steps the simulation and mirrors body positions into Transforms.
func (s *Scene) Update(w *ecs.World) {
	s.space.Step(physicsStep)
	for e, body := range s.bodies {
		if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			pos := body.Position()
			tr.X, tr.Y = pos.X, pos.Y
		}
	}
}

// Draw renders ground and crates through the camera: world-to-screen is
// (world - translation) / scale in projection units, mapped to pixels.
func (s *Scene) Draw(screen *ebiten.Image, camTr *component.Transform, proj *component.Projection) {
	screen.Fill(color.NRGBA{R: 0x18, G: 0x1c, B: 0x24, A: 0xff})

	ew, eh := proj.Extent()
	if ew == 0 || eh == 0 || proj.Scale == 0 {
		return
	}
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	kx := sw / (ew * proj.Scale)
	ky := sh / (eh * proj.Scale)

	toScreen := func(wx, wy float64) (float64, float64) {
		return (wx-camTr.X)*kx + sw/2, (wy-camTr.Y)*ky + sh/2
	}

	// ground strip
	gx, gy := toScreen(-groundHalfWidth, groundY)
	s.drawRect(screen, gx, gy, 2*groundHalfWidth*kx, 4, color.NRGBA{R: 0x4a, G: 0x6b, B: 0x3a, A: 0xff})

	ecs.ForEach2(s.world, crateComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, c *Crate, tr *component.Transform) {
			x, y := toScreen(tr.X-c.W/2, tr.Y-c.H/2)
			s.drawRect(screen, x, y, c.W*kx, c.H*ky, color.NRGBA{R: 0xc8, G: 0x8a, B: 0x3c, A: 0xff})
		})
}

func (s *Scene) drawRect(screen *ebiten.Image, x, y, w, h float64, clr color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(s.pixel, op)
}
