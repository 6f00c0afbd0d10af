// Package inspector is a small ebitenui debug panel for live-editing
// registered settings. Integrations register sections of fields; the panel
// re-enumerates them every frame so values and entity lists stay current.
// The panel also reports whether it currently wants pointer or keyboard
// input, which hosts feed into the per-frame input snapshot.
package inspector

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Field is one inspectable value. Value renders the current state; Toggle
// and Step are optional editors (nil means read-only for that control).
type Field struct {
	Name   string
	Value  func() string
	Toggle func()
	Step   func(dir int)
}

type section struct {
	title  string
	fields func() []Field
}

// Inspector owns the panel state. Construct with New, Register sections,
// then call Update and Draw from the host's frame loop.
type Inspector struct {
	sections []section
	visible  bool

	ui    *ebitenui.UI
	panel *widget.Container
	face  ebtext.Face

	clipboardReady bool
}

func New() *Inspector {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	ins := &Inspector{face: goFace}
	ins.clipboardReady = initClipboard()
	return ins
}

// Register adds a section. fields is invoked once per visible frame.
func (i *Inspector) Register(title string, fields func() []Field) {
	if i == nil || fields == nil {
		return
	}
	i.sections = append(i.sections, section{title: title, fields: fields})
}

func (i *Inspector) Visible() bool {
	return i != nil && i.visible
}

func (i *Inspector) SetVisible(v bool) {
	if i == nil {
		return
	}
	i.visible = v
}

func (i *Inspector) Toggle() {
	if i == nil {
		return
	}
	i.visible = !i.visible
}

// WantsPointer reports whether the cursor is over the visible panel.
func (i *Inspector) WantsPointer() bool {
	if i == nil || !i.visible || i.panel == nil {
		return false
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(i.panel.GetWidget().Rect)
}

// WantsKeyboard reports whether the panel is consuming key input. The panel
// has no text entry, so this is only true while it is visible and hovered.
func (i *Inspector) WantsKeyboard() bool {
	return i.WantsPointer()
}

// Update rebuilds the widget tree from the registered sections and runs the
// UI for one frame. Rebuilding per frame keeps values live without a
// change-tracking layer.
func (i *Inspector) Update() {
	if i == nil || !i.visible {
		return
	}
	i.ui = i.buildUI()
	i.ui.Update()
}

func (i *Inspector) Draw(screen *ebiten.Image) {
	if i == nil || !i.visible || i.ui == nil {
		return
	}
	i.ui.Draw(screen)
}

func (i *Inspector) buildUI() *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dim := color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb8, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for _, sec := range i.sections {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(sec.title, &i.face, white),
		))
		for _, f := range sec.fields() {
			panel.AddChild(i.buildFieldRow(f, btnImg, btnTextColor, dim))
		}
	}

	if i.clipboardReady {
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text("copy settings", &i.face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				i.copyToClipboard()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	i.panel = panel
	return &ebitenui.UI{Container: root}
}

func (i *Inspector) buildFieldRow(f Field, btnImg *imageui.NineSlice, btnTextColor *widget.ButtonTextColor, textColor color.NRGBA) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	label := f.Name
	if f.Value != nil {
		label += ": " + f.Value()
	}
	row.AddChild(widget.NewText(
		widget.TextOpts.Text(label, &i.face, textColor),
	))

	if f.Toggle != nil {
		toggle := f.Toggle
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text("toggle", &i.face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				toggle()
			}),
		))
	}
	if f.Step != nil {
		step := f.Step
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text("-", &i.face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				step(-1)
			}),
		))
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text("+", &i.face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				step(1)
			}),
		))
	}
	return row
}
