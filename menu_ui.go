package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/fillthescreen/engine"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor     = color.NRGBA{A: 200}
	buttonColor    = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	buttonHover    = color.NRGBA{R: 0x44, G: 0x55, B: 0x77, A: 0xff}
	buttonText     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	menuPanelSizeW = 300
	menuPanelSizeH = 220
)

// newPanelUI builds a centered vertical panel with a title and one button per
// entry.
func newPanelUI(title string, buttons []menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(panelColor)
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonColor),
		Hover:   imageui.NewNineSliceColor(buttonHover),
		Pressed: imageui.NewNineSliceColor(buttonHover),
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: buttonText}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(menuPanelSizeW, menuPanelSizeH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, buttonText),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

type menuButton struct {
	label   string
	onClick func()
}

// NewMenuUI builds the main menu with Start and Exit buttons.
func NewMenuUI(g *Game) *ebitenui.UI {
	return newPanelUI("FILL THE SCREEN", []menuButton{
		{"Start", func() { g.engine.Dispatch(engine.ActionStart) }},
		{"Exit", func() { g.engine.Dispatch(engine.ActionExit) }},
	})
}
