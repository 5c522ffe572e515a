package scenes

import (
	"image/color"

	"github.com/cbodonnell/flagmaster/client/fonts"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/font"
)

var (
	textColor     = color.NRGBA{R: 254, G: 255, B: 255, A: 255}
	mutedColor    = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	successColor  = color.NRGBA{R: 90, G: 210, B: 130, A: 255}
	errorColor    = color.NRGBA{R: 255, G: 110, B: 110, A: 255}
	lockedColor   = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	selectedColor = color.NRGBA{R: 120, G: 90, B: 200, A: 255}
)

func buttonImage(idle color.NRGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(idle),
		Hover:    image.NewNineSliceColor(color.NRGBA{R: idle.R - idle.R/5, G: idle.G - idle.G/5, B: idle.B - idle.B/5, A: 255}),
		Pressed:  image.NewNineSliceColor(color.NRGBA{R: idle.R / 2, G: idle.G / 2, B: idle.B / 2, A: 255}),
		Disabled: image.NewNineSliceColor(color.NRGBA{R: 80, G: 80, B: 90, A: 255}),
	}
}

var defaultButtonColor = color.NRGBA{R: 170, G: 170, B: 180, A: 255}

func newButton(label string, face font.Face, idle color.NRGBA, layoutData interface{}, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(layoutData),
		),
		widget.ButtonOpts.Image(buttonImage(idle)),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     textColor,
			Disabled: mutedColor,
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   20,
			Right:  20,
			Top:    5,
			Bottom: 5,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func newText(label string, face font.Face, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, clr),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
}

func newTextInput(placeholder string, face font.Face, layoutData interface{}) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(layoutData),
		),
		widget.TextInputOpts.MobileInputMode("text"),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
			Disabled: image.NewNineSliceColor(color.NRGBA{R: 60, G: 60, B: 60, A: 255}),
		}),
		widget.TextInputOpts.Face(face),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          textColor,
			Disabled:      mutedColor,
			Caret:         textColor,
			DisabledCaret: mutedColor,
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
		widget.TextInputOpts.CaretOpts(
			widget.CaretOpts.Size(face, 2),
		),
		widget.TextInputOpts.Placeholder(placeholder),
	)
}

func verticalContainer(spacing int, padding widget.Insets, opts ...widget.ContainerOpt) *widget.Container {
	opts = append([]widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(spacing),
			widget.RowLayoutOpts.Padding(padding),
		)),
	}, opts...)
	return widget.NewContainer(opts...)
}

func horizontalContainer(spacing int, layoutData interface{}) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(layoutData),
		),
	)
}

func normalFace() font.Face {
	return fonts.TTFNormalFont
}

func fontsLarge() font.Face {
	return fonts.TTFLargeFont
}

func fontsSmall() font.Face {
	return fonts.TTFSmallFont
}
