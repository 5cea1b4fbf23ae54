package components

import (
	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// UIText is one line of HUD text anchored to a screen rectangle.
// It draws nothing while its owner is inactive or the text is empty.
type UIText struct {
	engine.BaseComponent

	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
	Rect      rl.Rectangle // screen space
	Shadow    bool         // 2px dark offset copy under the text
}

func NewUIText() *UIText {
	return &UIText{
		FontSize: 20,
		Color:    rl.White,
		Shadow:   true,
	}
}

// Origin places a line of the given pixel width inside Rect, centred
// vertically.
func (t *UIText) Origin(textWidth float32) (x, y float32) {
	switch t.Alignment {
	case TextAlignCenter:
		x = t.Rect.X + (t.Rect.Width-textWidth)/2
	case TextAlignRight:
		x = t.Rect.X + t.Rect.Width - textWidth
	default:
		x = t.Rect.X
	}
	return x, t.Rect.Y + (t.Rect.Height-float32(t.FontSize))/2
}

func (t *UIText) Draw() {
	if t.Text == "" {
		return
	}
	if g := t.GetGameObject(); g != nil && !g.ActiveInHierarchy() {
		return
	}
	x, y := t.Origin(float32(rl.MeasureText(t.Text, t.FontSize)))
	if t.Shadow {
		rl.DrawText(t.Text, int32(x)+2, int32(y)+2, t.FontSize, rl.Fade(rl.Black, 0.6))
	}
	rl.DrawText(t.Text, int32(x), int32(y), t.FontSize, t.Color)
}
