package gui

// Color is an sRGB color with float components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// InactiveColor is the fixed gray used for disabled widgets.
var InactiveColor = Color{R: 0.6, G: 0.6, B: 0.6, A: 1}

// Turn-count slider, in turns over the length of a helix. The step
// matches the precision shown next to the slider.
const (
	TurnSliderMin     float32 = -5.0
	TurnSliderMax     float32 = 5.0
	TurnSliderStep    float32 = 0.05
	TurnSliderSpacing float32 = 3
)
