// Package gui holds the presentation-layer values the editor shell
// consumes: discrete UI scales, widget constants and the scaffold
// sequence input state. Widget drawing itself lives with the imgui app;
// the core only reads the resolved numbers.
package gui

import "fmt"

// UISize is one of the three discrete UI scales.
type UISize int

const (
	SizeSmall UISize = iota
	SizeMedium
	SizeLarge
)

// Sizes lists all scales in display order.
var Sizes = []UISize{SizeSmall, SizeMedium, SizeLarge}

// Text returns the font size in pixels.
func (s UISize) Text() float32 {
	switch s {
	case SizeSmall:
		return 12
	case SizeLarge:
		return 20
	default:
		return 16
	}
}

// Icon returns the icon size in pixels.
func (s UISize) Icon() float32 {
	switch s {
	case SizeSmall:
		return 14
	case SizeLarge:
		return 30
	default:
		return 20
	}
}

// Checkbox returns the checkbox size in pixels.
func (s UISize) Checkbox() float32 {
	switch s {
	case SizeSmall:
		return 15
	case SizeLarge:
		return 19
	default:
		return 17
	}
}

// Button returns the button size in pixels.
func (s UISize) Button() float32 {
	switch s {
	case SizeSmall:
		return 25
	case SizeLarge:
		return 45
	default:
		return 35
	}
}

// TopBar returns the top bar height in pixels, equal to the button size.
func (s UISize) TopBar() float32 {
	return s.Button()
}

// String implements fmt.Stringer for the size selector.
func (s UISize) String() string {
	switch s {
	case SizeSmall:
		return "Small"
	case SizeLarge:
		return "Large"
	default:
		return "Medium"
	}
}

// ParseUISize maps a config string to a UISize.
func ParseUISize(name string) (UISize, error) {
	switch name {
	case "small", "Small":
		return SizeSmall, nil
	case "medium", "Medium", "":
		return SizeMedium, nil
	case "large", "Large":
		return SizeLarge, nil
	}
	return SizeMedium, fmt.Errorf("unknown ui size %q", name)
}
