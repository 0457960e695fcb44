// Package input polls SDL2 events and turns raw mouse state into the
// drag deltas the design controller consumes. Drag deltas are
// cumulative from the drag-start position, never frame increments, so
// dropped frames do not change where a drag ends up.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseWheel
	// EventDragBegin fires on mouse-down with the drag button; the
	// controller should snapshot its pose on it.
	EventDragBegin
	// EventDragMove carries DragDX/DragDY, the total offset in pixels
	// since EventDragBegin.
	EventDragMove
	EventDragEnd
)

// DragButton is the mouse button that moves the design.
const DragButton = sdl.BUTTON_RIGHT

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	WheelY float32
	// Cumulative drag offset in window pixels since drag start.
	DragDX float32
	DragDY float32
}

// Input handles event polling and drag tracking.
type Input struct {
	events []Event

	dragging               bool
	dragStartX, dragStartY int32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to editor events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			t := EventKeyDown
			if e.Type == sdl.KEYUP {
				t = EventKeyUp
			}
			i.events = append(i.events, Event{Type: t, Key: e.Keysym.Scancode})

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{Type: EventMouseWheel, WheelY: float32(e.Y)})

		case *sdl.MouseButtonEvent:
			if e.Button != DragButton {
				break
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.dragging = true
				i.dragStartX, i.dragStartY = e.X, e.Y
				i.events = append(i.events, Event{Type: EventDragBegin})
			} else if e.Type == sdl.MOUSEBUTTONUP && i.dragging {
				i.dragging = false
				i.events = append(i.events, Event{
					Type:   EventDragEnd,
					DragDX: float32(e.X - i.dragStartX),
					DragDY: float32(e.Y - i.dragStartY),
				})
			}

		case *sdl.MouseMotionEvent:
			if !i.dragging {
				break
			}
			i.events = append(i.events, Event{
				Type:   EventDragMove,
				DragDX: float32(e.X - i.dragStartX),
				DragDY: float32(e.Y - i.dragStartY),
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsDragging reports whether a design drag is in progress.
func (i *Input) IsDragging() bool {
	return i.dragging
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
