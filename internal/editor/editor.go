// Package editor implements the windowed editor shell: it wires the
// camera, projection, design triad and scene together and runs the
// frame loop in a fixed order (input, controller mutation, dirty poll
// with uniform refresh and upload, draw).
package editor

import (
	"fmt"
	gomath "math"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/thenlevy/ensnano-sub005/internal/config"
	"github.com/thenlevy/ensnano-sub005/internal/design"
	"github.com/thenlevy/ensnano-sub005/internal/engine/camera"
	"github.com/thenlevy/ensnano-sub005/internal/engine/debug"
	"github.com/thenlevy/ensnano-sub005/internal/engine/input"
	"github.com/thenlevy/ensnano-sub005/internal/engine/renderer"
	"github.com/thenlevy/ensnano-sub005/internal/engine/scene"
	"github.com/thenlevy/ensnano-sub005/internal/engine/window"
	"github.com/thenlevy/ensnano-sub005/internal/logger"
	"github.com/thenlevy/ensnano-sub005/pkg/math"
)

// Editor is the editor shell instance.
type Editor struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	cam  *camera.Camera
	proj *camera.Projection

	view       *design.View
	data       *design.Data
	controller *design.Controller

	scene *scene.Scene

	dragSensitivity float32

	screenshot          *debug.ScreenshotCapture
	screenshotRequested bool
}

// New creates the editor shell. The window and GL context are created
// here; all further calls must stay on this thread.
func New(cfg *config.Config) (*Editor, error) {
	e := &Editor{cfg: cfg}

	var err error
	e.window, err = window.New(window.Config{
		Title:      "ENSnano",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	e.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		e.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	e.input = input.New()

	fovy := cfg.Camera.FovDegrees * gomath.Pi / 180
	e.cam = camera.New(camera.DefaultPosition, math.RotorIdentity())
	e.proj = camera.NewProjection(
		uint32(cfg.Graphics.Width), uint32(cfg.Graphics.Height),
		fovy, camera.DefaultZNear, camera.DefaultZFar,
	)

	e.view = design.NewView()
	e.data = design.NewData("untitled design")
	e.controller = design.NewController(e.view, e.data, e.cam)
	e.dragSensitivity = cfg.Camera.DragSensitivity
	e.screenshot = debug.NewScreenshotCapture("screenshots", "ensnano")

	e.scene, err = scene.New(e.cam, e.proj, e.view)
	if err != nil {
		e.window.Close()
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	logger.Info("editor initialized",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)
	return e, nil
}

// Close tears everything down in reverse creation order.
func (e *Editor) Close() {
	if e.scene != nil {
		e.scene.Close()
	}
	if e.window != nil {
		e.window.Close()
	}
}

// Run starts the main loop and blocks until quit.
func (e *Editor) Run() error {
	e.running = true
	logger.Info("starting editor loop")

	for e.running {
		// 1. Input.
		if e.input.Update() {
			e.running = false
			break
		}
		for _, ev := range e.input.Events() {
			e.handleEvent(ev)
		}

		// 2. Dirty poll: refresh and upload the camera uniforms only
		// when the design view changed.
		e.scene.Update()

		// 3. Draw.
		e.renderer.Begin()
		e.scene.Draw()

		if e.screenshotRequested {
			e.screenshotRequested = false
			pixels, w, h := e.renderer.ReadPixels()
			if path, err := e.screenshot.CaptureFromPixels(pixels, w, h); err != nil {
				logger.Error("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", path))
			}
		}

		e.window.SwapBuffers()
	}

	return nil
}

// handleEvent routes one input event.
func (e *Editor) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		e.running = false

	case input.EventWindowResize:
		e.renderer.Resize(ev.Width, ev.Height)
		e.proj.Resize(uint32(ev.Width), uint32(ev.Height))
		// The projection feeds the uniforms, so force a re-upload.
		e.view.SetMatrix(e.view.ModelMatrix())

	case input.EventKeyDown:
		switch ev.Key {
		case sdl.SCANCODE_ESCAPE:
			e.running = false
		case sdl.SCANCODE_F12:
			e.screenshotRequested = true
		}

	case input.EventMouseWheel:
		e.cam.Position = e.cam.Position.Add(e.cam.Direction().Scale(ev.WheelY))
		e.view.SetMatrix(e.view.ModelMatrix())

	case input.EventDragBegin:
		e.controller.Update()

	case input.EventDragMove:
		right, up := e.dragVectors(ev.DragDX, ev.DragDY)
		e.controller.Translate(right, up)

	case input.EventDragEnd:
		right, up := e.dragVectors(ev.DragDX, ev.DragDY)
		e.controller.Translate(right, up)
		e.controller.TerminateMovement()
	}
}

// dragVectors converts a cumulative pixel offset into the pair of
// world-space vectors the controller expects, along the camera's right
// and up axes. Screen y grows downward, world up doesn't.
func (e *Editor) dragVectors(dx, dy float32) (right, up math.Vec3) {
	right = e.cam.RightVec().Scale(dx * e.dragSensitivity)
	up = e.cam.UpVec().Scale(-dy * e.dragSensitivity)
	return right, up
}
