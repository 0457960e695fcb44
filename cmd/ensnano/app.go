package main

import (
	"fmt"
	gomath "math"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/thenlevy/ensnano-sub005/internal/config"
	"github.com/thenlevy/ensnano-sub005/internal/design"
	"github.com/thenlevy/ensnano-sub005/internal/engine/camera"
	"github.com/thenlevy/ensnano-sub005/internal/engine/framebuffer"
	"github.com/thenlevy/ensnano-sub005/internal/engine/scene"
	"github.com/thenlevy/ensnano-sub005/internal/gui"
	"github.com/thenlevy/ensnano-sub005/internal/logger"
	"github.com/thenlevy/ensnano-sub005/pkg/math"
)

// App is the editor application: the imgui shell around the design
// scene. The scene renders into an offscreen framebuffer whose color
// texture is shown as an imgui image, so all 3D interaction (drag,
// wheel) is driven from imgui mouse state over that image.
type App struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	cfg     *config.Config

	cam  *camera.Camera
	proj *camera.Projection

	view       *design.View
	data       *design.Data
	controller *design.Controller

	scene *scene.Scene
	fb    *framebuffer.Framebuffer

	// UI state
	uiSize   gui.UISize
	sequence gui.SequenceInput
	seqText  string
	dropped  int

	// Turn slider state. The pivot is snapshotted when the grab
	// starts so the whole gesture rotates about one fixed point.
	turn       float32
	turnActive bool
	turnPivot  math.Vec3

	// Scene drag state. dragStart is the mouse position at drag
	// begin; translations are cumulative from that point.
	dragging  bool
	dragStart imgui.Vec2

	dragSensitivity float32
}

// NewApp creates the window, GL context and scene resources.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	uiSize, err := gui.ParseUISize(cfg.UI.Size)
	if err != nil {
		logger.Warn("unknown ui size, using medium", zap.String("size", cfg.UI.Size))
		uiSize = gui.SizeMedium
	}
	app.uiSize = uiSize

	app.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("creating backend: %w", err)
	}

	app.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	app.backend.CreateWindow("ENSnano", cfg.Graphics.Width, cfg.Graphics.Height)

	// The backend made the GL context current; bind the function
	// pointers before touching any gl call.
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	fbW, fbH := int32(960), int32(640)
	fovy := cfg.Camera.FovDegrees * float32(gomath.Pi) / 180
	app.cam = camera.New(camera.DefaultPosition, math.RotorIdentity())
	app.proj = camera.NewProjection(uint32(fbW), uint32(fbH), fovy, camera.DefaultZNear, camera.DefaultZFar)

	app.view = design.NewView()
	app.data = design.NewData("untitled design")
	app.controller = design.NewController(app.view, app.data, app.cam)
	app.dragSensitivity = cfg.Camera.DragSensitivity

	app.scene, err = scene.New(app.cam, app.proj, app.view)
	if err != nil {
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	app.fb, err = framebuffer.New(fbW, fbH)
	if err != nil {
		app.scene.Close()
		return nil, fmt.Errorf("creating scene framebuffer: %w", err)
	}

	logger.Info("application initialized",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("ui_size", uiSize.String()),
	)
	return app, nil
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// Close cleans up GPU resources.
func (app *App) Close() {
	if app.fb != nil {
		app.fb.Destroy()
		app.fb = nil
	}
	if app.scene != nil {
		app.scene.Close()
		app.scene = nil
	}
}

// render draws one frame: scene pass into the framebuffer first, then
// the imgui layout around its color texture.
func (app *App) render() {
	app.renderScene()

	inactive := imgui.NewVec4(gui.InactiveColor.R, gui.InactiveColor.G, gui.InactiveColor.B, gui.InactiveColor.A)
	imgui.PushStyleColorVec4(imgui.ColTextDisabled, inactive)
	defer imgui.PopStyleColor()

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	leftPanelWidth := float32(300)
	statusBarHeight := app.uiSize.TopBar()
	contentHeight := workSize.Y - statusBarHeight

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(leftPanelWidth, contentHeight))
	if imgui.BeginV("Design", nil, flags) {
		app.renderDesignPanel()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+leftPanelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X-leftPanelWidth, contentHeight))
	if imgui.BeginV("Scene", nil, flags) {
		app.renderSceneView()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##StatusBar", nil, statusFlags) {
		app.renderStatusBar()
	}
	imgui.End()
}

// renderScene runs the scene pass: dirty poll, then draw into the
// offscreen framebuffer.
func (app *App) renderScene() {
	restore := app.fb.Bind()
	app.fb.Clear(0.12, 0.12, 0.16, 1.0)
	app.scene.Update()
	app.scene.Draw()
	restore()
}

// renderDesignPanel draws the left panel: UI size, scaffold sequence
// input and the turn slider.
func (app *App) renderDesignPanel() {
	imgui.Text("Interface size")
	imgui.SetNextItemWidth(-1)
	if imgui.BeginCombo("##uisize", app.uiSize.String()) {
		for _, size := range gui.Sizes {
			selected := size == app.uiSize
			if imgui.SelectableBoolV(size.String(), selected, 0, imgui.NewVec2(0, 0)) {
				app.uiSize = size
				logger.Debug("ui size changed", zap.String("size", size.String()))
			}
			if selected {
				imgui.SetItemDefaultFocus()
			}
		}
		imgui.EndCombo()
	}

	imgui.Separator()

	imgui.Text("Scaffold sequence")
	imgui.SetNextItemWidth(-1)
	if imgui.InputTextWithHint("##sequence", "ATGC...", &app.seqText, 0, nil) {
		app.dropped = app.sequence.Set(app.seqText)
		app.seqText = app.sequence.Text()
	}
	if app.sequence.IsEmpty() {
		imgui.TextDisabled("No scaffold sequence")
	} else {
		imgui.Text(fmt.Sprintf("%d nucleotides", app.sequence.Len()))
	}
	if app.dropped > 0 {
		imgui.TextDisabled(fmt.Sprintf("%d characters ignored", app.dropped))
	}

	imgui.Dummy(imgui.NewVec2(0, gui.TurnSliderSpacing))
	imgui.Separator()
	imgui.Dummy(imgui.NewVec2(0, gui.TurnSliderSpacing))

	imgui.Text("Turn")
	imgui.SetNextItemWidth(-1)
	turn := app.turn
	if imgui.SliderFloatV("##turn", &turn, gui.TurnSliderMin, gui.TurnSliderMax, "%.2f turns", imgui.SliderFlagsNone) {
		turn = snapToStep(turn, gui.TurnSliderStep)
		if !app.turnActive {
			app.turnActive = true
			app.turnPivot = app.view.Origin()
			app.controller.Update()
		}
		app.turn = turn
		angle := app.turn * 2 * float32(gomath.Pi)
		app.controller.Rotate(math.RotorFromAxisAngle(math.UnitY(), angle), app.turnPivot)
	}
	if app.turnActive && !imgui.IsItemActive() {
		app.controller.TerminateMovement()
		app.turnActive = false
		app.turn = 0
	}
}

// renderSceneView shows the framebuffer texture and feeds mouse
// interaction over it to the design controller.
func (app *App) renderSceneView() {
	avail := imgui.ContentRegionAvail()
	if avail.X < 1 || avail.Y < 1 {
		return
	}
	prevW, prevH := app.fb.Size()
	app.fb.Resize(int32(avail.X), int32(avail.Y))
	w, h := app.fb.Size()
	if w != prevW || h != prevH {
		app.proj.Resize(uint32(w), uint32(h))
		// The projection feeds the uniforms; force a re-upload.
		app.view.SetMatrix(app.view.ModelMatrix())
	}

	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(app.fb.ColorTexture()))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(float32(w), float32(h)),
		imgui.NewVec2(0, 1), // UV flipped for OpenGL
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0.12, 0.12, 0.16, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)
	hovered := imgui.IsItemHovered()

	if app.dragging {
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			pos := imgui.MousePos()
			right, up := app.dragVectors(pos.X-app.dragStart.X, pos.Y-app.dragStart.Y)
			app.controller.Translate(right, up)
		} else {
			app.controller.TerminateMovement()
			app.dragging = false
		}
	} else if hovered && imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		app.dragging = true
		app.dragStart = imgui.MousePos()
		app.controller.Update()
	}

	if hovered {
		wheel := imgui.CurrentIO().MouseWheel()
		if wheel != 0 {
			app.cam.Position = app.cam.Position.Add(app.cam.Direction().Scale(wheel))
			// Camera moved; force a uniform re-upload next frame.
			app.view.SetMatrix(app.view.ModelMatrix())
		}
	}
}

// renderStatusBar shows the design name and movement state.
func (app *App) renderStatusBar() {
	imgui.Text(app.data.Name())
	imgui.SameLine()
	imgui.TextDisabled(fmt.Sprintf("rev %d", app.data.Revision()))
	if app.controller.IsMoving() {
		imgui.SameLine()
		imgui.Text("moving")
	}
}

// dragVectors converts a cumulative pixel offset into world-space
// offsets along the camera's right and up axes. Screen y grows
// downward, world up doesn't.
func (app *App) dragVectors(dx, dy float32) (right, up math.Vec3) {
	right = app.cam.RightVec().Scale(dx * app.dragSensitivity)
	up = app.cam.UpVec().Scale(-dy * app.dragSensitivity)
	return right, up
}

// snapToStep rounds v to the nearest multiple of step.
func snapToStep(v, step float32) float32 {
	return float32(gomath.Round(float64(v/step))) * step
}
