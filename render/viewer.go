// Package render draws the simulation with raylib and translates
// keyboard input into control signals. It reads controller snapshots and
// world views only; it never touches simulation state directly.
package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RizeComputerScience/tribesim/sim"
	"github.com/RizeComputerScience/tribesim/world"
)

// Tier colors: best third, middle third, rest.
var tierColors = [3]rl.Color{
	{R: 80, G: 220, B: 120, A: 255},
	{R: 230, G: 200, B: 70, A: 255},
	{R: 220, G: 90, B: 70, A: 255},
}

var (
	foodColor     = rl.Color{R: 110, G: 190, B: 90, A: 220}
	predatorColor = rl.Color{R: 250, G: 60, B: 40, A: 255}
	rivalColor    = rl.Color{R: 140, G: 140, B: 170, A: 255}
	deadColor     = rl.Color{R: 70, G: 70, B: 70, A: 160}
	hudColor      = rl.Color{R: 220, G: 220, B: 220, A: 255}
	background    = rl.Color{R: 18, G: 22, B: 26, A: 255}
)

// Viewer owns the window, the camera, and the per-frame speed setting.
type Viewer struct {
	camera         *Camera
	stepsPerUpdate int
}

// Open creates the window. Call Close when done.
func Open(width, height, targetFPS int32, worldW, worldH float64, stepsPerUpdate int) *Viewer {
	rl.InitWindow(width, height, "Tribe Sim")
	rl.SetTargetFPS(targetFPS)

	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}
	return &Viewer{
		camera:         NewCamera(float32(width), float32(height), float32(worldW), float32(worldH)),
		stepsPerUpdate: stepsPerUpdate,
	}
}

// Close tears the window down.
func (v *Viewer) Close() {
	rl.CloseWindow()
}

// ShouldClose reports whether the user asked to quit.
func (v *Viewer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// StepsPerUpdate returns the current simulation ticks per frame.
func (v *Viewer) StepsPerUpdate() int {
	return v.stepsPerUpdate
}

// PollInput processes keyboard input and returns the control signals to
// deliver to the controller this frame.
func (v *Viewer) PollInput(state sim.State) []sim.Signal {
	var signals []sim.Signal

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		if state == sim.StatePaused {
			signals = append(signals, sim.SignalResume)
		} else {
			signals = append(signals, sim.SignalPause)
		}
	}

	if rl.IsKeyPressed(rl.KeyG) {
		signals = append(signals, sim.SignalAdvance)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		signals = append(signals, sim.SignalReset)
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && v.stepsPerUpdate > 1 {
		v.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && v.stepsPerUpdate < 10 {
		v.stepsPerUpdate++
	}

	v.handleResize()
	v.handleCameraInput()

	return signals
}

// handleResize propagates window resizes to the camera.
func (v *Viewer) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	v.camera.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// handleCameraInput processes camera pan/zoom controls.
func (v *Viewer) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / v.camera.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		v.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		v.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		v.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		v.camera.Pan(0, -panSpeed)
	}

	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 {
		v.camera.ZoomBy(1.0 + wheelMove*0.1)
	}

	// Keyboard zoom with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		v.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		v.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		v.camera.Reset()
	}
}

// Draw renders one frame: environment first, then organisms, then HUD.
func (v *Viewer) Draw(snap sim.Snapshot, foods []world.FoodView, predators []world.PredatorView) {
	rl.BeginDrawing()
	rl.ClearBackground(background)

	zoom := v.camera.Zoom

	for _, f := range foods {
		if !v.camera.IsVisible(float32(f.X), float32(f.Y), 3) {
			continue
		}
		sx, sy := v.camera.WorldToScreen(float32(f.X), float32(f.Y))
		rl.DrawCircle(int32(sx), int32(sy), 3*zoom, foodColor)
	}

	for _, p := range predators {
		if !v.camera.IsVisible(float32(p.X), float32(p.Y), 7) {
			continue
		}
		sx, sy := v.camera.WorldToScreen(float32(p.X), float32(p.Y))
		rl.DrawCircle(int32(sx), int32(sy), 7*zoom, predatorColor)
		rl.DrawCircleLines(int32(sx), int32(sy), 7*zoom, rl.Black)
	}

	for _, r := range snap.Rivals {
		if !r.Alive || !v.camera.IsVisible(float32(r.X), float32(r.Y), 4) {
			continue
		}
		sx, sy := v.camera.WorldToScreen(float32(r.X), float32(r.Y))
		rl.DrawCircle(int32(sx), int32(sy), 4*zoom, rivalColor)
	}

	for _, o := range snap.Organisms {
		if !v.camera.IsVisible(float32(o.X), float32(o.Y), 5) {
			continue
		}
		sx, sy := v.camera.WorldToScreen(float32(o.X), float32(o.Y))
		if !o.Alive {
			rl.DrawCircle(int32(sx), int32(sy), 3*zoom, deadColor)
			continue
		}
		tier := o.Tier
		if tier < 0 || tier >= len(tierColors) {
			tier = len(tierColors) - 1
		}
		rl.DrawCircle(int32(sx), int32(sy), 5*zoom, tierColors[tier])
	}

	v.drawHUD(snap)

	rl.EndDrawing()
}

func (v *Viewer) drawHUD(snap sim.Snapshot) {
	hud := fmt.Sprintf("gen %d  tick %d  alive %d/%d  speed %dx",
		snap.Generation, snap.Tick, snap.Alive, len(snap.Organisms), v.stepsPerUpdate)
	rl.DrawText(hud, 10, 10, 20, hudColor)

	if snap.State == sim.StatePaused {
		rl.DrawText("PAUSED", 10, 36, 20, rl.Color{R: 230, G: 200, B: 70, A: 255})
	}

	rl.DrawText("space pause  g next gen  r reset  < > speed  arrows pan  +/- zoom", 10, int32(rl.GetScreenHeight())-28, 16,
		rl.Color{R: 150, G: 150, B: 150, A: 255})
}
