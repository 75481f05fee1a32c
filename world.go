package raycast3d

import (
	"context"
	"log"
	"sync"
	"time"
)

// FrameResult is everything a driver needs to show one frame.
type FrameResult struct {
	Frame   *Frame
	Overlay Overlay
	Camera  CameraConfig
	Elapsed time.Duration
}

// World owns the canonical scene and the camera and steps them one frame at
// a time. Steps never overlap.
type World struct {
	mu       sync.Mutex
	scene    *Scene
	camera   *Camera
	renderer *Renderer
}

func NewWorld(scene *Scene, cfg CameraConfig, renderer *Renderer) (*World, error) {
	cam, err := NewCamera(cfg)
	if err != nil {
		return nil, err
	}
	if renderer == nil {
		renderer = NewRenderer(0)
	}
	log.Printf("World: %dx%d canvas, %d workers", cam.CanvasWidth, cam.CanvasHeight, renderer.Workers)
	return &World{
		scene:    scene,
		camera:   cam,
		renderer: renderer,
	}, nil
}

// Step moves the camera from keys, renders a snapshot of the scene and
// builds the wireframe for it.
func (w *World) Step(ctx context.Context, keys KeyState) (*FrameResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step(ctx, keys)
}

// TryStep is Step, but returns ok=false straight away if a frame is already
// in progress.
func (w *World) TryStep(ctx context.Context, keys KeyState) (res *FrameResult, ok bool, err error) {
	if !w.mu.TryLock() {
		return nil, false, nil
	}
	defer w.mu.Unlock()
	res, err = w.step(ctx, keys)
	return res, true, err
}

func (w *World) step(ctx context.Context, keys KeyState) (*FrameResult, error) {
	start := time.Now()

	w.camera.Update(keys)
	snapshot := w.scene.Clone()

	frame, err := w.renderer.Render(ctx, snapshot, w.camera)
	if err != nil {
		return nil, err
	}
	return &FrameResult{
		Frame:   frame,
		Overlay: w.camera.Wireframe(snapshot),
		Camera:  w.camera.CameraConfig,
		Elapsed: time.Since(start),
	}, nil
}

// Camera returns a copy of the camera's current state.
func (w *World) Camera() CameraConfig {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.camera.CameraConfig
}

func (w *World) CanvasSize() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.camera.CanvasWidth, w.camera.CanvasHeight
}
