package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/smasonuk/raycast3d"
	"github.com/smasonuk/raycast3d/stream"
	"github.com/smasonuk/raycast3d/window"
)

func main() {
	mode := flag.String("mode", "window", "window, png or serve")
	sceneFile := flag.String("scene", "", "JSON scene file (default: built-in demo)")
	plyFile := flag.String("ply", "", "ASCII PLY mesh to render instead of a scene")
	terrain := flag.Bool("terrain", false, "render a Perlin terrain instead of a scene")
	seed := flag.Int64("seed", 1, "terrain seed")
	workers := flag.Int("workers", 0, "rows rendered at once (0: one per CPU)")
	out := flag.String("out", "frame.png", "output file for -mode png")
	keys := flag.String("keys", "", "comma separated keys held for the png frame, e.g. w,ArrowLeft")
	overlay := flag.Bool("overlay", true, "draw the wireframe overlay")
	addr := flag.String("addr", ":8080", "listen address for -mode serve")
	zoom := flag.Int("zoom", 2, "window zoom factor")
	flag.Parse()

	scene, cfg, err := loadScene(*sceneFile, *plyFile, *terrain, *seed)
	if err != nil {
		log.Fatalf("Error loading scene: %v", err)
	}

	world, err := raycast3d.NewWorld(scene, cfg, raycast3d.NewRenderer(*workers))
	if err != nil {
		log.Fatalf("Error creating world: %v", err)
	}

	switch *mode {
	case "window":
		if err := window.Run(world, "raycast3d", *zoom); err != nil {
			log.Fatalf("Window error: %v", err)
		}

	case "png":
		res, err := world.Step(context.Background(), parseKeys(*keys))
		if err != nil {
			log.Fatalf("Render error: %v", err)
		}
		if err := raycast3d.WritePNGFile(*out, res, *overlay); err != nil {
			log.Fatalf("Error writing %s: %v", *out, err)
		}
		log.Printf("Wrote %s in %v", *out, res.Elapsed)

	case "serve":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		srv := stream.NewServer(world, *overlay)
		httpServer := &http.Server{Addr: *addr, Handler: srv.Handler()}
		go func() {
			<-ctx.Done()
			httpServer.Close()
		}()
		go srv.Run(ctx)

		log.Printf("Serving on %s", *addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}

	default:
		log.Fatalf("Unknown mode %q", *mode)
	}
}

func loadScene(sceneFile, plyFile string, terrain bool, seed int64) (*raycast3d.Scene, raycast3d.CameraConfig, error) {
	switch {
	case terrain:
		opts := raycast3d.DefaultTerrainOptions()
		opts.Seed = seed
		return raycast3d.NewTerrainScene(opts)

	case plyFile != "":
		d, err := raycast3d.LoadPLYFile(plyFile, raycast3d.PLYOptions{Offset: raycast3d.NewVector3(0, 6, 0)})
		if err != nil {
			return nil, raycast3d.CameraConfig{}, err
		}
		d.AddLight(raycast3d.NewPoint3d(-2, 2, 4), 10, raycast3d.NewColor(255, 255, 255, 1))
		s, err := d.Build()
		return s, d.Camera, err

	case sceneFile != "":
		return raycast3d.LoadSceneFile(sceneFile)
	}

	s, cfg := raycast3d.DemoScene()
	return s, cfg, nil
}

func parseKeys(list string) raycast3d.KeyState {
	keys := make(raycast3d.KeyState)
	for _, k := range strings.Split(list, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys[k] = true
		}
	}
	return keys
}
