package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"donut3d/config"
)

func main() {
	var (
		settingsPath = flag.String("settings", "settings.json", "Settings file (missing file means defaults)")
		ui           = flag.String("ui", "ansi", "Frame presenter: ansi or termbox")
		width        = flag.Int("width", 0, "Override grid width in characters")
		height       = flag.Int("height", 0, "Override grid height in characters")
		frames       = flag.Int("frames", 0, "Stop after this many frames (0 = run until interrupted)")
		plot         = flag.Bool("plot", false, "Show the surface in a 3D point-cloud window instead of animating")
		dump         = flag.String("dump", "", "Write the surface as JSON to this file and exit")
		serve        = flag.String("serve", "", "Serve surface snapshots to external plotters over websocket at this address")
	)
	flag.Parse()

	cfg, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalln("load settings:", err)
	}
	if *width > 0 {
		cfg.View.GridWidth = *width
	}
	if *height > 0 {
		cfg.View.GridHeight = *height
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}

	surface, err := NewSurface(cfg.Torus.MajorRadius, cfg.Torus.MinorRadius, cfg.Torus.ThetaSamples, cfg.Torus.PhiSamples)
	if err != nil {
		log.Fatalln("build surface:", err)
	}
	light := mgl64.Vec3{cfg.View.LightDir[0], cfg.View.LightDir[1], cfg.View.LightDir[2]}
	interval := time.Duration(cfg.Animation.FrameIntervalMs) * time.Millisecond

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch {
	case *plot:
		if err := RunPlotWindow(surface, light, cfg.Animation.AngleIncX, cfg.Animation.AngleIncY); err != nil {
			log.Fatalln("plot window:", err)
		}
		return
	case *dump != "":
		if err := DumpSurface(*dump, surface); err != nil {
			log.Fatalln("dump surface:", err)
		}
		log.Printf("surface written to %s (%d points)", *dump, surface.Len())
		return
	case *serve != "":
		ps := &PlotServer{
			Addr:      *serve,
			Surface:   surface,
			AngleIncX: cfg.Animation.AngleIncX,
			AngleIncY: cfg.Animation.AngleIncY,
			Interval:  interval,
		}
		if err := ps.ListenAndServe(ctx); err != nil {
			log.Fatalln("plot server:", err)
		}
		return
	}

	ramp, err := NewRamp(cfg.View.Ramp)
	if err != nil {
		log.Fatalln(err)
	}
	raster, err := NewRasterizer(cfg.View.GridWidth, cfg.View.GridHeight,
		cfg.Torus.MajorRadius, cfg.Torus.MinorRadius,
		cfg.View.ObserverZ, cfg.View.ScreenZ, light, ramp)
	if err != nil {
		log.Fatalln("build rasterizer:", err)
	}

	var presenter FramePresenter
	switch *ui {
	case "ansi":
		presenter = NewANSIPresenter(os.Stdout)
	case "termbox":
		tb, err := NewTermboxPresenter(cancel)
		if err != nil {
			log.Fatalln("init termbox:", err)
		}
		defer tb.Close()
		presenter = tb
	default:
		log.Fatalf("unknown ui %q (want ansi or termbox)", *ui)
	}

	anim, err := NewAnimator(surface, raster, presenter, AnimatorOptions{
		AngleIncX:     cfg.Animation.AngleIncX,
		AngleIncY:     cfg.Animation.AngleIncY,
		InitialTiltX:  cfg.Animation.InitialTiltX,
		FrameInterval: interval,
		FrameLimit:    *frames,
	})
	if err != nil {
		log.Fatalln(err)
	}
	if err := anim.Run(ctx); err != nil {
		log.Fatalln("animation:", err)
	}
}
