package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

// SurfaceData is the JSON structure handed to external 3D plotting tools:
// parallel vertex and normal arrays plus the rotation that produced them.
type SurfaceData struct {
	Type     string       `json:"type"`
	Vertices [][3]float64 `json:"vertices"`
	Normals  [][3]float64 `json:"normals"`
	AngleX   float64      `json:"angleX"`
	AngleY   float64      `json:"angleY"`
}

func makeSurfaceData(s *Surface, ax, ay float64) *SurfaceData {
	d := &SurfaceData{
		Type:     "torusSurface",
		Vertices: make([][3]float64, s.Len()),
		Normals:  make([][3]float64, s.Len()),
		AngleX:   ax,
		AngleY:   ay,
	}
	for i, p := range s.Points {
		d.Vertices[i] = [3]float64{p.X(), p.Y(), p.Z()}
	}
	for i, n := range s.Normals {
		d.Normals[i] = [3]float64{n.X(), n.Y(), n.Z()}
	}
	return d
}

// DumpSurface writes a one-shot JSON dump of the unrotated surface, the
// offline flavor of the plotting export.
func DumpSurface(path string, s *Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", " ")
	return enc.Encode(makeSurfaceData(s, 0, 0))
}

// PlotServer streams surface snapshots to browser-side plotters over a
// websocket. Each client gets the base surface on connect, then rotated
// snapshots at the frame interval. The animation itself does not run here;
// this is a side channel for inspecting the geometry.
type PlotServer struct {
	Addr      string
	Surface   *Surface
	AngleIncX float64
	AngleIncY float64
	Interval  time.Duration

	upgrader websocket.Upgrader
}

// ListenAndServe blocks until the context is cancelled or the listener fails.
func (ps *PlotServer) ListenAndServe(ctx context.Context) error {
	ps.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ps.handleWS(ctx, w, r)
	})

	srv := &http.Server{Addr: ps.Addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	log.Printf("plot server listening on %s (websocket endpoint /ws)", ps.Addr)
	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (ps *PlotServer) handleWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := ps.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade:", err)
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(makeSurfaceData(ps.Surface, 0, 0)); err != nil {
		return
	}

	ticker := time.NewTicker(ps.Interval)
	defer ticker.Stop()

	var ax, ay float64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		ax = wrapAngle(ax + ps.AngleIncX)
		ay = wrapAngle(ay + ps.AngleIncY)
		if err := conn.WriteJSON(makeSurfaceData(ps.Surface.Rotated(ax, ay), ax, ay)); err != nil {
			return
		}
	}
}
