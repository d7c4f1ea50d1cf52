// Package server streams tour replays over websockets. Clients trigger
// generation and tours through small JSON endpoints and watch the frame
// stream on /ws; the replay clock runs server-side at the configured
// tick interval.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/toursim/internal/anim"
	"github.com/san-kum/toursim/internal/config"
	"github.com/san-kum/toursim/internal/geom"
	"github.com/san-kum/toursim/internal/session"
)

// Event is one message on the stream.
type Event struct {
	Type      string        `json:"type"` // generate | frame | animating | complete
	Points    geom.PointSet `json:"points,omitempty"`
	Frame     *anim.Frame   `json:"frame,omitempty"`
	Total     *float64      `json:"total,omitempty"`
	Animating *bool         `json:"animating,omitempty"`
	Timestamp string        `json:"ts"`
}

type Server struct {
	Router   *http.ServeMux
	hub      *Hub
	sess     *session.Session
	interval time.Duration
}

func New(cfg *config.Config, seed int64) *Server {
	hub := NewHub()
	go hub.Run()

	s := &Server{
		Router:   http.NewServeMux(),
		hub:      hub,
		interval: cfg.TickInterval(),
	}
	s.sess = session.New(cfg, seed, session.Hooks{
		Draw: func(st session.State) {
			if st.Frame != nil {
				s.emit(Event{Type: "frame", Frame: st.Frame})
				return
			}
			s.emit(Event{Type: "generate", Points: st.Points})
		},
		WeightChanged: func(w *float64) {
			if w != nil {
				s.emit(Event{Type: "complete", Total: w})
			}
		},
		AnimatingChanged: func(on bool) {
			s.emit(Event{Type: "animating", Animating: &on})
		},
	})

	s.Router.HandleFunc("/healthz", s.handleHealth)
	s.Router.HandleFunc("/ws", s.handleWS)
	s.Router.HandleFunc("/api/generate", s.handleGenerate)
	s.Router.HandleFunc("/api/tour", s.handleTour)
	return s
}

func (s *Server) ListenAndServe(addr string) error {
	log.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.Router)
}

func (s *Server) emit(e Event) {
	e.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	s.hub.broadcastJSON(e)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	serveWS(s.hub, w, r)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	points, _ := s.sess.Generate()
	log.Info("generated", "points", len(points))
	writeJSON(w, map[string]any{"points": points})
}

func (s *Server) handleTour(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Start int `json:"start"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if s.sess.Animating() {
		// Point activation during a replay is defined as a no-op.
		writeJSON(w, map[string]string{"status": "animating"})
		return
	}
	if err := s.sess.ActivatePoint(req.Start); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// One driver per replay: it exits as soon as Advance reports done,
	// which also covers cancellation via a later generate.
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for range ticker.C {
			if !s.sess.Advance() {
				return
			}
		}
	}()

	result := s.sess.Result()
	writeJSON(w, map[string]any{"status": "started", "steps": len(result.Steps)})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode response", "err", err)
	}
}
