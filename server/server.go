package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"burner/calculator"
	"burner/model"
)

type Server struct {
	addr     string
	calc     *calculator.Calculator
	upgrader websocket.Upgrader
}

func New(addr string, calc *calculator.Calculator) *Server {
	return &Server{
		addr: addr,
		calc: calc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Post("/api/evaluate", s.handleEvaluate)
	r.Post("/api/sweep", s.handleSweep)
	r.Get("/ws", s.serveWs)
	return r
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("combustion analysis server listening")
	return http.ListenAndServe(s.addr, s.Routes())
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req model.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Conditions.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	report, err := s.calc.Evaluate(req.Fuel, req.Conditions)
	if err != nil {
		var compErr *calculator.InvalidCompositionError
		if errors.As(err, &compErr) {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req model.SweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Conditions.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	result, err := s.calc.Sweep(req.Fuel, req.Conditions, req.FromPct, req.ToPct, req.StepPct)
	if err != nil {
		var compErr *calculator.InvalidCompositionError
		if errors.As(err, &compErr) {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// serveWs upgrades the connection and hands it to a per-connection hub.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(s.calc, conn)
	go hub.handleRequest()
	go hub.handleResponse()
	defer hub.Close()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Info("websocket client disconnected")
			return
		}
		hub.msg <- msg
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
