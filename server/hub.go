package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"burner/calculator"
	"burner/model"
)

// Hub serves one dashboard connection. The client first sends an "env"
// message carrying the fuel composition and operating conditions, then asks
// for "evaluate" or "sweep" runs against that environment.
type Hub struct {
	calc *calculator.Calculator
	conn *websocket.Conn

	// request
	msg chan model.Msg
	// response
	out chan model.Msg

	env    model.EvaluateRequest
	envSet bool
}

func NewHub(calc *calculator.Calculator, conn *websocket.Conn) *Hub {
	return &Hub{
		calc: calc,
		conn: conn,
		msg:  make(chan model.Msg, 10),
		out:  make(chan model.Msg, 10),
	}
}

// Close stops both hub goroutines. Safe to call once, after the read loop
// has stopped feeding h.msg.
func (h *Hub) Close() {
	close(h.msg)
}

// handleRequest owns the hub state: messages are processed strictly in
// order, so env updates and evaluations never race.
func (h *Hub) handleRequest() {
	defer close(h.out)
	for msg := range h.msg {
		switch msg.Type {
		case "env":
			h.out <- h.applyEnv(msg.Content)
		case "evaluate":
			h.out <- h.evaluate()
		case "sweep":
			h.out <- h.sweep(msg.Content)
		case "stop":
			h.out <- model.Msg{Type: "stopped", Content: "stopped"}
		default:
			log.WithField("type", msg.Type).Warn("no such message type")
			h.out <- model.Msg{Type: "error", Content: "no such message type: " + msg.Type}
		}
	}
}

func (h *Hub) handleResponse() {
	for reply := range h.out {
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.WithError(err).Error("failed to write websocket reply")
			return
		}
	}
}

func (h *Hub) applyEnv(content string) model.Msg {
	var req model.EvaluateRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return model.Msg{Type: "error", Content: "bad env payload: " + err.Error()}
	}
	if err := req.Conditions.Validate(); err != nil {
		return model.Msg{Type: "error", Content: err.Error()}
	}
	h.env = req
	h.envSet = true
	log.WithFields(log.Fields{
		"components":       len(req.Fuel),
		"excessAirPercent": req.Conditions.ExcessAirPercent,
		"fuelFlowKgPerH":   req.Conditions.FuelFlowKgPerHour,
	}).Info("environment set")
	return model.Msg{Type: "envSet", Content: "env is set"}
}

func (h *Hub) evaluate() model.Msg {
	if !h.envSet {
		return model.Msg{Type: "error", Content: "env is not set"}
	}
	report, err := h.calc.Evaluate(h.env.Fuel, h.env.Conditions)
	if err != nil {
		return h.errMsg(err)
	}
	data, err := json.Marshal(report)
	if err != nil {
		return h.errMsg(err)
	}
	return model.Msg{Type: "evaluated", Content: string(data)}
}

type sweepRange struct {
	FromPct float64 `json:"from_pct"`
	ToPct   float64 `json:"to_pct"`
	StepPct float64 `json:"step_pct"`
}

func (h *Hub) sweep(content string) model.Msg {
	if !h.envSet {
		return model.Msg{Type: "error", Content: "env is not set"}
	}
	var rng sweepRange
	if err := json.Unmarshal([]byte(content), &rng); err != nil {
		return model.Msg{Type: "error", Content: "bad sweep payload: " + err.Error()}
	}
	result, err := h.calc.Sweep(h.env.Fuel, h.env.Conditions, rng.FromPct, rng.ToPct, rng.StepPct)
	if err != nil {
		return h.errMsg(err)
	}
	data, err := json.Marshal(result)
	if err != nil {
		return h.errMsg(err)
	}
	return model.Msg{Type: "swept", Content: string(data)}
}

func (h *Hub) errMsg(err error) model.Msg {
	return model.Msg{Type: "error", Content: err.Error()}
}
