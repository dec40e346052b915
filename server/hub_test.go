package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burner/calculator"
	"burner/model"
)

func dialTestHub(t *testing.T) *websocket.Conn {
	t.Helper()
	s := New(":0", calculator.New(calculator.DefaultConfig()))
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)

	url := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg model.Msg) model.Msg {
	t.Helper()
	require.NoError(t, conn.WriteJSON(&msg))
	var reply model.Msg
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestHubEvaluateFlow(t *testing.T) {
	conn := dialTestHub(t)

	env, err := json.Marshal(scenarioRequest())
	require.NoError(t, err)

	reply := roundTrip(t, conn, model.Msg{Type: "env", Content: string(env)})
	assert.Equal(t, "envSet", reply.Type)

	reply = roundTrip(t, conn, model.Msg{Type: "evaluate"})
	require.Equal(t, "evaluated", reply.Type)

	var report model.Report
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &report))
	assert.Greater(t, report.Combustion.AdiabaticFlameTempC, 1000.0)

	reply = roundTrip(t, conn, model.Msg{Type: "stop"})
	assert.Equal(t, "stopped", reply.Type)
}

func TestHubSweepFlow(t *testing.T) {
	conn := dialTestHub(t)

	env, err := json.Marshal(scenarioRequest())
	require.NoError(t, err)
	reply := roundTrip(t, conn, model.Msg{Type: "env", Content: string(env)})
	require.Equal(t, "envSet", reply.Type)

	rng, _ := json.Marshal(sweepRange{FromPct: 10, ToPct: 30, StepPct: 10})
	reply = roundTrip(t, conn, model.Msg{Type: "sweep", Content: string(rng)})
	require.Equal(t, "swept", reply.Type)

	var result model.SweepResult
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &result))
	assert.Len(t, result.Points, 3)
}

func TestHubRequiresEnv(t *testing.T) {
	conn := dialTestHub(t)
	reply := roundTrip(t, conn, model.Msg{Type: "evaluate"})
	assert.Equal(t, "error", reply.Type)
}

func TestHubRejectsUnknownType(t *testing.T) {
	conn := dialTestHub(t)
	reply := roundTrip(t, conn, model.Msg{Type: "bogus"})
	assert.Equal(t, "error", reply.Type)
}
