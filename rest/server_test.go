package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mohitkumar/playback/analytics"
	"github.com/mohitkumar/playback/config"
	"github.com/mohitkumar/playback/container"
	"github.com/mohitkumar/playback/engine"
	"github.com/mohitkumar/playback/model"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	wg := &sync.WaitGroup{}
	c := container.NewDiContainer(container.WithDataCollector(analytics.NoopDataCollector{}))
	require.NoError(t, c.Init(config.DefaultConfig(), wg))
	require.NoError(t, c.GetActionDao().SaveAction(model.Action{Id: "k0", Function: model.FUNCTION_KEY_PRESSED, KeyPressed: "tab"}))
	require.NoError(t, c.GetTaskDao().SaveTask(model.Task{Id: "t0", ActionIdList: []string{"k0", "k0"}}))
	require.NoError(t, c.GetLocalDispatcher().Start())
	t.Cleanup(func() {
		_ = c.GetLocalDispatcher().Stop()
		wg.Wait()
	})
	s, err := NewServer(0, []string{"*"}, engine.NewEngine(c), c.GetTaskDao(), c.GetActionDao())
	require.NoError(t, err)
	return s
}

func serve(t *testing.T, s *Server, method string, path string) (int, map[string]any) {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestServer(t *testing.T) {
	s := newTestServer(t)
	scenarios := map[string]func(t *testing.T){
		"execute task": func(t *testing.T) {
			code, body := serve(t, s, http.MethodPost, "/execute-task/t0")
			require.Equal(t, http.StatusOK, code)
			require.Equal(t, "Task complete", body["data"])
		},
		"execute missing task": func(t *testing.T) {
			code, body := serve(t, s, http.MethodGet, "/execute-task/nope")
			require.Equal(t, http.StatusOK, code)
			require.Equal(t, "Task not found", body["data"])
		},
		"execute action": func(t *testing.T) {
			code, body := serve(t, s, http.MethodPost, "/execute-action/k0")
			require.Equal(t, http.StatusOK, code)
			require.Equal(t, "Key pressed tab", body["data"])
		},
		"get task": func(t *testing.T) {
			code, body := serve(t, s, http.MethodGet, "/task/t0")
			require.Equal(t, http.StatusOK, code)
			require.Equal(t, "t0", body["id"])
		},
		"get missing action": func(t *testing.T) {
			code, body := serve(t, s, http.MethodGet, "/action/nope")
			require.Equal(t, http.StatusNotFound, code)
			require.Equal(t, "action not found", body["error"])
		},
		"cross origin request": func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/task/t0", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			rec := httptest.NewRecorder()
			s.Handler.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		},
	}
	for scenario, fn := range scenarios {
		t.Run(scenario, fn)
	}
}
