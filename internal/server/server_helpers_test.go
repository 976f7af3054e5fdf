package server

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"draw-guess/internal/config"

	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	return ts
}

func newTestHandler() http.Handler {
	return newTestHandlerWithConfig(config.Default())
}

func newTestHandlerWithConfig(cfg config.Config) http.Handler {
	return New(cfg, zerolog.Nop()).Handler()
}

func createRoom(t *testing.T, ts *httptest.Server, name string) (playerID, code string) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/rooms", map[string]string{"name": name})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	room := body["room"].(map[string]any)
	return body["player_id"].(string), room["code"].(string)
}

func joinRoom(t *testing.T, ts *httptest.Server, code, name string) string {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/rooms/"+code+"/join", map[string]string{"name": name})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	return body["player_id"].(string)
}

func postIntent(t *testing.T, ts *httptest.Server, code, action string, payload any) *http.Response {
	t.Helper()
	return doRequest(t, ts, http.MethodPost, "/api/rooms/"+code+"/"+action, payload)
}

func fetchSnapshot(t *testing.T, ts *httptest.Server, code, playerID string) map[string]any {
	t.Helper()
	path := "/api/rooms/" + code
	if playerID != "" {
		path += "?player_id=" + playerID
	}
	resp := doRequest(t, ts, http.MethodGet, path, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func chatCountFrom(snapshot map[string]any, playerID string) int {
	entries, _ := snapshot["chat_log"].([]any)
	count := 0
	for _, entry := range entries {
		message, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if message["player_id"] == playerID && message["kind"] == "chat" {
			count++
		}
	}
	return count
}

func playerNames(snapshot map[string]any) []string {
	players, _ := snapshot["players"].([]any)
	names := make([]string, 0, len(players))
	for _, entry := range players {
		player, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := player["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}
