package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/me/schedsim/internal/config"
	"github.com/me/schedsim/internal/store"
	"github.com/me/schedsim/pkg/model"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))

	st, err := store.NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	srv := New(config.DefaultServerConfig(), st, logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decodeEnvelope(t *testing.T, resp *http.Response) model.Response {
	t.Helper()
	defer resp.Body.Close()
	var env model.Response
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func postRun(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/v1/runs/", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST runs: %v", err)
	}
	return resp
}

func TestCreateRun(t *testing.T) {
	ts := testServer(t)

	resp := postRun(t, ts, `{"algorithm":"fcfs","bursts":[5,3,8]}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if env.Status != "ok" || env.RequestID == "" {
		t.Errorf("envelope = %+v", env)
	}

	data, _ := json.Marshal(env.Data)
	var run model.Run
	if err := json.Unmarshal(data, &run); err != nil {
		t.Fatalf("decode run: %v", err)
	}
	if run.TotalTime != 16 {
		t.Errorf("total_time = %d, want 16", run.TotalTime)
	}
	if len(run.Processes) != 3 || run.Processes[2].Wait != 8 {
		t.Errorf("processes = %+v", run.Processes)
	}
}

func TestCreateRunValidation(t *testing.T) {
	ts := testServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"unknown algorithm", `{"algorithm":"sjf","bursts":[1]}`},
		{"empty bursts", `{"algorithm":"fcfs","bursts":[]}`},
		{"rr without quantum", `{"algorithm":"rr","bursts":[1,2]}`},
		{"malformed json", `{"algorithm":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postRun(t, ts, tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			env := decodeEnvelope(t, resp)
			if env.Error == nil || env.Error.Code != model.ErrValidation {
				t.Errorf("error = %+v", env.Error)
			}
		})
	}
}

func TestGetRunAndNotFound(t *testing.T) {
	ts := testServer(t)

	resp := postRun(t, ts, `{"algorithm":"rr","quantum":4,"bursts":[5,3,8]}`)
	env := decodeEnvelope(t, resp)
	data, _ := json.Marshal(env.Data)
	var created model.Run
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("decode run: %v", err)
	}

	getResp, err := http.Get(ts.URL + "/api/v1/runs/" + created.ID)
	if err != nil {
		t.Fatalf("GET run: %v", err)
	}
	if getResp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", getResp.StatusCode)
	}
	getEnv := decodeEnvelope(t, getResp)
	data, _ = json.Marshal(getEnv.Data)
	var fetched model.Run
	if err := json.Unmarshal(data, &fetched); err != nil {
		t.Fatalf("decode fetched run: %v", err)
	}
	if fetched.Quantum != 4 || len(fetched.Timeline) != 5 {
		t.Errorf("fetched run = %+v", fetched)
	}

	missResp, err := http.Get(ts.URL + "/api/v1/runs/run_missing")
	if err != nil {
		t.Fatalf("GET missing: %v", err)
	}
	if missResp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", missResp.StatusCode)
	}
	missEnv := decodeEnvelope(t, missResp)
	if missEnv.Error == nil || missEnv.Error.Code != model.ErrNotFound {
		t.Errorf("error = %+v", missEnv.Error)
	}
}

func TestListRunsPagination(t *testing.T) {
	ts := testServer(t)

	for i := 0; i < 3; i++ {
		resp := postRun(t, ts, `{"algorithm":"fcfs","bursts":[1,2]}`)
		resp.Body.Close()
	}

	resp, err := http.Get(ts.URL + "/api/v1/runs/?limit=2")
	if err != nil {
		t.Fatalf("GET runs: %v", err)
	}
	env := decodeEnvelope(t, resp)
	if env.Pagination == nil {
		t.Fatal("missing pagination")
	}
	if env.Pagination.Total != 3 || env.Pagination.Limit != 2 || !env.Pagination.HasMore {
		t.Errorf("pagination = %+v", env.Pagination)
	}
}

func TestDeleteRun(t *testing.T) {
	ts := testServer(t)

	resp := postRun(t, ts, `{"algorithm":"fcfs","bursts":[7]}`)
	env := decodeEnvelope(t, resp)
	data, _ := json.Marshal(env.Data)
	var created model.Run
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("decode run: %v", err)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/v1/runs/"+created.ID, nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE run: %v", err)
	}
	if delResp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", delResp.StatusCode)
	}
	delResp.Body.Close()

	getResp, err := http.Get(ts.URL + "/api/v1/runs/" + created.ID)
	if err != nil {
		t.Fatalf("GET deleted: %v", err)
	}
	getResp.Body.Close()
	if getResp.StatusCode != http.StatusNotFound {
		t.Errorf("status after delete = %d, want 404", getResp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/health")
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
	env := decodeEnvelope(t, resp)
	data, _ := json.Marshal(env.Data)
	var health map[string]any
	if err := json.Unmarshal(data, &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health["status"] != "healthy" || health["store"] != "ready" {
		t.Errorf("health = %v", health)
	}
}
