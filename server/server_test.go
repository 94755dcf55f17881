package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spherelab/autgroup"
	"github.com/katalvlaran/spherelab/internal/config"
	"github.com/katalvlaran/spherelab/server"
)

// fakeRunner answers a fixed order and counts calls.
type fakeRunner struct {
	calls atomic.Int32

	mu    sync.Mutex
	last  autgroup.Request
	err   error
	delay time.Duration
}

func (f *fakeRunner) set(err error, delay time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err, f.delay = err, delay
}

func (f *fakeRunner) lastRequest() autgroup.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func (f *fakeRunner) Run(ctx context.Context, req autgroup.Request) (autgroup.Result, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.last = req
	err, delay := f.err, f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return autgroup.Result{}, ctx.Err()
		}
	}
	if err != nil {
		return autgroup.Result{}, err
	}
	order, gens := int64(120), 3
	orbits := make([]int, req.N)

	return autgroup.Result{Order: &order, NumGenerators: &gens, Orbits: orbits}, nil
}

type harness struct {
	t      *testing.T
	srv    *httptest.Server
	runner *fakeRunner
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.AutGroup.Timeout = 200 * time.Millisecond
	runner := &fakeRunner{}
	s, err := server.New(cfg, runner, zerolog.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)

	return &harness{t: t, srv: srv, runner: runner}
}

// do sends body (nil, a string or a value to marshal) and decodes the
// response into out when out is non-nil.
func (h *harness) do(method, path string, body any, out any) int {
	h.t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(h.t, err)
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, h.srv.URL+path, rd)
	require.NoError(h.t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(h.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(h.t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

type snapshot struct {
	ID        string      `json:"id"`
	Revision  uint64      `json:"revision"`
	N         int         `json:"n"`
	Dim       int         `json:"dim"`
	Points    [][]float64 `json:"points"`
	Eta       float64     `json:"eta"`
	Potential struct {
		Kind  string  `json:"kind"`
		Param float64 `json:"param"`
	} `json:"potential"`
	Step          int     `json:"step"`
	Energy        float64 `json:"energy"`
	NearConverged bool    `json:"near_converged"`
	Taken         int     `json:"taken"`
	History       []struct {
		Step int `json:"step"`
	} `json:"history"`
}

func (h *harness) create(body any) snapshot {
	h.t.Helper()
	var snap snapshot
	require.Equal(h.t, http.StatusCreated, h.do(http.MethodPost, "/sessions", body, &snap))
	require.NotEmpty(h.t, snap.ID)

	return snap
}

func TestCreateAndGet(t *testing.T) {
	h := newHarness(t)

	snap := h.create(nil)
	assert.Equal(t, 24, snap.N)
	assert.Equal(t, 3, snap.Dim)
	assert.Equal(t, 0.01, snap.Eta)
	assert.Equal(t, "riesz", snap.Potential.Kind)
	assert.Len(t, snap.Points, 24)

	custom := h.create(map[string]any{
		"n": 8, "dim": 4, "eta": 0.05, "seed": 7,
		"potential": map[string]any{"kind": "power", "param": 2},
	})
	assert.Equal(t, 8, custom.N)
	assert.Equal(t, 4, custom.Dim)
	assert.Equal(t, "power", custom.Potential.Kind)

	var got snapshot
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/sessions/"+custom.ID, nil, &got))
	assert.Equal(t, custom.Points, got.Points)
}

func TestCreate_Validation(t *testing.T) {
	h := newHarness(t)
	for name, body := range map[string]any{
		"bad eta":       map[string]any{"eta": -1},
		"bad dim":       map[string]any{"dim": 1},
		"bad potential": map[string]any{"potential": map[string]any{"kind": "coulomb"}},
		"bad riesz s":   map[string]any{"potential": map[string]any{"kind": "riesz", "param": 0}},
		"unknown field": map[string]any{"points": 3},
		"not json":      "{",
	} {
		t.Run(name, func(t *testing.T) {
			var e struct{ Error string }
			assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/sessions", body, &e))
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestUnknownSession(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/sessions/nope", nil, nil))
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodPost, "/sessions/nope/step", nil, nil))
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/sessions/nope/structure", nil, nil))
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodDelete, "/sessions/nope", nil, nil))
}

func TestStep(t *testing.T) {
	h := newHarness(t)
	id := h.create(map[string]any{"n": 6, "seed": 1}).ID

	var snap snapshot
	require.Equal(t, http.StatusOK, h.do(http.MethodPost, "/sessions/"+id+"/step", map[string]any{"k": 50}, &snap))
	assert.Equal(t, 10, snap.Taken, "capped per call")
	assert.Equal(t, 10, snap.Step)

	require.Equal(t, http.StatusOK, h.do(http.MethodPost, "/sessions/"+id+"/step", nil, &snap))
	assert.Equal(t, 1, snap.Taken, "empty body takes one step")
	assert.Equal(t, 11, snap.Step)

	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/sessions/"+id+"/step", map[string]any{"k": -1}, nil))
}

func TestMutations(t *testing.T) {
	h := newHarness(t)
	id := h.create(map[string]any{"n": 6, "seed": 1}).ID
	base := "/sessions/" + id

	var snap snapshot
	require.Equal(t, http.StatusOK, h.do(http.MethodPut, base+"/eta", map[string]any{"eta": 0.2}, &snap))
	assert.Equal(t, 0.2, snap.Eta)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPut, base+"/eta", map[string]any{"eta": 0}, nil))
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPut, base+"/eta", nil, nil))

	require.Equal(t, http.StatusOK, h.do(http.MethodPut, base+"/n", map[string]any{"n": 1000}, &snap))
	assert.Equal(t, 200, snap.N)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPut, base+"/n", map[string]any{}, nil))

	require.Equal(t, http.StatusOK, h.do(http.MethodPut, base+"/potential", map[string]any{"kind": "log"}, &snap))
	assert.Equal(t, "log", snap.Potential.Kind)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPut, base+"/potential", map[string]any{"kind": "yukawa"}, nil))

	require.Equal(t, http.StatusOK, h.do(http.MethodPost, base+"/step", map[string]any{"k": 5}, &snap))
	require.Equal(t, http.StatusOK, h.do(http.MethodPost, base+"/reset-step", nil, &snap))
	assert.Zero(t, snap.Step)
	require.Equal(t, http.StatusOK, h.do(http.MethodDelete, base+"/history", nil, &snap))
	assert.Len(t, snap.History, 1)

	var randomized snapshot
	require.Equal(t, http.StatusOK, h.do(http.MethodPost, base+"/randomize", nil, &randomized))
	assert.Len(t, randomized.Points, len(snap.Points))
	assert.NotEqual(t, snap.Points, randomized.Points)
	assert.Greater(t, randomized.Revision, snap.Revision)
	snap = randomized

	require.Equal(t, http.StatusOK, h.do(http.MethodPut, base+"/potential", map[string]any{"kind": "riesz", "param": 1}, nil))
	require.Equal(t, http.StatusOK, h.do(http.MethodPut, base+"/points",
		map[string]any{"points": [][]float64{{1, 0, 0}, {-1, 0, 0}}}, &snap))
	assert.Equal(t, 2, snap.N)
	assert.InDelta(t, 0.5, snap.Energy, 1e-12)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPut, base+"/points",
		map[string]any{"points": [][]float64{{1, 0, 0}, {0, 1}}}, nil))
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPut, base+"/points",
		map[string]any{"platonic": "torus"}, nil))
}

func TestStructure(t *testing.T) {
	h := newHarness(t)
	id := h.create(nil).ID
	base := "/sessions/" + id
	require.Equal(t, http.StatusOK, h.do(http.MethodPut, base+"/points", map[string]any{"platonic": "icosahedron"}, nil))

	type structureBody struct {
		Revision uint64 `json:"revision"`
		Summary  struct {
			Layer struct {
				K      int   `json:"k"`
				Counts []int `json:"counts"`
			} `json:"layer"`
			Contact struct {
				Edges [][2]int `json:"edges"`
			} `json:"contact"`
		} `json:"summary"`
		Degrees struct {
			Regular bool    `json:"regular"`
			Mean    float64 `json:"mean"`
		} `json:"degrees"`
		Components [][]int `json:"components"`
		Spectrum   *struct {
			Rank int `json:"rank"`
		} `json:"spectrum"`
	}

	var first, second structureBody
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, base+"/structure", nil, &first))
	assert.Equal(t, 3, first.Summary.Layer.K)
	assert.Equal(t, []int{6, 30, 30}, first.Summary.Layer.Counts)
	assert.Len(t, first.Summary.Contact.Edges, 30)
	assert.True(t, first.Degrees.Regular)
	assert.Equal(t, 5.0, first.Degrees.Mean)
	assert.Len(t, first.Components, 1)
	assert.Nil(t, first.Spectrum)

	require.Equal(t, http.StatusOK, h.do(http.MethodGet, base+"/structure", nil, &second))
	assert.Equal(t, first, second)

	var withSpectrum structureBody
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, base+"/structure?spectrum=true", nil, &withSpectrum))
	require.NotNil(t, withSpectrum.Spectrum)
	assert.Equal(t, 3, withSpectrum.Spectrum.Rank)

	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, base+"/structure?tol=abc", nil, nil))
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, base+"/structure?tol=-1", nil, nil))
}

func TestDesign(t *testing.T) {
	h := newHarness(t)
	id := h.create(nil).ID
	base := "/sessions/" + id
	require.Equal(t, http.StatusOK, h.do(http.MethodPut, base+"/points", map[string]any{"platonic": "icosahedron"}, nil))

	assert.Equal(t, http.StatusConflict, h.do(http.MethodGet, base+"/design", nil, nil))

	var body struct {
		Report struct {
			Strength int       `json:"strength"`
			S        []float64 `json:"s"`
		} `json:"report"`
	}
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, base+"/design?force=true&kmax=8", nil, &body))
	assert.Equal(t, 5, body.Report.Strength)
	assert.Len(t, body.Report.S, 8)

	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, base+"/design?force=true&kmax=0", nil, nil))
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, base+"/design?force=maybe", nil, nil))
}

func TestAutGroup(t *testing.T) {
	h := newHarness(t)
	id := h.create(nil).ID
	base := "/sessions/" + id
	require.Equal(t, http.StatusOK, h.do(http.MethodPut, base+"/points", map[string]any{"platonic": "icosahedron"}, nil))

	var body struct {
		N      int `json:"n"`
		Edges  int `json:"edges"`
		Result struct {
			Order         *int64 `json:"order"`
			NumGenerators *int   `json:"num_generators"`
		} `json:"result"`
	}
	require.Equal(t, http.StatusOK, h.do(http.MethodPost, base+"/autgroup", nil, &body))
	assert.Equal(t, 12, body.N)
	assert.Equal(t, 30, body.Edges)
	require.NotNil(t, body.Result.Order)
	assert.EqualValues(t, 120, *body.Result.Order)
	assert.Equal(t, 12, h.runner.lastRequest().N)

	require.Equal(t, http.StatusOK, h.do(http.MethodPost, base+"/autgroup", nil, nil))
	assert.EqualValues(t, 1, h.runner.calls.Load(), "same revision is served from the cache")
}

func TestAutGroup_Failures(t *testing.T) {
	h := newHarness(t)
	id := h.create(map[string]any{"n": 5, "seed": 3}).ID
	base := "/sessions/" + id

	h.runner.set(errors.New("pynauty missing"), 0)
	var e struct{ Error string }
	assert.Equal(t, http.StatusBadGateway, h.do(http.MethodPost, base+"/autgroup", nil, &e))
	assert.Contains(t, e.Error, "pynauty missing")

	h.runner.set(nil, 5*time.Second)
	assert.Equal(t, http.StatusBadGateway, h.do(http.MethodPost, base+"/autgroup", nil, nil), "timeout")
}

func TestDelete(t *testing.T) {
	h := newHarness(t)
	id := h.create(nil).ID
	assert.Equal(t, http.StatusNoContent, h.do(http.MethodDelete, "/sessions/"+id, nil, nil))
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/sessions/"+id, nil, nil))
}

func TestHealthAndMetrics(t *testing.T) {
	h := newHarness(t)
	h.create(nil)

	var health struct {
		Status   string `json:"status"`
		Sessions int    `json:"sessions"`
	}
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/healthz", nil, &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 1, health.Sessions)

	resp, err := http.Get(h.srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "spherelab_sessions")
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.CacheSize = 0
	_, err := server.New(cfg, nil, zerolog.Nop())
	assert.ErrorIs(t, err, config.ErrInvalid)
}
