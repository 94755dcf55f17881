// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/spherelab/autgroup"
	"github.com/katalvlaran/spherelab/design"
	"github.com/katalvlaran/spherelab/internal/metrics"
	"github.com/katalvlaran/spherelab/optim"
	"github.com/katalvlaran/spherelab/session"
	"github.com/katalvlaran/spherelab/sphere"
	"github.com/katalvlaran/spherelab/structure"
)

type createRequest struct {
	N         *int                   `json:"n"`
	Dim       *int                   `json:"dim"`
	Eta       *float64               `json:"eta"`
	Potential *session.PotentialSpec `json:"potential"`
	Seed      *uint64                `json:"seed"`
}

type stepRequest struct {
	K *int `json:"k"`
}

type stepResponse struct {
	Taken int `json:"taken"`
	session.Snapshot
}

type etaRequest struct {
	Eta *float64 `json:"eta"`
}

type nRequest struct {
	N *int `json:"n"`
}

type pointsRequest struct {
	Points   sphere.PointSet `json:"points"`
	Platonic string          `json:"platonic"`
}

type structureResponse struct {
	ID         string                `json:"id"`
	Revision   uint64                `json:"revision"`
	Summary    structure.Summary     `json:"summary"`
	Degrees    structure.DegreeStats `json:"degrees"`
	Components [][]int               `json:"components"`
	Spectrum   *structure.Spectrum   `json:"spectrum,omitempty"`
}

type designResponse struct {
	ID            string        `json:"id"`
	Revision      uint64        `json:"revision"`
	NearConverged bool          `json:"near_converged"`
	Report        design.Report `json:"report"`
}

type autgroupResponse struct {
	ID       string          `json:"id"`
	Revision uint64          `json:"revision"`
	N        int             `json:"n"`
	Edges    int             `json:"edges"`
	Result   autgroup.Result `json:"result"`
}

func (s *Server) lookup(r *http.Request) (*session.Session, error) {
	return s.reg.Get(chi.URLParam(r, "id"))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "sessions": s.reg.Len()})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := s.createOptions(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, err := session.New(opts...)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.reg.Add(sess)
	s.writeJSON(w, http.StatusCreated, sess.Snapshot())
}

// createOptions validates req before building options, whose constructors
// panic on bad values.
func (s *Server) createOptions(req createRequest) ([]session.Option, error) {
	opts := []session.Option{
		session.WithLogger(s.log),
		session.WithN(s.cfg.Session.DefaultN),
		session.WithEta(s.cfg.Session.Eta),
		session.WithMaxStepsPerCall(s.cfg.Session.MaxStepsPerCall),
	}
	if req.N != nil {
		opts = append(opts, session.WithN(*req.N))
	}
	if req.Dim != nil {
		if *req.Dim < 2 {
			return nil, fmt.Errorf("dim=%d: %w", *req.Dim, session.ErrDimensionTooSmall)
		}
		opts = append(opts, session.WithDim(*req.Dim))
	}
	if req.Eta != nil {
		if !(*req.Eta > 0) || math.IsInf(*req.Eta, 1) {
			return nil, fmt.Errorf("eta=%g: %w", *req.Eta, optim.ErrBadStepSize)
		}
		opts = append(opts, session.WithEta(*req.Eta))
	}
	if req.Potential != nil {
		p, err := req.Potential.Potential()
		if err != nil {
			return nil, err
		}
		opts = append(opts, session.WithPotential(p))
	}
	if req.Seed != nil {
		opts = append(opts, session.WithSeed(*req.Seed))
	}

	return opts, nil
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookup(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.reg.Remove(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookup(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req stepRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	k := 1
	if req.K != nil {
		k = *req.K
	}
	taken, err := sess.Advance(k)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stepResponse{Taken: taken, Snapshot: sess.Snapshot()})
}

func (s *Server) handleRandomize(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(sess *session.Session) error { return sess.Randomize() })
}

func (s *Server) handleResetStep(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(sess *session.Session) error {
		sess.ResetStepCounter()
		return nil
	})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(sess *session.Session) error {
		sess.ClearHistory()
		return nil
	})
}

func (s *Server) handleSetPotential(w http.ResponseWriter, r *http.Request) {
	var req session.PotentialSpec
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mutate(w, r, func(sess *session.Session) error {
		p, err := req.Potential()
		if err != nil {
			return err
		}
		return sess.SetPotential(p)
	})
}

func (s *Server) handleSetEta(w http.ResponseWriter, r *http.Request) {
	var req etaRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mutate(w, r, func(sess *session.Session) error {
		if req.Eta == nil {
			return fmt.Errorf("eta is required: %w", ErrBadRequest)
		}
		return sess.SetEta(*req.Eta)
	})
}

func (s *Server) handleSetN(w http.ResponseWriter, r *http.Request) {
	var req nRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mutate(w, r, func(sess *session.Session) error {
		if req.N == nil {
			return fmt.Errorf("n is required: %w", ErrBadRequest)
		}
		_, err := sess.SetN(*req.N)
		return err
	})
}

func (s *Server) handleSetPoints(w http.ResponseWriter, r *http.Request) {
	var req pointsRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mutate(w, r, func(sess *session.Session) error {
		ps := req.Points
		if req.Platonic != "" {
			name, err := sphere.ParsePlatonic(req.Platonic)
			if err != nil {
				return err
			}
			if ps, err = sphere.Platonic(name); err != nil {
				return err
			}
		}
		return sess.SetPoints(ps)
	})
}

// mutate applies fn to the addressed session and answers its snapshot.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	sess, err := s.lookup(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := fn(sess); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleStructure(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookup(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	tol, err := queryFloat(r, "tol", s.cfg.Analysis.StructureTol)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	spectrum, err := queryBool(r, "spectrum")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp, err := s.structure(r.Context(), sess, tol, spectrum)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// structure returns the cached structure analysis of the session's current
// revision, computing it on a miss.
func (s *Server) structure(ctx context.Context, sess *session.Session, tol float64, spectrum bool) (structureResponse, error) {
	key := cacheKey(sess.ID(), sess.Revision(), "structure", tol, spectrum)
	if v, ok := s.cache.get(key); ok {
		return v.(structureResponse), nil
	}

	a, err := sess.Analyze(ctx, session.AnalyzeOptions{
		StructureTol: tol,
		SkipDesign:   true,
		Spectrum:     spectrum,
	})
	if err != nil {
		return structureResponse{}, err
	}
	resp := structureResponse{
		ID:         a.ID,
		Revision:   a.Revision,
		Summary:    a.Structure,
		Degrees:    a.Degrees,
		Components: a.Structure.Contact.Components(),
		Spectrum:   a.Spectrum,
	}
	s.cache.add(cacheKey(a.ID, a.Revision, "structure", tol, spectrum), resp)

	return resp, nil
}

func (s *Server) handleDesign(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookup(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kmax, err := queryInt(r, "kmax", s.cfg.Analysis.DesignKMax)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	tol, err := queryFloat(r, "tol", s.cfg.Analysis.DesignTol)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	force, err := queryBool(r, "force")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if kmax < 1 {
		s.writeError(w, r, fmt.Errorf("kmax=%d: %w", kmax, design.ErrBadKMax))
		return
	}
	if !(tol > 0) || math.IsInf(tol, 1) {
		s.writeError(w, r, fmt.Errorf("tol=%g: %w", tol, design.ErrBadTolerance))
		return
	}

	opts := session.AnalyzeOptions{
		DesignKMax:         kmax,
		DesignTol:          tol,
		RequireConvergence: true,
		Force:              force,
	}
	snap := sess.Snapshot()
	if !opts.DesignAllowed(snap.NearConverged) {
		s.writeError(w, r, fmt.Errorf("step %d, streak %d: %w", snap.Step, snap.Streak, ErrNotConverged))
		return
	}

	key := cacheKey(snap.ID, snap.Revision, "design", kmax, tol)
	if v, ok := s.cache.get(key); ok {
		s.writeJSON(w, http.StatusOK, v)
		return
	}
	a, err := sess.Analyze(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if a.Design == nil {
		s.writeError(w, r, fmt.Errorf("revision %d: %w", a.Revision, ErrNotConverged))
		return
	}
	resp := designResponse{ID: a.ID, Revision: a.Revision, NearConverged: a.NearConverged, Report: *a.Design}
	s.cache.add(cacheKey(a.ID, a.Revision, "design", kmax, tol), resp)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAutGroup(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookup(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	tol, err := queryFloat(r, "tol", s.cfg.Analysis.StructureTol)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	st, err := s.structure(r.Context(), sess, tol, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := cacheKey(st.ID, st.Revision, "autgroup", tol)
	if v, ok := s.cache.get(key); ok {
		s.writeJSON(w, http.StatusOK, v)
		return
	}
	req := autgroup.FromGraph(st.Summary.Contact)
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.AutGroup.Timeout)
	defer cancel()

	res, err := s.runner.Run(ctx, req)
	switch {
	case err == nil:
		metrics.AutGroupCalls.WithLabelValues(metrics.OutcomeOK).Inc()
	case errors.Is(err, context.DeadlineExceeded):
		metrics.AutGroupCalls.WithLabelValues(metrics.OutcomeTimeout).Inc()
	default:
		metrics.AutGroupCalls.WithLabelValues(metrics.OutcomeError).Inc()
	}
	if err != nil {
		if !errors.Is(err, autgroup.ErrBadRequest) {
			err = fmt.Errorf("%w: %w", ErrCollaborator, err)
		}
		s.writeError(w, r, err)
		return
	}

	resp := autgroupResponse{
		ID:       st.ID,
		Revision: st.Revision,
		N:        req.N,
		Edges:    len(req.Edges),
		Result:   res,
	}
	s.cache.add(key, resp)
	s.writeJSON(w, http.StatusOK, resp)
}
