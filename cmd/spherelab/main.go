// SPDX-License-Identifier: MIT

// Command spherelab serves the session API or runs one headless
// optimisation.
//
//	spherelab serve
//	spherelab run -n 12 -steps 5000 -potential riesz -param 1 -eta 0.01 -seed 7
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/spherelab/internal/config"
	"github.com/katalvlaran/spherelab/internal/logging"
	"github.com/katalvlaran/spherelab/optim"
	"github.com/katalvlaran/spherelab/potential"
	"github.com/katalvlaran/spherelab/server"
	"github.com/katalvlaran/spherelab/session"
	"github.com/katalvlaran/spherelab/structure"
)

const usage = `usage: spherelab <command> [flags]

commands:
  serve   start the HTTP API (configured from the environment / .env)
  run     optimise one configuration headlessly and print a JSON summary
`

var errUsage = errors.New("spherelab: usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("spherelab")
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.Log, stderr); err != nil {
		return err
	}

	switch args[0] {
	case "serve":
		return serve(ctx, cfg)
	case "run":
		return headless(ctx, cfg, args[1:], stdout, stderr)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	srv, err := server.New(cfg, nil, log.Logger)
	if err != nil {
		return err
	}

	return srv.ListenAndServe(ctx)
}

// summary is the JSON printed by the run command.
type summary struct {
	N             int                    `json:"n"`
	Dim           int                    `json:"dim"`
	Potential     session.PotentialSpec  `json:"potential"`
	Eta           float64                `json:"eta"`
	Steps         int                    `json:"steps"`
	NearConverged bool                   `json:"near_converged"`
	Energy        float64                `json:"energy"`
	MinDist       float64                `json:"min_dist"`
	Layers        structure.LayerSummary `json:"layers"`
	ContactEdges  int                    `json:"contact_edges"`
	Degrees       structure.DegreeStats  `json:"contact_degrees"`
	Strength      int                    `json:"design_strength"`
	Moments       []float64              `json:"design_moments"`
}

func headless(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", cfg.Session.DefaultN, "number of points")
	dim := fs.Int("dim", session.DefaultDim, "ambient dimension")
	steps := fs.Int("steps", 5000, "step budget")
	kind := fs.String("potential", potential.KindRiesz, "riesz | log | power | pframe")
	param := fs.Float64("param", 1, "potential parameter (s or p)")
	eta := fs.Float64("eta", cfg.Session.Eta, "step size")
	seed := fs.Uint64("seed", 0, "random seed (0: from the clock)")
	tol := fs.Float64("tol", cfg.Analysis.StructureTol, "layer gap tolerance")
	kmax := fs.Int("kmax", cfg.Analysis.DesignKMax, "highest design degree")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dim < 2 {
		return fmt.Errorf("-dim %d: %w", *dim, session.ErrDimensionTooSmall)
	}
	if *steps < 0 {
		return fmt.Errorf("-steps %d: must be >= 0", *steps)
	}
	if !(*eta > 0) || math.IsInf(*eta, 1) {
		return fmt.Errorf("-eta %g: %w", *eta, optim.ErrBadStepSize)
	}
	pot, err := potential.Parse(*kind, *param)
	if err != nil {
		return err
	}

	opts := []session.Option{
		session.WithLogger(log.Logger),
		session.WithN(*n),
		session.WithDim(*dim),
		session.WithEta(*eta),
		session.WithPotential(pot),
		session.WithMaxStepsPerCall(cfg.Session.MaxStepsPerCall),
	}
	if *seed != 0 {
		opts = append(opts, session.WithSeed(*seed))
	}
	s, err := session.New(opts...)
	if err != nil {
		return err
	}

	for left := *steps; left > 0 && !s.Snapshot().NearConverged; {
		if err := ctx.Err(); err != nil {
			return err
		}
		taken, err := s.Advance(left)
		if err != nil {
			return err
		}
		left -= taken
	}

	a, err := s.Analyze(ctx, session.AnalyzeOptions{
		StructureTol: *tol,
		DesignKMax:   *kmax,
		DesignTol:    cfg.Analysis.DesignTol,
		Force:        true,
	})
	if err != nil {
		return err
	}
	snap := s.Snapshot()
	out := summary{
		N:             snap.N,
		Dim:           snap.Dim,
		Potential:     snap.Potential,
		Eta:           snap.Eta,
		Steps:         snap.Step,
		NearConverged: snap.NearConverged,
		Energy:        snap.Energy,
		MinDist:       snap.MinDist,
		Layers:        a.Structure.Layer,
		ContactEdges:  len(a.Structure.Contact.Edges),
		Degrees:       a.Degrees,
	}
	if a.Design != nil {
		out.Strength = a.Design.Strength
		out.Moments = a.Design.S
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
