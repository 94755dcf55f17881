// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spherelab/design"
	"github.com/katalvlaran/spherelab/internal/metrics"
	"github.com/katalvlaran/spherelab/structure"
)

// DesignAllowed reports whether opts admit a design estimate for a session
// whose near-converged flag is near.
func (o AnalyzeOptions) DesignAllowed(near bool) bool {
	if o.SkipDesign {
		return false
	}

	return o.Force || !o.RequireConvergence || near
}

func (o AnalyzeOptions) withDefaults() AnalyzeOptions {
	if o.StructureTol == 0 {
		o.StructureTol = structure.DefaultTol
	}
	if o.DesignKMax == 0 {
		o.DesignKMax = design.DefaultKMax
	}
	if o.DesignTol == 0 {
		o.DesignTol = design.DefaultTol
	}

	return o
}

// Analyze runs structure analysis and, when allowed, the design estimate on
// one snapshot. The jobs run concurrently off the session lock; the first
// error cancels the rest.
func (s *Session) Analyze(ctx context.Context, opts AnalyzeOptions) (Analysis, error) {
	opts = opts.withDefaults()
	snap := s.Snapshot()

	a := Analysis{ID: snap.ID, Revision: snap.Revision, NearConverged: snap.NearConverged}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		sum, err := structure.Analyze(snap.Points, opts.StructureTol)
		if err != nil {
			return err
		}
		a.Structure = sum
		a.Degrees = structure.DegreeSummary(sum.Contact.Degrees)
		metrics.ObserveAnalysis(metrics.KindStructure, time.Since(start))

		return nil
	})
	if opts.DesignAllowed(snap.NearConverged) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			r, err := design.Estimate(snap.Points, opts.DesignKMax, opts.DesignTol)
			if err != nil {
				return err
			}
			a.Design = &r
			metrics.ObserveAnalysis(metrics.KindDesign, time.Since(start))

			return nil
		})
	}
	if opts.Spectrum {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			sp, err := structure.GramSpectrum(snap.Points, structure.DefaultRankTol)
			if err != nil {
				return err
			}
			a.Spectrum = &sp
			metrics.ObserveAnalysis(metrics.KindSpectrum, time.Since(start))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Analysis{}, fmt.Errorf("%s: %w", methodAnalyze, err)
	}
	s.log.Debug().
		Uint64("revision", a.Revision).
		Int("layers", a.Structure.Layer.K).
		Bool("design", a.Design != nil).
		Msg("analysed")

	return a, nil
}
