package calc

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/buffcalc/internal/model"
)

// DefaultWorkers is used by EvaluateAll when workers <= 0.
const DefaultWorkers = 4

// NamedState is one build in a batch.
type NamedState struct {
	Name  string
	State model.State
}

// EvaluateAll computes a Report for every build, at most workers at a time.
// Results keep the input order. The first failure cancels the remaining builds.
func EvaluateAll(ctx context.Context, defaults []model.DefaultBuff, builds []NamedState, opts Options, workers int) ([]Report, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	reports := make([]Report, len(builds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, b := range builds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Calculate(defaults, b.State, opts)
			if err != nil {
				return fmt.Errorf("build %q: %w", b.Name, err)
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
