package audit

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/contrast"
	"github.com/alexisbeaulieu97/fluidcss/internal/logger"
)

// Pair is one color combination to check, as written by the user.
type Pair struct {
	Name       string
	Background string
	Foreground string
	Target     float64
}

// Finding is the audit outcome for one pair. Err is set when the pair could
// not be checked at all; a missed target is reported through Result.
type Finding struct {
	Name     string                    `json:"name"`
	Query    contrast.ComplianceQuery  `json:"query"`
	Before   contrast.Compliance       `json:"before"`
	Result   contrast.ComplianceResult `json:"result"`
	After    contrast.Compliance       `json:"after"`
	Distance float64                   `json:"distance"`
	Err      error                     `json:"-"`
}

// Passed reports whether the original foreground already met the target.
func (f Finding) Passed() bool {
	return f.Err == nil && f.Result.MetTarget && f.Result.Steps == 0
}

// Service checks many pairs concurrently. Each goroutine writes only its own
// slot of the result slice.
type Service struct {
	log   *logger.Logger
	limit int
}

// NewService creates an audit service. limit <= 0 uses GOMAXPROCS.
func NewService(log *logger.Logger, limit int) *Service {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return &Service{log: log, limit: limit}
}

// Audit solves every pair and returns findings in input order.
func (s *Service) Audit(ctx context.Context, pairs []Pair) ([]Finding, error) {
	findings := make([]Finding, len(pairs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.limit)
	for i, pair := range pairs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			findings[i] = s.check(pair)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, f := range findings {
		if f.Err != nil || !f.Result.MetTarget {
			failed++
		}
	}
	s.log.WithFields(map[string]any{"pairs": len(pairs), "unresolved": failed}).Debug("audit complete")

	return findings, nil
}

func (s *Service) check(pair Pair) Finding {
	finding := Finding{Name: pair.Name}

	q, err := contrast.NewQuery(pair.Background, pair.Foreground, pair.Target)
	if err != nil {
		finding.Err = err
		s.log.WithFields(map[string]any{"pair": pair.Name}).Error(err, "skipping color pair")
		return finding
	}
	finding.Query = q
	finding.Before = contrast.EvaluatePair(q.Background, q.Foreground)

	res, err := contrast.Solve(q)
	if err != nil {
		finding.Err = err
		s.log.WithFields(map[string]any{"pair": pair.Name}).Error(err, "skipping color pair")
		return finding
	}
	finding.Result = res
	finding.After = contrast.Evaluate(res.AchievedRatio)
	finding.Distance = contrast.Distance(q.Foreground, res.AchievedColor)
	return finding
}
