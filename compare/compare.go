package compare

import (
	"errors"

	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/glts"
	"github.com/katalvlaran/lvldiff/match"
	"github.com/katalvlaran/lvldiff/merge"
	"github.com/katalvlaran/lvldiff/rewrite"
	"github.com/katalvlaran/lvldiff/score"
)

// Sentinel errors for comparison configuration and inputs.
var (
	// ErrNoGraphs indicates an empty input list.
	ErrNoGraphs = errors.New("compare: at least one input graph required")

	// ErrNilGraph indicates a nil graph in the input list.
	ErrNilGraph = errors.New("compare: nil input graph")

	// ErrNilCombiner indicates a missing state or transition combiner.
	ErrNilCombiner = errors.New("compare: state and transition combiners are required")
)

// Options configures one comparison run.
//
// States and Trans are required. Scorer, Matcher, and Rewriter are
// optional overrides: a nil Matcher falls back to the size-adaptive
// default (built over Scorer when set, over the adaptive scorer
// otherwise), a nil Rewriter skips post-processing.
type Options[S, T any] struct {
	States combine.Combiner[S]
	Trans  combine.Combiner[T]

	// Score tunes the default scorers; ignored when Scorer is set.
	Score score.Options

	Scorer   score.Scorer[S, T]
	Matcher  match.Matcher[S, T]
	Rewriter rewrite.Rewriter[S, T]
}

// DefaultOptions returns an Options with the two required combiners and
// the documented scoring defaults; scorer, matcher, and rewriter stay on
// their adaptive (or absent) defaults.
func DefaultOptions[S, T any](states combine.Combiner[S], trans combine.Combiner[T]) Options[S, T] {
	return Options[S, T]{States: states, Trans: trans, Score: score.DefaultOptions()}
}

// Compare folds the diff pipeline pairwise, left to right, across the
// input graphs and returns the final merged graph. The inputs are left
// untouched.
func Compare[S, T any](graphs []*glts.Graph[S, T], opts Options[S, T]) (*glts.Graph[S, T], error) {
	if opts.States == nil || opts.Trans == nil {
		return nil, ErrNilCombiner
	}
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}
	for _, g := range graphs {
		if g == nil {
			return nil, ErrNilGraph
		}
	}

	matcher, err := opts.matcher()
	if err != nil {
		return nil, err
	}

	acc := graphs[0].Clone()
	for _, g := range graphs[1:] {
		matching, err := matcher.Compute(acc, g)
		if err != nil {
			return nil, err
		}
		acc, err = merge.Merge(acc, g, matching, opts.States, opts.Trans)
		if err != nil {
			return nil, err
		}
		if opts.Rewriter != nil {
			opts.Rewriter.Rewrite(acc)
		}
	}
	if len(graphs) == 1 && opts.Rewriter != nil {
		opts.Rewriter.Rewrite(acc)
	}

	return acc, nil
}

// matcher resolves the effective matcher for this run.
func (o Options[S, T]) matcher() (match.Matcher[S, T], error) {
	if o.Matcher != nil {
		return o.Matcher, nil
	}
	if o.Scorer == nil {
		return match.NewAdaptive(o.States, o.Trans, o.Score)
	}

	// A caller-supplied scorer still gets the size-adaptive dispatch.
	km, err := match.NewKuhnMunkres(o.Scorer, match.DefaultAcceptThreshold)
	if err != nil {
		return nil, err
	}
	ww, err := match.NewWalkinshaw(o.Scorer, o.States, o.Trans,
		match.DefaultLandmarkThreshold, match.DefaultLandmarkRatio)
	if err != nil {
		return nil, err
	}

	return sized[S, T]{km: km, ww: ww}, nil
}

// sized dispatches a caller-supplied scorer through the match.Select
// policy.
type sized[S, T any] struct {
	km *match.KuhnMunkres[S, T]
	ww *match.Walkinshaw[S, T]
}

func (m sized[S, T]) Compute(l, r *glts.Graph[S, T]) (match.Matching, error) {
	if match.Select(l.Size(), r.Size()) == match.KindKuhnMunkres {
		return m.km.Compute(l, r)
	}

	return m.ww.Compute(l, r)
}
