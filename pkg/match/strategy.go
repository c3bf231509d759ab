package match

// Strategy locates a candidate region for a snippet, or returns nil.
// Strategies are pure: they read the source and never mutate it.
type Strategy interface {
	// Name identifies the strategy in results and logs.
	Name() string

	// Find returns the located candidate, or nil when the strategy
	// cannot place the snippet.
	Find(src Source, snippet string, hint *Hint) *Candidate
}

// Default search parameters. The windowed first pass stays close to the
// hint; the fuzzy last resort ranges much wider because earlier fixes in
// the same session legitimately shift later fixes' expected lines.
const (
	// DefaultWindowRadius is the line radius for the first-pass
	// windowed exact search.
	DefaultWindowRadius = 100

	// DefaultToleranceLines is the tolerance band for accepting global
	// exact and normalized matches near a hint.
	DefaultToleranceLines = 50

	// DefaultFuzzyRadius is the line radius for the fuzzy search.
	DefaultFuzzyRadius = 200

	// DefaultAppliedRadius is the line radius for the hinted
	// already-applied containment check.
	DefaultAppliedRadius = 200
)

// Options carries the tunable search parameters. Score thresholds are
// not tunable; MinScore fixes them per snippet size.
type Options struct {
	WindowRadius   int
	ToleranceLines int
	FuzzyRadius    int
	AppliedRadius  int
}

// DefaultOptions returns the standard search parameters.
func DefaultOptions() Options {
	return Options{
		WindowRadius:   DefaultWindowRadius,
		ToleranceLines: DefaultToleranceLines,
		FuzzyRadius:    DefaultFuzzyRadius,
		AppliedRadius:  DefaultAppliedRadius,
	}
}

// Ladder returns the full strategy ladder in confidence order. The
// driver stops at the first strategy that produces a candidate.
func Ladder(opts Options) []Strategy {
	return []Strategy{
		WindowedExact{Radius: opts.WindowRadius},
		GlobalExact{Tolerance: opts.ToleranceLines},
		Normalized{Tolerance: opts.ToleranceLines},
		FuzzyNearHint{Radius: opts.FuzzyRadius},
	}
}

// PreflightLadder returns the ladder used by read-only viability checks:
// the exact and normalized strategies without the fuzzy fallback.
func PreflightLadder(opts Options) []Strategy {
	return []Strategy{
		WindowedExact{Radius: opts.WindowRadius},
		GlobalExact{Tolerance: opts.ToleranceLines},
		Normalized{Tolerance: opts.ToleranceLines},
	}
}

// Locate runs the strategies in order and returns the first candidate
// found together with the name of the strategy that produced it.
func Locate(src Source, snippet string, hint *Hint, strategies []Strategy) (*Candidate, string) {
	for _, s := range strategies {
		if c := s.Find(src, snippet, hint); c != nil {
			return c, s.Name()
		}
	}
	return nil, ""
}
