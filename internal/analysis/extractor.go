package analysis

import "github.com/candidly-dev/candidly/internal/audio"

// Extractor derives Metrics for one recorded answer. Implementations may
// fail; the Analyzer owns the fallback policy.
type Extractor interface {
	Extract(path, transcript string) (Metrics, error)
}

// SignalExtractor runs the full waveform analysis: decode, feature
// extraction, score mapping. Fails when the file cannot be decoded.
type SignalExtractor struct{}

func (SignalExtractor) Extract(path, _ string) (Metrics, error) {
	clip, err := audio.Decode(path)
	if err != nil {
		return Metrics{}, err
	}
	return scoreFeatures(extractFeatures(clip)), nil
}

// HeuristicExtractor scores from file metadata and the transcript alone.
// It accepts any input, including a missing file and an empty transcript.
type HeuristicExtractor struct{}

func (HeuristicExtractor) Extract(path, transcript string) (Metrics, error) {
	return heuristicMetrics(audio.ProbeDuration(path), transcript), nil
}

// Analyzer is the public entry point for answer analysis. It tries the
// signal extractor first and falls back to the heuristic one, so callers
// always receive a Metrics record, never an error.
type Analyzer struct {
	primary  Extractor
	fallback Extractor
}

// NewAnalyzer builds an Analyzer with the standard signal-then-heuristic
// extractor chain.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		primary:  SignalExtractor{},
		fallback: HeuristicExtractor{},
	}
}

// Analyze scores one recorded answer. A failed record (Err set, zero
// scores) is returned only when both extractors fail, which the standard
// chain cannot do.
func (a *Analyzer) Analyze(path, transcript string) Metrics {
	if m, err := a.primary.Extract(path, transcript); err == nil {
		return m
	}
	m, err := a.fallback.Extract(path, transcript)
	if err != nil {
		return failedMetrics(err.Error())
	}
	return m
}
