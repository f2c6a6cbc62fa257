// Package engine is the facade over the deterministic critique heuristics:
// normalization, structure extraction, keyword mining, ATS scoring,
// fallback synthesis and validation/repair. An Engine is immutable after
// construction and safe for arbitrary concurrent use; every operation is a
// pure function of its inputs and the engine's library.
package engine

import (
	"github.com/jonathan/resume-critic/internal/ats"
	"github.com/jonathan/resume-critic/internal/fallback"
	"github.com/jonathan/resume-critic/internal/keywords"
	"github.com/jonathan/resume-critic/internal/repair"
	"github.com/jonathan/resume-critic/internal/structure"
	"github.com/jonathan/resume-critic/internal/textnorm"
	"github.com/jonathan/resume-critic/internal/types"
)

// Engine holds the long-lived, read-only configuration: the keyword
// library and its stop-word sets. Construct once at startup with New.
type Engine struct {
	lib *keywords.Library
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLibrary substitutes the keyword library; tests use this to run
// against a smaller curated set.
func WithLibrary(lib *keywords.Library) Option {
	return func(e *Engine) {
		if lib != nil {
			e.lib = lib
		}
	}
}

// New constructs an Engine with the default curated library.
func New(opts ...Option) *Engine {
	e := &Engine{lib: keywords.NewLibrary()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Normalize canonicalizes whitespace, line endings and bullet glyphs.
func (e *Engine) Normalize(text string) string {
	return textnorm.Normalize(text)
}

// ExtractStructure derives layout signals from normalized resume text.
func (e *Engine) ExtractStructure(normalizedResume string) *types.StructureSignals {
	return structure.Extract(normalizedResume)
}

// ExtractKeywords returns up to limit ranked canonical keyphrases for the
// job and resume text.
func (e *Engine) ExtractKeywords(jobText, resumeText string, limit int) []string {
	return keywords.Extract(e.lib, jobText, resumeText, limit)
}

// ComputeATSSignals derives ATS risk metrics, warnings and the summary
// insight card. structSignals may be nil.
func (e *Engine) ComputeATSSignals(resumeText, jobText string, structSignals *types.StructureSignals) (*types.AtsSignals, []string, types.InsightCard) {
	return ats.Compute(e.lib, resumeText, jobText, structSignals)
}

// SynthesizeFallback produces a complete critique from heuristics alone.
func (e *Engine) SynthesizeFallback(resumeText string, hasJobText bool, jobText string) *types.Critique {
	return fallback.Synthesize(e.lib, resumeText, hasJobText, jobText)
}

// ValidateAndRepair coerces any candidate critique into the canonical
// schema. It is total: any input, including nil, yields a valid critique.
func (e *Engine) ValidateAndRepair(candidate any, resumeText, jobText string) *types.Critique {
	return repair.ValidateAndRepair(e.lib, candidate, resumeText, jobText)
}
