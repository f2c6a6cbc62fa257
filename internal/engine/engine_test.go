package engine

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-critic/internal/keywords"
	"github.com/jonathan/resume-critic/internal/schemas"
)

const sampleResume = `SUMMARY
Operations leader with vendor management experience.

EXPERIENCE
Director, Acme Corp    Jan 2019 - Mar 2024
• Led a team of 12
• Reduced costs by 30%
• Built Tableau dashboards

SKILLS
SQL, Tableau

EDUCATION
B.S., State University, 2010`

const sampleJob = "Globex is seeking a Director of Operations with budget ownership, forecasting and vendor management experience."

func TestEngine_PipelineEndToEnd(t *testing.T) {
	eng := New()

	normalized := eng.Normalize(sampleResume)
	structSignals := eng.ExtractStructure(normalized)
	assert.Empty(t, structSignals.MissingCoreSections)

	kws := eng.ExtractKeywords(sampleJob, normalized, keywords.GenerationLimit)
	assert.NotEmpty(t, kws)

	signals, warnings, card := eng.ComputeATSSignals(normalized, sampleJob, structSignals)
	assert.NotNil(t, signals.KeywordOverlap)
	assert.NotNil(t, warnings)
	assert.NotEmpty(t, card.Title)

	critique := eng.ValidateAndRepair(nil, sampleResume, sampleJob)
	require.NotNil(t, critique)
	assert.NotEmpty(t, critique.Categories)
}

func TestEngine_Deterministic(t *testing.T) {
	eng := New()

	first := eng.ValidateAndRepair(nil, sampleResume, sampleJob)
	second := eng.ValidateAndRepair(nil, sampleResume, sampleJob)

	assert.Equal(t, first, second)
}

func TestEngine_OutputSatisfiesSchema(t *testing.T) {
	eng := New()

	for _, job := range []string{"", sampleJob} {
		critique := eng.ValidateAndRepair(nil, sampleResume, job)

		data, err := json.Marshal(critique)
		require.NoError(t, err)
		assert.NoError(t, schemas.ValidateCritiqueJSON(string(data)))
	}
}

func TestEngine_ConcurrentUse(t *testing.T) {
	eng := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			critique := eng.ValidateAndRepair(nil, sampleResume, sampleJob)
			assert.NotNil(t, critique)
		}()
	}
	wg.Wait()
}

func TestEngine_WithLibraryOption(t *testing.T) {
	lib := keywords.NewLibrary()
	eng := New(WithLibrary(lib))

	assert.NotNil(t, eng.ValidateAndRepair(nil, sampleResume, ""))
}
