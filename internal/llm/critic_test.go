package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns a canned response or error.
type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestBuildPrompt_WithoutJob(t *testing.T) {
	prompt := buildPrompt("resume text here", "")

	assert.Contains(t, prompt, "resume text here")
	assert.Contains(t, prompt, "Keyword Optimization")
	assert.NotContains(t, prompt, "Job Match & Keywords")
	assert.NotContains(t, prompt, "Job Posting:")
}

func TestBuildPrompt_WithJob(t *testing.T) {
	prompt := buildPrompt("resume text here", "job posting here")

	assert.Contains(t, prompt, "job posting here")
	assert.Contains(t, prompt, "Job Match & Keywords")
	assert.NotContains(t, prompt, "Keyword Optimization")
}

func TestCategoryRoster_SixCategoriesEitherWay(t *testing.T) {
	assert.Len(t, categoryRoster(false), 6)
	assert.Len(t, categoryRoster(true), 6)
}

func TestDraft_ParsesValidResponse(t *testing.T) {
	client := &fakeClient{response: `{
		"overall_score": 80,
		"categories": [
			{"name": "Skills", "status": "good", "score": 85,
			 "feedback": "ok", "suggestions": ["s"]}
		],
		"critical_keywords": ["SQL"]
	}`}
	critic := NewCritic(client)

	candidate, schemaValid, err := critic.Draft(context.Background(), "resume", "job")

	require.NoError(t, err)
	assert.True(t, schemaValid)
	assert.Equal(t, 80.0, candidate["overall_score"])
}

func TestDraft_InvalidSchemaStillReturnsCandidate(t *testing.T) {
	client := &fakeClient{response: `{"overall_score": "not a number"}`}
	critic := NewCritic(client)

	candidate, schemaValid, err := critic.Draft(context.Background(), "resume", "")

	require.NoError(t, err)
	assert.False(t, schemaValid)
	assert.Equal(t, "not a number", candidate["overall_score"])
}

func TestDraft_NonObjectResponseErrors(t *testing.T) {
	client := &fakeClient{response: `[1, 2, 3]`}
	critic := NewCritic(client)

	_, _, err := critic.Draft(context.Background(), "resume", "")

	require.Error(t, err)
	var derr *DraftError
	assert.ErrorAs(t, err, &derr)
}

func TestDraft_GenerationErrorWrapped(t *testing.T) {
	cause := errors.New("quota exceeded")
	client := &fakeClient{err: cause}
	critic := NewCritic(client)

	_, _, err := critic.Draft(context.Background(), "resume", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}
