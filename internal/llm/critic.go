package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-critic/internal/schemas"
)

// Critic drafts a candidate critique with a generative model. The result is
// always a raw candidate for the validator, never a trusted critique.
type Critic struct {
	client Client
}

// NewCritic wraps a generative client.
func NewCritic(client Client) *Critic {
	return &Critic{client: client}
}

// DraftError represents a failed attempt to obtain a usable candidate.
type DraftError struct {
	Message string
	Cause   error
}

func (e *DraftError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("draft failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("draft failed: %s", e.Message)
}

func (e *DraftError) Unwrap() error {
	return e.Cause
}

// Draft asks the model for a critique of the resume (against the job
// posting when one is supplied) and parses the response into a candidate
// object. schemaValid reports whether the raw response already satisfied
// the canonical schema; an invalid candidate is still returned, since the
// validator repairs it downstream.
func (c *Critic) Draft(ctx context.Context, resumeText, jobText string) (candidate map[string]any, schemaValid bool, err error) {
	prompt := buildPrompt(resumeText, jobText)

	raw, err := c.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, false, &DraftError{Message: "generation failed", Cause: err}
	}

	if err := json.Unmarshal([]byte(raw), &candidate); err != nil {
		return nil, false, &DraftError{Message: "response is not a JSON object", Cause: err}
	}

	schemaValid = schemas.ValidateCritiqueJSON(raw) == nil
	return candidate, schemaValid, nil
}

// categoryRoster lists the categories the model is asked to score, in
// output order. The last entry depends on whether a job posting is present.
func categoryRoster(hasJob bool) []string {
	roster := []string{
		"Contact Information",
		"Professional Summary",
		"Work Experience",
		"Skills",
		"Education",
	}
	if hasJob {
		return append(roster, "Job Match & Keywords")
	}
	return append(roster, "Keyword Optimization")
}

// buildPrompt constructs the critique prompt. With a job posting the model
// is steered toward gap analysis against that specific posting; without
// one it reviews against general hiring practice.
func buildPrompt(resumeText, jobText string) string {
	hasJob := strings.TrimSpace(jobText) != ""

	var sb strings.Builder
	sb.WriteString("You are an expert resume reviewer and career coach. ")
	if hasJob {
		sb.WriteString("Analyze the following resume against the specific job posting and provide targeted feedback in JSON format.\n\n")
	} else {
		sb.WriteString("Analyze the following resume and provide detailed feedback in JSON format.\n\n")
	}

	sb.WriteString("Resume Text:\n\"\"\"\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\"\"\"\n\n")

	if hasJob {
		sb.WriteString("Job Posting:\n\"\"\"\n")
		sb.WriteString(jobText)
		sb.WriteString("\n\"\"\"\n\n")
	}

	sb.WriteString("Return a JSON object with this exact structure:\n")
	sb.WriteString("{\n  \"overall_score\": <number 0-100>,\n  \"categories\": [\n")
	for i, name := range categoryRoster(hasJob) {
		sb.WriteString(fmt.Sprintf(
			"    {\"name\": %q, \"status\": \"good|warning|critical\", \"score\": <number 0-100>, \"feedback\": \"<brief assessment>\", \"suggestions\": [\"<specific suggestion>\", ...]}",
			name))
		if i < 5 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  ],\n  \"critical_keywords\": [\"<keyword>\", ...],\n")
	sb.WriteString("  \"insights\": [{\"title\": \"<short title>\", \"status\": \"good|warning|critical\", \"details\": \"<finding>\", \"tips\": [\"<tip>\", ...]}]\n}\n\n")

	sb.WriteString("Guidelines:\n")
	sb.WriteString("- \"good\" means a score of 85+, \"warning\" 70-84, \"critical\" below 70\n")
	sb.WriteString("- Be specific and actionable in suggestions\n")
	sb.WriteString("- Focus on modern hiring practices and ATS optimization\n")
	if hasJob {
		sb.WriteString("- Compare resume content directly against the posting's requirements\n")
		sb.WriteString("- Identify missing keywords from the posting and name them in critical_keywords\n")
		sb.WriteString("- Be very specific about what is missing for THIS job\n")
	} else {
		sb.WriteString("- Do not reference any specific job posting; the candidate supplied none\n")
	}
	sb.WriteString("\nReturn only the JSON object, no other text.")

	return sb.String()
}
