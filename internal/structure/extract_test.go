package structure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-critic/internal/textnorm"
	"github.com/jonathan/resume-critic/internal/types"
)

const sampleResume = `Jane Doe
jane@example.com | (555) 123-4567

PROFESSIONAL SUMMARY
Operations leader with a decade of experience.

EXPERIENCE
Director of Operations, Acme Corp    Jan 2019 - Mar 2024
• Led a team of 12 analysts across two regions
• Reduced processing costs by 30% in the first year
• Implemented a new vendor management system

SKILLS
SQL, Excel, Tableau, Leadership

EDUCATION
B.S. Business Administration, State University, 2010`

func TestExtract_EmptyInput(t *testing.T) {
	signals := Extract("")

	assert.Empty(t, signals.DetectedSections)
	assert.Len(t, signals.MissingCoreSections, len(types.CoreSections()))
	assert.Zero(t, signals.BulletLines)
	assert.Zero(t, signals.TimelineEntries)
}

func TestExtract_DetectsAllCoreSections(t *testing.T) {
	signals := Extract(textnorm.Normalize(sampleResume))

	assert.Empty(t, signals.MissingCoreSections)
	assert.True(t, signals.HasSection(types.SectionSummary))
	assert.True(t, signals.HasSection(types.SectionExperience))
	assert.True(t, signals.HasSection(types.SectionSkills))
	assert.True(t, signals.HasSection(types.SectionEducation))
}

func TestExtract_ExperienceOnlyResume(t *testing.T) {
	text := textnorm.Normalize(`EXPERIENCE
Manager, Somewhere Inc, 2018 - 2022
• Managed things`)

	signals := Extract(text)

	require.Len(t, signals.DetectedSections, 1)
	assert.Equal(t, types.SectionExperience, signals.DetectedSections[0])
	assert.ElementsMatch(t,
		[]types.Section{types.SectionSummary, types.SectionSkills, types.SectionEducation},
		signals.MissingCoreSections)
}

func TestExtract_SynonymFallbackFindsDecoratedHeadings(t *testing.T) {
	text := textnorm.Normalize(`=== PROFILE ===
Seasoned engineer.

=== CAREER HISTORY ===
• Built a platform`)

	signals := Extract(text)

	assert.True(t, signals.HasSection(types.SectionSummary))
	assert.True(t, signals.HasSection(types.SectionExperience))
}

func TestExtract_BulletAndActionCounts(t *testing.T) {
	signals := Extract(textnorm.Normalize(sampleResume))

	assert.Equal(t, 3, signals.BulletLines)
	assert.Equal(t, 3, signals.ActionBulletLines)
}

func TestExtract_InlineBulletsCounted(t *testing.T) {
	// PDF extraction often folds bullets into one line.
	text := textnorm.Normalize("EXPERIENCE\n• Led team • Built platform • Reduced costs")

	signals := Extract(text)

	assert.Equal(t, 3, signals.BulletLines)
	assert.Equal(t, 3, signals.ActionBulletLines)
}

func TestExtract_NonActionBulletsNotCounted(t *testing.T) {
	text := textnorm.Normalize("EXPERIENCE\n• Responsible for reporting\n• Led weekly standups")

	signals := Extract(text)

	assert.Equal(t, 2, signals.BulletLines)
	assert.Equal(t, 1, signals.ActionBulletLines)
}

func TestExtract_TimelineEntries(t *testing.T) {
	text := textnorm.Normalize(`EXPERIENCE
Role One    Jan 2019 - Mar 2024
Role Two    2015 - 2018
Graduated 2010`)

	signals := Extract(text)

	assert.Equal(t, 2, signals.TimelineEntries)
	assert.Equal(t, 1, signals.StandaloneYears)
}

func TestExtract_DenseParagraphs(t *testing.T) {
	long := strings.Repeat("responsible for many different things and outcomes ", 6)
	text := textnorm.Normalize("SUMMARY\n" + long + "\n" + long)

	signals := Extract(text)

	assert.Equal(t, 2, signals.DenseParagraphs)
}

func TestExtract_Deterministic(t *testing.T) {
	text := textnorm.Normalize(sampleResume)
	first := Extract(text)
	second := Extract(text)
	assert.Equal(t, first, second)
}
