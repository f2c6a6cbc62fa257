package types

// Section identifies a resume section detected by the structure extractor.
type Section string

// Recognized resume sections. The first four are the core sections every
// resume is expected to carry.
const (
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionSkills         Section = "skills"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionProjects       Section = "projects"
	SectionLeadership     Section = "leadership"
	SectionAwards         Section = "awards"
	SectionVolunteer      Section = "volunteer"
)

// CoreSections lists the four structurally mandatory sections, in canonical
// order.
func CoreSections() []Section {
	return []Section{SectionSummary, SectionExperience, SectionSkills, SectionEducation}
}

// Title returns the human-readable heading name for a section.
func (s Section) Title() string {
	switch s {
	case SectionSummary:
		return "Summary"
	case SectionExperience:
		return "Experience"
	case SectionSkills:
		return "Skills"
	case SectionEducation:
		return "Education"
	case SectionCertifications:
		return "Certifications"
	case SectionProjects:
		return "Projects"
	case SectionLeadership:
		return "Leadership"
	case SectionAwards:
		return "Awards"
	case SectionVolunteer:
		return "Volunteer"
	default:
		return string(s)
	}
}

// StructureSignals holds layout-derived counts for a single resume. Derived
// once per analysis call, read-only afterward.
type StructureSignals struct {
	DetectedSections    []Section `json:"detected_sections"`
	MissingCoreSections []Section `json:"missing_core_sections"`
	BulletLines         int       `json:"bullet_lines"`
	ActionBulletLines   int       `json:"action_bullet_lines"`
	TimelineEntries     int       `json:"timeline_entries"`
	StandaloneYears     int       `json:"standalone_years"`
	DenseParagraphs     int       `json:"dense_paragraphs"`
}

// HasSection reports whether the given section was detected.
func (s *StructureSignals) HasSection(sec Section) bool {
	for _, d := range s.DetectedSections {
		if d == sec {
			return true
		}
	}
	return false
}

// AtsSignals holds quantitative formatting and keyword-overlap risk metrics.
// Purely derived, recomputed per call. KeywordOverlap is nil when no job
// text was supplied.
type AtsSignals struct {
	WordCount      int               `json:"word_count"`
	MetricCount    int               `json:"metric_count"`
	BulletCount    int               `json:"bullet_count"`
	KeywordOverlap *float64          `json:"keyword_overlap,omitempty"`
	HardSkillHits  int               `json:"hard_skill_hits"`
	SoftSkillHits  int               `json:"soft_skill_hits"`
	AcronymsUsed   int               `json:"acronyms_used"`
	AcronymsSpelt  int               `json:"acronyms_spelled_out"`
	Structure      *StructureSignals `json:"structure,omitempty"`
}
