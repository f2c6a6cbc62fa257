// Package keywords extracts and ranks canonical keyphrases from job and
// resume text. It combines a curated rule library, a synonym table and
// frequency-based n-gram mining; no trained models, everything is
// deterministic lexical matching.
package keywords

import (
	"regexp"
	"strings"
)

// Rule is one curated library entry. A rule fires when any hint substring
// or pattern matches, and always emits its canonical phrase.
type Rule struct {
	ID        string
	Canonical string
	Hints     []string // lowercase substrings
	Patterns  []*regexp.Regexp
}

// Synonym maps a surface-form pattern to the canonical phrase it should be
// reported as.
type Synonym struct {
	Pattern   *regexp.Regexp
	Canonical string
}

// Library is the process-wide keyword configuration: rules, synonyms,
// default padding keywords, stop words and the short-token allowlist.
// Construct once with NewLibrary and treat as immutable; tests may build
// smaller libraries directly.
type Library struct {
	Rules    []Rule
	Synonyms []Synonym

	// Defaults pad the result when too few keywords were found. They never
	// override detected keywords.
	Defaults []string

	stopWords  map[string]bool
	generic    map[string]bool
	shortAllow map[string]bool

	// canonicalForms indexes every known canonical phrase by its lowercase
	// form so Canonicalize maps library output to itself.
	canonicalForms map[string]string
}

// CanonicalForm returns the stored canonical spelling for a phrase and
// whether the phrase is a known canonical, matched case-insensitively.
func (l *Library) CanonicalForm(phrase string) (string, bool) {
	c, ok := l.canonicalForms[strings.ToLower(phrase)]
	return c, ok
}

// IsStopWord reports whether token is a stop word.
func (l *Library) IsStopWord(token string) bool { return l.stopWords[token] }

// IsGeneric reports whether token is a generic HR or company term excluded
// from mining.
func (l *Library) IsGeneric(token string) bool { return l.generic[token] }

// IsHighValueShort reports whether a short token is on the high-value
// acronym allowlist (ai, ml, sql, aws, ...).
func (l *Library) IsHighValueShort(token string) bool { return l.shortAllow[token] }

// NewLibrary builds the curated default library.
func NewLibrary() *Library {
	lib := &Library{
		Rules:      defaultRules(),
		Synonyms:   defaultSynonyms(),
		Defaults:   defaultKeywords(),
		stopWords:  toSet(stopWordList),
		generic:    toSet(genericTermList),
		shortAllow: toSet(shortAllowList),
	}
	lib.canonicalForms = canonicalIndex(lib)
	return lib
}

func canonicalIndex(lib *Library) map[string]string {
	idx := make(map[string]string)
	add := func(phrase string) {
		idx[strings.ToLower(phrase)] = phrase
	}
	for _, rule := range lib.Rules {
		add(rule.Canonical)
	}
	for _, syn := range lib.Synonyms {
		add(syn.Canonical)
	}
	for _, def := range lib.Defaults {
		add(def)
	}
	return idx
}

func defaultRules() []Rule {
	return []Rule{
		{ID: "budget", Canonical: "Budget ownership", Hints: []string{"budget"},
			Patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)\$\s?\d[\d,.]*\s?(k|m|b|million|billion)?\s+budget`)}},
		{ID: "risk", Canonical: "Risk management", Hints: []string{"risk"}},
		{ID: "stakeholders", Canonical: "Stakeholder management", Hints: []string{"stakeholder"}},
		{ID: "project-mgmt", Canonical: "Project management", Hints: []string{"project management", "program management", "pmp"}},
		{ID: "cross-functional", Canonical: "Cross-functional leadership", Hints: []string{"cross-functional", "cross functional", "matrix organization"}},
		{ID: "process", Canonical: "Process improvement", Hints: []string{"process improvement", "continuous improvement", "lean", "six sigma", "kaizen"}},
		{ID: "data-analysis", Canonical: "Data analysis", Hints: []string{"data analysis", "analytics", "data-driven", "data driven"}},
		{ID: "strategy", Canonical: "Strategic planning", Hints: []string{"strategic plan", "strategy development", "roadmap"}},
		{ID: "vendors", Canonical: "Vendor management", Hints: []string{"vendor", "supplier", "procurement"}},
		{ID: "change", Canonical: "Change management", Hints: []string{"change management", "transformation"}},
		{ID: "team-leadership", Canonical: "Team leadership", Hints: []string{"led team", "team of", "direct reports", "people management"},
			Patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)\bteam\s+of\s+\d+`)}},
		{ID: "customer", Canonical: "Customer success", Hints: []string{"customer success", "customer satisfaction", "client relationship", "account management"}},
		{ID: "agile", Canonical: "Agile delivery", Hints: []string{"agile", "scrum", "kanban", "sprint"}},
		{ID: "kpi", Canonical: "KPI reporting", Hints: []string{"kpi", "key performance indicator", "dashboards", "metrics reporting"}},
		{ID: "forecasting", Canonical: "Forecasting", Hints: []string{"forecast"}},
		{ID: "compliance", Canonical: "Regulatory compliance", Hints: []string{"compliance", "regulatory", "audit"}},
		{ID: "operations", Canonical: "Operational excellence", Hints: []string{"operational excellence", "operations management"}},
		{ID: "quality", Canonical: "Quality assurance", Hints: []string{"quality assurance", "quality control", "qa process"}},
		{ID: "product", Canonical: "Product management", Hints: []string{"product management", "product owner", "product roadmap"}},
		{ID: "negotiation", Canonical: "Contract negotiation", Hints: []string{"negotiat"}},
		{ID: "onboarding", Canonical: "Training & onboarding", Hints: []string{"onboarding", "training program", "mentoring"}},
		{ID: "reporting", Canonical: "Executive reporting", Hints: []string{"executive report", "board report", "presented to leadership"}},
		{ID: "cloud", Canonical: "Cloud platforms", Hints: []string{"aws", "azure", "gcp", "cloud migration", "cloud infrastructure"}},
		{ID: "automation", Canonical: "Workflow automation", Hints: []string{"automation", "automated"}},
		{ID: "crm", Canonical: "CRM systems", Hints: []string{"salesforce", "hubspot", "crm"}},
	}
}

func defaultSynonyms() []Synonym {
	return []Synonym{
		{regexp.MustCompile(`(?i)\bbudget\s+(management|ownership|oversight|administration)\b`), "Budget ownership"},
		{regexp.MustCompile(`(?i)\b(managed|owned|oversaw)\s+(a\s+)?[\$\d][\d,.]*\s?(k|m|b|million|billion)?\s+budget\b`), "Budget ownership"},
		{regexp.MustCompile(`(?i)\brisk\s+(management|mitigation|assessment)\b`), "Risk management"},
		{regexp.MustCompile(`(?i)\bstakeholder\s+(management|engagement|alignment)\b`), "Stakeholder management"},
		{regexp.MustCompile(`(?i)\b(cross[\s-]functional|xfn)\s+(teams?|leadership|collaboration)\b`), "Cross-functional leadership"},
		{regexp.MustCompile(`(?i)\b(continuous|process)\s+improvements?\b`), "Process improvement"},
		{regexp.MustCompile(`(?i)\bdata[\s-]driven\b`), "Data analysis"},
		{regexp.MustCompile(`(?i)\bdata\s+(analysis|analytics)\b`), "Data analysis"},
		{regexp.MustCompile(`(?i)\bstrategic\s+(planning|initiatives?)\b`), "Strategic planning"},
		{regexp.MustCompile(`(?i)\b(vendor|supplier)\s+(management|relations)\b`), "Vendor management"},
		{regexp.MustCompile(`(?i)\bchange\s+management\b`), "Change management"},
		{regexp.MustCompile(`(?i)\b(people|team)\s+(management|leadership)\b`), "Team leadership"},
		{regexp.MustCompile(`(?i)\bcustomer\s+(success|satisfaction|experience)\b`), "Customer success"},
		{regexp.MustCompile(`(?i)\b(agile|scrum)\s+(delivery|methodolog(y|ies)|environment)\b`), "Agile delivery"},
		{regexp.MustCompile(`(?i)\bkey\s+performance\s+indicators?\b`), "KPI reporting"},
		{regexp.MustCompile(`(?i)\bproject\s+management\b`), "Project management"},
		{regexp.MustCompile(`(?i)\bquality\s+(assurance|control)\b`), "Quality assurance"},
		{regexp.MustCompile(`(?i)\bcontract\s+negotiations?\b`), "Contract negotiation"},
	}
}

func defaultKeywords() []string {
	return []string{
		"Cross-functional leadership",
		"Stakeholder management",
		"Process improvement",
		"Project management",
		"Data analysis",
		"Team leadership",
		"Strategic planning",
		"Problem solving",
		"Communication",
		"Customer focus",
	}
}

var stopWordList = []string{
	"a", "about", "above", "after", "again", "all", "also", "an", "and",
	"any", "are", "as", "at", "be", "because", "been", "before", "being",
	"below", "between", "both", "but", "by", "can", "could", "did", "do",
	"does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"him", "his", "how", "if", "in", "into", "is", "it", "its", "just",
	"more", "most", "my", "no", "nor", "not", "now", "of", "off", "on",
	"once", "only", "or", "other", "our", "out", "over", "own", "same",
	"she", "should", "so", "some", "such", "than", "that", "the", "their",
	"them", "then", "there", "these", "they", "this", "those", "through",
	"to", "too", "under", "until", "up", "very", "was", "we", "were",
	"what", "when", "where", "which", "while", "who", "whom", "why",
	"will", "with", "would", "you", "your", "yours",
}

// genericTermList holds HR boilerplate and posting scaffolding that carries
// no signal as a keyword.
var genericTermList = []string{
	"ability", "applicant", "applicants", "apply", "benefits", "candidate",
	"candidates", "career", "careers", "company", "compensation", "culture",
	"dental", "description", "duties", "email", "employee", "employees",
	"employer", "employment", "equal", "equity", "excellent", "experience",
	"experienced", "fast-paced", "full-time", "great", "hire", "hiring",
	"ideal", "include", "including", "insurance", "job", "join", "looking",
	"medical", "member", "motivated", "opportunity", "opportunities",
	"organization", "paid", "part-time", "passion", "passionate", "people",
	"perks", "plus", "position", "preferred", "qualification",
	"qualifications", "qualified", "related", "required", "requirements",
	"responsibilities", "responsibility", "resume", "role", "salary",
	"seeking", "skills", "strong", "successful", "team", "vacation",
	"willing", "work", "working", "years",
}

// shortAllowList contains tokens below the length-4 floor that still carry
// high signal.
var shortAllowList = []string{
	"ai", "api", "aws", "b2b", "b2c", "bi", "ci", "cd", "cpa", "crm",
	"erp", "etl", "gcp", "hr", "kpi", "ml", "nlp", "okr", "pmp", "qa",
	"roi", "saas", "sdk", "seo", "sla", "sql", "sre", "ux", "ui",
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
