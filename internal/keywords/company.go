package keywords

import (
	"strings"

	"github.com/jonathan/resume-critic/internal/patterns"
)

// companyStopNames are capitalized sentence openers the company-name
// patterns frequently misfire on.
var companyStopNames = map[string]bool{
	"We": true, "Our": true, "The": true, "This": true, "About": true,
	"Join": true, "At": true, "You": true, "A": true, "An": true,
}

// companyTokenBlacklist guesses the hiring company's name from the job text
// and, when that name does not also appear in the resume, blacklists its
// constituent tokens from extractive mining for this call. A proper noun
// that only occurs in the posting is almost never a skill. Best-effort:
// capitalization heuristics have false positives and negatives on real
// postings.
func companyTokenBlacklist(jobText, resumeText string) map[string]bool {
	if jobText == "" {
		return nil
	}

	name := detectCompanyName(jobText)
	if name == "" {
		return nil
	}
	if strings.Contains(strings.ToLower(resumeText), strings.ToLower(name)) {
		// The candidate actually worked with or at this company; its
		// tokens may be legitimate resume content.
		return nil
	}

	blacklist := make(map[string]bool)
	for _, tok := range patterns.Default().Token.FindAllString(strings.ToLower(name), -1) {
		if len(tok) >= 2 {
			blacklist[tok] = true
		}
	}
	return blacklist
}

// detectCompanyName returns the first plausible company name found in the
// job text, or empty when none is found.
func detectCompanyName(jobText string) string {
	p := patterns.Default()

	if m := p.CompanyLabel.FindStringSubmatch(jobText); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name
		}
	}

	for _, re := range p.CompanyName {
		for _, m := range re.FindAllStringSubmatch(jobText, 5) {
			name := strings.TrimSpace(m[1])
			first := strings.SplitN(name, " ", 2)[0]
			if name == "" || companyStopNames[first] {
				continue
			}
			return name
		}
	}
	return ""
}
