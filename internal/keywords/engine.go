package keywords

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-critic/internal/patterns"
	"github.com/jonathan/resume-critic/internal/textnorm"
)

// Limits for the two keyword consumers: generation prompts take up to 20,
// the sanitized final output at most 15.
const (
	GenerationLimit = 20
	FinalLimit      = 15
)

// minUsableProvided is the number of usable externally supplied keywords
// below which Sanitize tops the list up from extraction.
const minUsableProvided = 6

// n-gram weights: longer phrases outrank shorter ones at equal frequency.
const (
	trigramWeight = 3
	bigramWeight  = 2
	unigramWeight = 1
)

// Extract returns up to limit ranked canonical keyphrases for the given job
// and resume text. Rule matches come first, then mined phrases, then the
// default list as padding. The result is deduplicated case-insensitively in
// first-seen order and every phrase is title-cased or library-canonical.
func Extract(lib *Library, jobText, resumeText string, limit int) []string {
	if limit <= 0 {
		limit = GenerationLimit
	}

	jobText = textnorm.Normalize(jobText)
	resumeText = textnorm.Normalize(resumeText)
	combined := jobText + "\n" + resumeText
	combinedLower := strings.ToLower(combined)

	seen := make(map[string]bool)
	out := make([]string, 0, limit)
	add := func(phrase string) {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" || len(out) >= limit {
			return
		}
		key := strings.ToLower(phrase)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, phrase)
	}

	// Stage 1: curated rules and synonyms over job+resume together.
	for _, rule := range lib.Rules {
		if ruleMatches(rule, combined, combinedLower) {
			add(rule.Canonical)
		}
	}
	for _, syn := range lib.Synonyms {
		if syn.Pattern.MatchString(combined) {
			add(syn.Canonical)
		}
	}

	// Stage 2: extractive mining over the preferred source. Job text wins
	// when present because it names what the match is scored against.
	source := jobText
	if source == "" {
		source = resumeText
	}
	blacklist := companyTokenBlacklist(jobText, resumeText)
	for _, phrase := range mine(lib, source, blacklist) {
		add(Canonicalize(lib, phrase))
	}

	// Stage 3: defaults pad, never override.
	for _, def := range lib.Defaults {
		add(def)
	}

	return out
}

// Sanitize coerces an externally supplied keyword list into canonical form:
// junk entries dropped, phrases canonicalized, case-insensitive dedupe,
// topped up from extraction when fewer than minUsableProvided usable
// entries survive, truncated to limit.
func Sanitize(lib *Library, provided []string, jobText, resumeText string, limit int) []string {
	if limit <= 0 {
		limit = FinalLimit
	}

	seen := make(map[string]bool)
	out := make([]string, 0, limit)
	for _, raw := range provided {
		phrase := strings.TrimSpace(raw)
		if len(phrase) < 2 || len(phrase) > 60 {
			continue
		}
		phrase = Canonicalize(lib, phrase)
		key := strings.ToLower(phrase)
		if seen[key] || len(out) >= limit {
			continue
		}
		seen[key] = true
		out = append(out, phrase)
	}

	if len(out) < minUsableProvided {
		for _, phrase := range Extract(lib, jobText, resumeText, GenerationLimit) {
			if len(out) >= limit {
				break
			}
			key := strings.ToLower(phrase)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, phrase)
		}
	}

	return out
}

// Canonicalize maps a phrase to its library-canonical form when a synonym
// pattern matches, otherwise title-cases it. Allowlisted short tokens are
// upper-cased (sql -> SQL). Known canonical phrases, including the default
// list, map to themselves, so repeated canonicalization is stable.
func Canonicalize(lib *Library, phrase string) string {
	if known, ok := lib.CanonicalForm(strings.TrimSpace(phrase)); ok {
		return known
	}
	for _, syn := range lib.Synonyms {
		if syn.Pattern.MatchString(phrase) {
			return syn.Canonical
		}
	}
	return titleCase(lib, phrase)
}

func ruleMatches(rule Rule, combined, combinedLower string) bool {
	for _, hint := range rule.Hints {
		if strings.Contains(combinedLower, hint) {
			return true
		}
	}
	for _, re := range rule.Patterns {
		if re.MatchString(combined) {
			return true
		}
	}
	return false
}

// minedPhrase tracks one candidate phrase during mining.
type minedPhrase struct {
	phrase string
	score  int
}

// mine tokenizes source text and counts unigram, bigram and trigram
// frequencies over kept tokens. A dropped token breaks the n-gram window,
// so phrases never span stop words.
func mine(lib *Library, source string, blacklist map[string]bool) []string {
	if source == "" {
		return nil
	}

	tokens := patterns.Default().Token.FindAllString(strings.ToLower(source), -1)

	// Split the stream into runs of kept tokens.
	var runs [][]string
	var current []string
	for _, tok := range tokens {
		if keepToken(lib, tok, blacklist) {
			current = append(current, tok)
			continue
		}
		if len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}

	counts := make(map[string]int)
	weights := make(map[string]int)
	record := func(phrase string, weight int) {
		counts[phrase]++
		weights[phrase] = weight
	}
	for _, run := range runs {
		for i, tok := range run {
			record(tok, unigramWeight)
			if i+1 < len(run) {
				record(run[i]+" "+run[i+1], bigramWeight)
			}
			if i+2 < len(run) {
				record(run[i]+" "+run[i+1]+" "+run[i+2], trigramWeight)
			}
		}
	}

	ranked := make([]minedPhrase, 0, len(counts))
	for phrase, count := range counts {
		ranked = append(ranked, minedPhrase{phrase: phrase, score: count * weights[phrase]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if len(ranked[i].phrase) != len(ranked[j].phrase) {
			return len(ranked[i].phrase) > len(ranked[j].phrase)
		}
		return ranked[i].phrase < ranked[j].phrase
	})

	phrases := make([]string, len(ranked))
	for i, mp := range ranked {
		phrases[i] = mp.phrase
	}
	return phrases
}

// keepToken decides whether a token participates in mining. Tokens below
// four characters survive only via the high-value allowlist; all-digit
// tokens such as bare years never do.
func keepToken(lib *Library, tok string, blacklist map[string]bool) bool {
	if len(tok) < 2 || isNumeric(tok) {
		return false
	}
	if blacklist[tok] {
		return false
	}
	if lib.IsStopWord(tok) || lib.IsGeneric(tok) {
		return false
	}
	if len(tok) < 4 {
		return lib.IsHighValueShort(tok)
	}
	return true
}

func isNumeric(tok string) bool {
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func titleCase(lib *Library, phrase string) string {
	words := strings.Fields(phrase)
	for i, word := range words {
		lower := strings.ToLower(word)
		if lib.IsHighValueShort(lower) {
			words[i] = strings.ToUpper(lower)
			continue
		}
		// Leave mixed-case words (PowerPoint, iOS) alone.
		if word != lower && word != strings.ToUpper(word) {
			continue
		}
		r := []rune(lower)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
