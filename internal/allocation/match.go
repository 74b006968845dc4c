package allocation

import "strings"

// Match weights. An exact skill/keyword hit counts in full; a substring hit
// in either direction counts half, which credits loose vocabulary overlap
// such as "java" against "javascript" without a taxonomy.
const (
	exactMatchWeight   = 1.0
	partialMatchWeight = 0.5
)

// MatchResult is the outcome of scoring one mentor against one submission.
// Score is in [0,1]. MatchedSkills carries the mentor's skills that hit,
// in the mentor's original spelling so the UI can show them verbatim.
type MatchResult struct {
	Score         float64
	MatchedSkills []string
}

// MatchSkills scores how well a mentor's skill set covers a submission's
// extracted keyword set. Both sides are lower-cased and trimmed before
// comparison and duplicates are ignored. Each mentor skill is counted at
// most once: an exact hit first, otherwise a substring hit in either
// direction. The raw weighted sum is normalized by the larger of the two
// set sizes and capped at 1. Empty input on either side scores zero.
func MatchSkills(mentorSkills, keywords []string) MatchResult {
	type skill struct {
		norm     string
		original string
	}

	seen := make(map[string]bool, len(mentorSkills))
	skills := make([]skill, 0, len(mentorSkills))
	for _, s := range mentorSkills {
		n := normalizeTerm(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		skills = append(skills, skill{norm: n, original: strings.TrimSpace(s)})
	}

	kwSet := make(map[string]bool, len(keywords))
	kwList := make([]string, 0, len(keywords))
	for _, k := range keywords {
		n := normalizeTerm(k)
		if n == "" || kwSet[n] {
			continue
		}
		kwSet[n] = true
		kwList = append(kwList, n)
	}

	if len(skills) == 0 || len(kwList) == 0 {
		return MatchResult{}
	}

	var raw float64
	var matched []string
	for _, sk := range skills {
		if kwSet[sk.norm] {
			raw += exactMatchWeight
			matched = append(matched, sk.original)
			continue
		}
		for _, kw := range kwList {
			if strings.Contains(kw, sk.norm) || strings.Contains(sk.norm, kw) {
				raw += partialMatchWeight
				matched = append(matched, sk.original)
				break
			}
		}
	}

	denom := len(skills)
	if len(kwList) > denom {
		denom = len(kwList)
	}
	score := raw / float64(denom)
	if score > 1 {
		score = 1
	}
	return MatchResult{Score: score, MatchedSkills: matched}
}

// normalizeTerm folds a free-text skill or keyword for comparison.
func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
