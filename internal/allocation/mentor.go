package allocation

import (
	"math"
	"sort"
)

// workloadPenalty is subtracted from a mentor's raw match score once per
// submission already assigned to them, so a strong mentor does not absorb
// every team while equally capable mentors sit idle.
const workloadPenalty = 0.1

// Mentor is one available mentor for an allocation run. Email is the unique
// key; the caller guarantees uniqueness and non-empty skills before calling.
type Mentor struct {
	Name   string
	Email  string
	Skills []string
}

// Submission is one team's project entry, reduced to the keyword set an
// external extraction service produced from the uploaded deck.
type Submission struct {
	TeamID   string
	Keywords []string
}

// MentorAllocation records one submission assigned to one mentor. MatchScore
// is the raw (pre-penalty) skill match rescaled to [0,100]. A mentor may
// appear in many records; a team appears in at most one.
type MentorAllocation struct {
	MentorName    string   `json:"mentor_name"`
	MentorEmail   string   `json:"mentor_email"`
	MentorSkills  []string `json:"mentor_skills"`
	TeamID        string   `json:"team_id"`
	PPTKeywords   []string `json:"ppt_keywords"`
	MatchScore    float64  `json:"match_score"`
	MatchedSkills []string `json:"matched_skills"`
}

// AllocateMentors assigns every submission to exactly one mentor using a
// greedy, load-aware pass. Submissions with more extracted keywords carry
// more matching signal, so they are handed out first and get first pick.
// For each submission the mentor with the highest penalty-adjusted score
// wins; on an exact tie the mentor listed first wins, so caller ordering is
// the tie-break and runs are reproducible for identical input.
//
// Every submission receives a record as long as at least one mentor exists,
// even when the best adjusted score is zero or negative. Callers that only
// want confident matches must filter the output by MatchScore themselves.
// An empty mentor list returns nil; the handler layer rejects it before
// this function runs.
func AllocateMentors(mentors []Mentor, submissions []Submission) []MentorAllocation {
	if len(mentors) == 0 || len(submissions) == 0 {
		return nil
	}

	// Work on a copy so the caller's slice keeps its order.
	queue := make([]Submission, len(submissions))
	copy(queue, submissions)
	sort.SliceStable(queue, func(i, j int) bool {
		return len(queue[i].Keywords) > len(queue[j].Keywords)
	})

	workload := make(map[string]int, len(mentors))
	out := make([]MentorAllocation, 0, len(queue))

	for _, sub := range queue {
		bestIdx := -1
		bestAdjusted := math.Inf(-1)
		var bestResult MatchResult

		for i, m := range mentors {
			res := MatchSkills(m.Skills, sub.Keywords)
			adjusted := res.Score - workloadPenalty*float64(workload[m.Email])
			if adjusted > bestAdjusted {
				bestAdjusted = adjusted
				bestIdx = i
				bestResult = res
			}
		}

		best := mentors[bestIdx]
		workload[best.Email]++
		out = append(out, MentorAllocation{
			MentorName:    best.Name,
			MentorEmail:   best.Email,
			MentorSkills:  best.Skills,
			TeamID:        sub.TeamID,
			PPTKeywords:   sub.Keywords,
			MatchScore:    bestResult.Score * 100,
			MatchedSkills: bestResult.MatchedSkills,
		})
	}
	return out
}
