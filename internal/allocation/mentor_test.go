package allocation

import "testing"

func TestAllocateMentors_EverySubmissionGetsOneRecord(t *testing.T) {
	mentors := []Mentor{
		{Name: "A", Email: "a@x.com", Skills: []string{"python"}},
	}
	submissions := []Submission{
		{TeamID: "T1", Keywords: []string{"python", "flask"}},
		{TeamID: "T2", Keywords: []string{"rust"}},
		{TeamID: "T3"}, // no keywords at all
	}

	out := AllocateMentors(mentors, submissions)
	if len(out) != len(submissions) {
		t.Fatalf("expected %d records, got %d", len(submissions), len(out))
	}

	seen := map[string]bool{}
	for _, rec := range out {
		if seen[rec.TeamID] {
			t.Errorf("team %s allocated twice", rec.TeamID)
		}
		seen[rec.TeamID] = true
	}
	for _, sub := range submissions {
		if !seen[sub.TeamID] {
			t.Errorf("team %s missing from output", sub.TeamID)
		}
	}
}

func TestAllocateMentors_LoadSpread(t *testing.T) {
	// Two interchangeable mentors, three identical submissions: the 0.1
	// penalty must pull the second submission to the idle mentor.
	mentors := []Mentor{
		{Name: "A", Email: "a@x.com", Skills: []string{"go", "redis"}},
		{Name: "B", Email: "b@x.com", Skills: []string{"go", "redis"}},
	}
	submissions := []Submission{
		{TeamID: "T1", Keywords: []string{"go", "redis"}},
		{TeamID: "T2", Keywords: []string{"go", "redis"}},
		{TeamID: "T3", Keywords: []string{"go", "redis"}},
	}

	out := AllocateMentors(mentors, submissions)
	counts := map[string]int{}
	for _, rec := range out {
		counts[rec.MentorEmail]++
	}
	for email, n := range counts {
		if n > 2 {
			t.Errorf("mentor %s got %d submissions, want spread <= 2", email, n)
		}
	}
	if len(counts) != 2 {
		t.Errorf("expected both mentors used, got %v", counts)
	}
}

func TestAllocateMentors_FirstMentorWinsTies(t *testing.T) {
	// Equal adjusted scores: the mentor encountered first in the input list
	// must win, making runs reproducible for identical ordering.
	mentors := []Mentor{
		{Name: "First", Email: "first@x.com", Skills: []string{"go"}},
		{Name: "Second", Email: "second@x.com", Skills: []string{"go"}},
	}
	out := AllocateMentors(mentors, []Submission{{TeamID: "T1", Keywords: []string{"go"}}})
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].MentorEmail != "first@x.com" {
		t.Errorf("tie must go to the first-listed mentor, got %s", out[0].MentorEmail)
	}
}

func TestAllocateMentors_RichSubmissionsPickFirst(t *testing.T) {
	// The keyword-rich submission is processed first and takes the matching
	// mentor; the sparse one gets the now-penalized leftovers.
	mentors := []Mentor{
		{Name: "A", Email: "a@x.com", Skills: []string{"python", "ml"}},
	}
	submissions := []Submission{
		{TeamID: "sparse", Keywords: []string{"python"}},
		{TeamID: "rich", Keywords: []string{"python", "ml", "pandas"}},
	}
	out := AllocateMentors(mentors, submissions)
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].TeamID != "rich" {
		t.Errorf("expected keyword-rich submission processed first, got %s", out[0].TeamID)
	}
}

func TestAllocateMentors_ZeroSignalStillAllocated(t *testing.T) {
	mentors := []Mentor{{Name: "A", Email: "a@x.com", Skills: []string{"cobol"}}}
	out := AllocateMentors(mentors, []Submission{{TeamID: "T1", Keywords: []string{"react"}}})
	if len(out) != 1 {
		t.Fatalf("expected a record even with zero overlap, got %d", len(out))
	}
	if out[0].MatchScore != 0 {
		t.Errorf("expected match score 0, got %v", out[0].MatchScore)
	}
	if out[0].MentorEmail != "a@x.com" {
		t.Errorf("expected the only mentor assigned, got %s", out[0].MentorEmail)
	}
}

func TestAllocateMentors_EndToEnd(t *testing.T) {
	mentors := []Mentor{
		{Name: "A", Email: "a@x.com", Skills: []string{"python", "ml"}},
		{Name: "B", Email: "b@x.com", Skills: []string{"react", "css"}},
	}
	submissions := []Submission{
		{TeamID: "T1", Keywords: []string{"python", "tensorflow"}},
		{TeamID: "T2", Keywords: []string{"react", "html"}},
	}

	out := AllocateMentors(mentors, submissions)
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}

	byTeam := map[string]MentorAllocation{}
	for _, rec := range out {
		byTeam[rec.TeamID] = rec
	}
	if got := byTeam["T1"].MentorEmail; got != "a@x.com" {
		t.Errorf("T1 shares python with A, got %s", got)
	}
	if got := byTeam["T2"].MentorEmail; got != "b@x.com" {
		t.Errorf("T2 shares react with B, got %s", got)
	}
	for team, rec := range byTeam {
		if rec.MatchScore <= 0 {
			t.Errorf("%s: expected positive match score, got %v", team, rec.MatchScore)
		}
		if rec.MatchScore > 100 {
			t.Errorf("%s: match score above 100: %v", team, rec.MatchScore)
		}
	}
}

func TestAllocateMentors_InputOrderUntouched(t *testing.T) {
	submissions := []Submission{
		{TeamID: "small", Keywords: []string{"go"}},
		{TeamID: "big", Keywords: []string{"go", "redis", "mysql"}},
	}
	AllocateMentors([]Mentor{{Name: "A", Email: "a@x.com", Skills: []string{"go"}}}, submissions)
	if submissions[0].TeamID != "small" || submissions[1].TeamID != "big" {
		t.Errorf("caller's submission slice was reordered: %v", submissions)
	}
}

func TestAllocateMentors_NoMentors(t *testing.T) {
	if out := AllocateMentors(nil, []Submission{{TeamID: "T1"}}); out != nil {
		t.Errorf("expected nil for empty mentor list, got %v", out)
	}
}
