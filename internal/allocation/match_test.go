package allocation

import (
	"reflect"
	"testing"
)

func TestMatchSkills_Deterministic(t *testing.T) {
	skills := []string{"Python", "React", "Docker"}
	keywords := []string{"python", "kubernetes", "react native"}

	first := MatchSkills(skills, keywords)
	second := MatchSkills(skills, keywords)

	if first.Score != second.Score {
		t.Errorf("scores differ across calls: %v vs %v", first.Score, second.Score)
	}
	if !reflect.DeepEqual(first.MatchedSkills, second.MatchedSkills) {
		t.Errorf("matched skills differ across calls: %v vs %v", first.MatchedSkills, second.MatchedSkills)
	}
}

func TestMatchSkills_EmptyInputs(t *testing.T) {
	cases := []struct {
		name     string
		skills   []string
		keywords []string
	}{
		{"no skills", nil, []string{"python"}},
		{"no keywords", []string{"python"}, nil},
		{"both empty", nil, nil},
		{"whitespace only", []string{"  "}, []string{"python"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := MatchSkills(tc.skills, tc.keywords)
			if res.Score != 0 {
				t.Errorf("expected score 0, got %v", res.Score)
			}
			if len(res.MatchedSkills) != 0 {
				t.Errorf("expected no matched skills, got %v", res.MatchedSkills)
			}
		})
	}
}

func TestMatchSkills_ExactSaturation(t *testing.T) {
	res := MatchSkills([]string{"python", "react"}, []string{"Python", "React"})
	if res.Score != 1.0 {
		t.Errorf("identical sets should score 1.0, got %v", res.Score)
	}
	if !reflect.DeepEqual(res.MatchedSkills, []string{"python", "react"}) {
		t.Errorf("expected all skills matched in original casing, got %v", res.MatchedSkills)
	}
}

func TestMatchSkills_OriginalCasingPreserved(t *testing.T) {
	res := MatchSkills([]string{"  TensorFlow "}, []string{"tensorflow"})
	if len(res.MatchedSkills) != 1 || res.MatchedSkills[0] != "TensorFlow" {
		t.Errorf("expected trimmed original casing back, got %v", res.MatchedSkills)
	}
}

func TestMatchSkills_PartialWeight(t *testing.T) {
	// "java" is a substring of "javascript": half credit, normalized by
	// the larger set size (2 keywords).
	res := MatchSkills([]string{"java"}, []string{"javascript", "golang"})
	if res.Score != 0.25 {
		t.Errorf("expected 0.5/2 = 0.25, got %v", res.Score)
	}
	if len(res.MatchedSkills) != 1 || res.MatchedSkills[0] != "java" {
		t.Errorf("expected java matched, got %v", res.MatchedSkills)
	}
}

func TestMatchSkills_NoSubstringNoCredit(t *testing.T) {
	// Abbreviations that are not contiguous substrings of the keyword earn
	// nothing: "ml" appears nowhere inside "machine learning models".
	res := MatchSkills([]string{"ml"}, []string{"machine learning models"})
	if res.Score != 0 {
		t.Errorf("expected 0 for non-substring terms, got %v", res.Score)
	}
	if len(res.MatchedSkills) != 0 {
		t.Errorf("expected no matches, got %v", res.MatchedSkills)
	}
}

func TestMatchSkills_NoDoubleCounting(t *testing.T) {
	// "react" hits "react" exactly and is also a substring of "react native";
	// only the exact pass may count it.
	res := MatchSkills([]string{"react"}, []string{"react", "react native"})
	if res.Score != 0.5 {
		t.Errorf("expected 1.0/2 = 0.5, got %v", res.Score)
	}
	if len(res.MatchedSkills) != 1 {
		t.Errorf("skill counted more than once: %v", res.MatchedSkills)
	}
}

func TestMatchSkills_DuplicatesCollapse(t *testing.T) {
	a := MatchSkills([]string{"go", "go", "GO"}, []string{"go"})
	b := MatchSkills([]string{"go"}, []string{"go"})
	if a.Score != b.Score {
		t.Errorf("duplicate skills changed the score: %v vs %v", a.Score, b.Score)
	}
	if len(a.MatchedSkills) != 1 {
		t.Errorf("duplicates should collapse to one match, got %v", a.MatchedSkills)
	}
}

func TestMatchSkills_ScoreCappedAtOne(t *testing.T) {
	// One keyword, two skills both hitting it as substrings cannot push the
	// normalized score past 1.
	res := MatchSkills([]string{"java", "javascript"}, []string{"javascript"})
	if res.Score > 1 {
		t.Errorf("score must be capped at 1, got %v", res.Score)
	}
}
