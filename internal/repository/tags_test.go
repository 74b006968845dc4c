package repository

import (
	"reflect"
	"testing"
)

func TestJoinTags(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want string
	}{
		{"plain", []string{"python", "ml"}, "python,ml"},
		{"trims", []string{" python ", "ml"}, "python,ml"},
		{"drops empties", []string{"python", "  ", ""}, "python"},
		{"nil", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := joinTags(tc.in); got != tc.want {
				t.Errorf("joinTags(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "python,ml", []string{"python", "ml"}},
		{"spaces", " python , ml ", []string{"python", "ml"}},
		{"empty column", "", nil},
		{"only separators", ",,", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := splitTags(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("splitTags(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTagsRoundTrip(t *testing.T) {
	in := []string{"Python", "Machine Learning", "React"}
	if got := splitTags(joinTags(in)); !reflect.DeepEqual(got, in) {
		t.Errorf("round trip changed tags: %v", got)
	}
}
