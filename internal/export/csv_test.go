package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/iliyamo/hackathon-manager/internal/allocation"
)

func TestWriteMentorAllocations(t *testing.T) {
	records := []allocation.MentorAllocation{
		{
			MentorName:    "Ada",
			MentorEmail:   "ada@x.com",
			MentorSkills:  []string{"python", "ml"},
			TeamID:        "T1",
			PPTKeywords:   []string{"python", "tensorflow"},
			MatchScore:    50,
			MatchedSkills: []string{"python"},
		},
	}

	var buf bytes.Buffer
	if err := WriteMentorAllocations(&buf, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "mentor_name" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	got := rows[1]
	if got[0] != "Ada" || got[1] != "ada@x.com" || got[3] != "T1" {
		t.Errorf("unexpected row: %v", got)
	}
	if got[2] != "python; ml" {
		t.Errorf("skills should be joined, got %q", got[2])
	}
	if got[5] != "50.00" {
		t.Errorf("score should carry two decimals, got %q", got[5])
	}
}

func TestWriteMentorAllocations_QuotesEscaped(t *testing.T) {
	records := []allocation.MentorAllocation{
		{MentorName: `Grace "the compiler" Hopper`, MentorEmail: "g@x.com", TeamID: "T,1"},
	}

	var buf bytes.Buffer
	if err := WriteMentorAllocations(&buf, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"Grace ""the compiler"" Hopper"`) {
		t.Errorf("embedded quotes must be doubled, got %q", out)
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if rows[1][3] != "T,1" {
		t.Errorf("comma-bearing field mangled: %q", rows[1][3])
	}
}

func TestWriteSeatAllocations(t *testing.T) {
	room := "R1"
	row := 2
	records := []allocation.SeatAllocation{
		{TeamSize: 3, RoomNo: &room, Row: &row, RemainingSeatsInRow: 1, Message: "seated in room R1, row 2"},
		{TeamSize: 9, Message: "team of size 9 exceeds every row capacity (widest row holds 4)"},
	}

	var buf bytes.Buffer
	if err := WriteSeatAllocations(&buf, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	placed := rows[1]
	if placed[0] != "3" || placed[1] != "R1" || placed[2] != "2" || placed[3] != "1" {
		t.Errorf("unexpected placed row: %v", placed)
	}
	unplaced := rows[2]
	if unplaced[1] != "" || unplaced[2] != "" {
		t.Errorf("unplaced teams must have empty room/row columns: %v", unplaced)
	}
	if !strings.Contains(unplaced[4], "exceeds every row capacity") {
		t.Errorf("message column missing reason: %v", unplaced)
	}
}
