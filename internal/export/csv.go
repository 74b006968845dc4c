// Package export renders allocation results as CSV for download. It is a
// plain field-to-column mapping over the allocation records; quoting and
// escaping (doubled quotes) come from encoding/csv.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iliyamo/hackathon-manager/internal/allocation"
)

// skillSeparator joins multi-valued columns (skills, keywords) inside a
// single CSV field.
const skillSeparator = "; "

// WriteMentorAllocations writes one CSV row per mentor allocation record,
// preceded by a header row. Scores are rendered with two decimals.
func WriteMentorAllocations(w io.Writer, records []allocation.MentorAllocation) error {
	cw := csv.NewWriter(w)
	header := []string{
		"mentor_name", "mentor_email", "mentor_skills",
		"team_id", "ppt_keywords", "match_score", "matched_skills",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.MentorName,
			rec.MentorEmail,
			strings.Join(rec.MentorSkills, skillSeparator),
			rec.TeamID,
			strings.Join(rec.PPTKeywords, skillSeparator),
			strconv.FormatFloat(rec.MatchScore, 'f', 2, 64),
			strings.Join(rec.MatchedSkills, skillSeparator),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row for team %s: %w", rec.TeamID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSeatAllocations writes one CSV row per seat allocation record.
// Unplaced teams keep empty room/row columns; the message column carries
// the reason either way.
func WriteSeatAllocations(w io.Writer, records []allocation.SeatAllocation) error {
	cw := csv.NewWriter(w)
	header := []string{"team_size", "room_no", "row", "remaining_seats_in_row", "message"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for i, rec := range records {
		roomNo, row := "", ""
		if rec.RoomNo != nil {
			roomNo = *rec.RoomNo
		}
		if rec.Row != nil {
			row = strconv.Itoa(*rec.Row)
		}
		out := []string{
			strconv.Itoa(rec.TeamSize),
			roomNo,
			row,
			strconv.Itoa(rec.RemainingSeatsInRow),
			rec.Message,
		}
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("export: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
