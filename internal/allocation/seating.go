package allocation

import (
	"fmt"
	"sort"
)

// Team is one group of participants to seat. Teams are atomic: all members
// sit in the same row, in contiguous seats, never split across rows or
// rooms. Identity is positional; the caller keeps its own labels.
type Team struct {
	TeamSize int
}

// SeatAllocation is the outcome for one team. RoomNo and Row are nil when no
// row anywhere could hold the team; Message then explains why. Row numbers
// are one-based for display. Records come back in processing order
// (largest team first); callers wanting input order must re-sort.
type SeatAllocation struct {
	TeamSize            int     `json:"team_size"`
	RoomNo              *string `json:"room_no"`
	Row                 *int    `json:"row"`
	RemainingSeatsInRow int     `json:"remaining_seats_in_row"`
	Message             string  `json:"message"`
}

// Placed reports whether the team found a row.
func (a SeatAllocation) Placed() bool { return a.RoomNo != nil }

// AllocateSeats packs teams into room rows using best-fit-decreasing.
// Largest teams are placed first so they are not stranded by fragmentation
// from small teams; each team then goes to the tightest row that still holds
// it (the smallest remaining count >= the team size), ties going to the
// earliest room and row in declaration order. A team larger than every row,
// or left over once all rows are full, yields an unplaced record rather than
// aborting the run; exactly one record is emitted per input team.
func AllocateSeats(rooms []Room, teams []Team) []SeatAllocation {
	layouts := make([]*RoomLayout, len(rooms))
	widestRow := 0
	for i, r := range rooms {
		layouts[i] = NewRoomLayout(r)
		if r.SeatsPerRow > widestRow {
			widestRow = r.SeatsPerRow
		}
	}

	queue := make([]Team, len(teams))
	copy(queue, teams)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].TeamSize > queue[j].TeamSize
	})

	out := make([]SeatAllocation, 0, len(queue))
	for _, t := range queue {
		bestLayout, bestRow := findBestFit(layouts, t.TeamSize)
		if bestLayout == nil {
			out = append(out, SeatAllocation{
				TeamSize: t.TeamSize,
				Message:  unplacedMessage(t.TeamSize, widestRow),
			})
			continue
		}

		left, err := bestLayout.Place(bestRow, t.TeamSize)
		if err != nil {
			// findBestFit only returns rows that fit, so this is unreachable;
			// report it as unplaced rather than dropping the team.
			out = append(out, SeatAllocation{TeamSize: t.TeamSize, Message: err.Error()})
			continue
		}

		roomNo := bestLayout.RoomNo()
		row := bestRow + 1
		out = append(out, SeatAllocation{
			TeamSize:            t.TeamSize,
			RoomNo:              &roomNo,
			Row:                 &row,
			RemainingSeatsInRow: left,
			Message:             fmt.Sprintf("seated in room %s, row %d", roomNo, row),
		})
	}
	return out
}

// findBestFit scans every row of every room and returns the row with the
// smallest remaining seat count that still holds the team. Strict less-than
// keeps the earliest room/row on ties. Returns (nil, -1) when nothing fits.
func findBestFit(layouts []*RoomLayout, teamSize int) (*RoomLayout, int) {
	var best *RoomLayout
	bestRow := -1
	bestRemaining := 0
	for _, l := range layouts {
		for row := 0; row < l.Rows(); row++ {
			rem := l.Remaining(row)
			if rem < teamSize {
				continue
			}
			if best == nil || rem < bestRemaining {
				best = l
				bestRow = row
				bestRemaining = rem
			}
		}
	}
	return best, bestRow
}

func unplacedMessage(teamSize, widestRow int) string {
	if teamSize > widestRow {
		return fmt.Sprintf("team of size %d exceeds every row capacity (widest row holds %d)", teamSize, widestRow)
	}
	return fmt.Sprintf("no row has %d contiguous seats remaining", teamSize)
}
