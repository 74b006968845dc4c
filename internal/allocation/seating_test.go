package allocation

import (
	"strings"
	"testing"
)

func TestAllocateSeats_EndToEnd(t *testing.T) {
	rooms := []Room{{RoomNo: "Room1", SeatsPerRow: 4, NumRows: 2}}
	teams := []Team{{TeamSize: 4}, {TeamSize: 3}, {TeamSize: 1}}

	out := AllocateSeats(rooms, teams)
	if len(out) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out))
	}

	// Largest first fills row 1 exactly; best-fit then packs 3 and 1 into
	// row 2 with nothing wasted.
	if !out[0].Placed() || out[0].RemainingSeatsInRow != 0 {
		t.Errorf("team of 4 should fill a row: %+v", out[0])
	}
	if !out[1].Placed() || out[1].RemainingSeatsInRow != 1 {
		t.Errorf("team of 3 should leave one seat: %+v", out[1])
	}
	if !out[2].Placed() || out[2].RemainingSeatsInRow != 0 {
		t.Errorf("team of 1 should take the last seat: %+v", out[2])
	}
	if *out[1].RoomNo != "Room1" || *out[2].Row != *out[1].Row {
		t.Errorf("teams of 3 and 1 should share the second row: %+v %+v", out[1], out[2])
	}
}

func TestAllocateSeats_OneRecordPerTeam(t *testing.T) {
	rooms := []Room{{RoomNo: "R1", SeatsPerRow: 2, NumRows: 1}}
	teams := []Team{{TeamSize: 2}, {TeamSize: 2}, {TeamSize: 9}}
	out := AllocateSeats(rooms, teams)
	if len(out) != len(teams) {
		t.Fatalf("expected %d records, got %d", len(teams), len(out))
	}
}

func TestAllocateSeats_CapacityInvariant(t *testing.T) {
	rooms := []Room{
		{RoomNo: "A", SeatsPerRow: 5, NumRows: 2},
		{RoomNo: "B", SeatsPerRow: 3, NumRows: 3},
	}
	teams := []Team{
		{TeamSize: 3}, {TeamSize: 2}, {TeamSize: 5}, {TeamSize: 1},
		{TeamSize: 4}, {TeamSize: 2}, {TeamSize: 3}, {TeamSize: 1},
	}

	capacity := map[string]int{"A": 5, "B": 3}
	used := map[string]map[int]int{} // roomNo -> row -> seats used

	for _, rec := range AllocateSeats(rooms, teams) {
		if !rec.Placed() {
			continue
		}
		room := *rec.RoomNo
		if used[room] == nil {
			used[room] = map[int]int{}
		}
		used[room][*rec.Row] += rec.TeamSize
		if used[room][*rec.Row] > capacity[room] {
			t.Errorf("room %s row %d overbooked: %d seats used of %d",
				room, *rec.Row, used[room][*rec.Row], capacity[room])
		}
	}
}

func TestAllocateSeats_TeamWiderThanEveryRow(t *testing.T) {
	rooms := []Room{{RoomNo: "R1", SeatsPerRow: 4, NumRows: 3}}
	out := AllocateSeats(rooms, []Team{{TeamSize: 5}})
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	rec := out[0]
	if rec.Placed() || rec.Row != nil {
		t.Fatalf("team of 5 can never sit in 4-seat rows: %+v", rec)
	}
	if !strings.Contains(rec.Message, "exceeds every row capacity") {
		t.Errorf("message should explain the capacity problem, got %q", rec.Message)
	}
}

func TestAllocateSeats_RoomsFull(t *testing.T) {
	rooms := []Room{{RoomNo: "R1", SeatsPerRow: 3, NumRows: 1}}
	out := AllocateSeats(rooms, []Team{{TeamSize: 3}, {TeamSize: 2}})
	if !out[0].Placed() {
		t.Fatalf("first team should be seated: %+v", out[0])
	}
	if out[1].Placed() {
		t.Fatalf("second team cannot fit once the only row is full: %+v", out[1])
	}
	if !strings.Contains(out[1].Message, "contiguous seats remaining") {
		t.Errorf("message should explain rows are full, got %q", out[1].Message)
	}
}

func TestAllocateSeats_BestFitPrefersTightestRow(t *testing.T) {
	// Row 1 of A ends with 3 free seats, B's rows have 4; a team of 3 must
	// take the tighter 3-seat gap, not open a fresh 4-seat row.
	rooms := []Room{
		{RoomNo: "A", SeatsPerRow: 5, NumRows: 1},
		{RoomNo: "B", SeatsPerRow: 4, NumRows: 1},
	}
	out := AllocateSeats(rooms, []Team{{TeamSize: 2}, {TeamSize: 3}})

	// Descending order: team of 3 first into B (tightest fit, 4 < 5), then
	// team of 2 into A.
	if *out[0].RoomNo != "B" {
		t.Errorf("team of 3 should best-fit into room B, got %s", *out[0].RoomNo)
	}
	if *out[1].RoomNo != "A" {
		t.Errorf("team of 2 should land in room A, got %s", *out[1].RoomNo)
	}
}

func TestAllocateSeats_TieGoesToEarliestRoom(t *testing.T) {
	rooms := []Room{
		{RoomNo: "first", SeatsPerRow: 4, NumRows: 1},
		{RoomNo: "second", SeatsPerRow: 4, NumRows: 1},
	}
	out := AllocateSeats(rooms, []Team{{TeamSize: 2}})
	if *out[0].RoomNo != "first" {
		t.Errorf("equal fits must resolve to the first declared room, got %s", *out[0].RoomNo)
	}
	if *out[0].Row != 1 {
		t.Errorf("expected first row, got %d", *out[0].Row)
	}
}

func TestAllocateSeats_LargestFirstAvoidsStranding(t *testing.T) {
	// Input order has the small team first; without decreasing sort the
	// 4-team would be stranded by the 1-team fragmenting its only row.
	rooms := []Room{{RoomNo: "R1", SeatsPerRow: 4, NumRows: 1}, {RoomNo: "R2", SeatsPerRow: 1, NumRows: 1}}
	out := AllocateSeats(rooms, []Team{{TeamSize: 1}, {TeamSize: 4}})
	for _, rec := range out {
		if !rec.Placed() {
			t.Errorf("both teams fit when the large one goes first: %+v", rec)
		}
	}
}

func TestAllocateSeats_NoRooms(t *testing.T) {
	out := AllocateSeats(nil, []Team{{TeamSize: 2}})
	if len(out) != 1 || out[0].Placed() {
		t.Fatalf("expected one unplaced record, got %+v", out)
	}
}
