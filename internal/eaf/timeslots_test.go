package eaf

import (
	"testing"

	"github.com/mgpai22/srt2eaf/internal/subtitle"
)

func cues(times ...int64) []subtitle.Cue {
	var out []subtitle.Cue
	for i := 0; i+1 < len(times); i += 2 {
		out = append(out, subtitle.Cue{Index: i/2 + 1, StartTime: times[i], EndTime: times[i+1]})
	}
	return out
}

func TestTimeSlotTableDeduplicates(t *testing.T) {
	table := NewTimeSlotTable()

	added := table.Register(cues(1000, 2000, 2000, 3000, 1000, 3000))
	if added != 3 {
		t.Errorf("expected 3 new slots, got %d", added)
	}
	if table.Len() != 3 {
		t.Fatalf("expected 3 slots, got %d", table.Len())
	}

	added = table.Register(cues(1000, 4000))
	if added != 1 {
		t.Errorf("expected 1 new slot, got %d", added)
	}

	want := map[int64]string{1000: "ts1", 2000: "ts2", 3000: "ts3", 4000: "ts4"}
	for ms, id := range want {
		got, ok := table.ID(ms)
		if !ok || got != id {
			t.Errorf("ID(%d) = %q, %v; want %q", ms, got, ok, id)
		}
	}
	if _, ok := table.ID(5000); ok {
		t.Error("ID(5000) should not exist")
	}
}

func TestTimeSlotTableSlotsAreTimeOrdered(t *testing.T) {
	table := NewTimeSlotTable()
	table.Register(cues(5000, 6000))
	table.Register(cues(1000, 2000))

	slots := table.Slots()
	wantValues := []int64{1000, 2000, 5000, 6000}
	wantIDs := []string{"ts3", "ts4", "ts1", "ts2"}
	if len(slots) != len(wantValues) {
		t.Fatalf("expected %d slots, got %d", len(wantValues), len(slots))
	}
	for i := range slots {
		if slots[i].Value != wantValues[i] || slots[i].ID != wantIDs[i] {
			t.Errorf("slot %d = %+v, want {%s %d}", i, slots[i], wantIDs[i], wantValues[i])
		}
	}
}

func TestTimeSlotTableIDsStayStable(t *testing.T) {
	table := NewTimeSlotTable()
	table.Register(cues(100, 200))
	before, _ := table.ID(200)
	table.Register(cues(50, 150, 200, 300))
	after, _ := table.ID(200)
	if before != after {
		t.Errorf("slot id for 200 changed from %s to %s", before, after)
	}
}
