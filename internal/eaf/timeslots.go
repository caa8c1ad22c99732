package eaf

import (
	"fmt"
	"sort"

	"github.com/mgpai22/srt2eaf/internal/subtitle"
)

// TimeSlot pairs a slot id with its time value in milliseconds.
type TimeSlot struct {
	ID    string
	Value int64
}

// TimeSlotTable is the run-wide, deduplicated set of time points. Ids are
// handed out in allocation order (ts1, ts2, ...) and never reused; Slots
// returns them sorted by time.
type TimeSlotTable struct {
	ids    map[int64]string
	nextID int
}

func NewTimeSlotTable() *TimeSlotTable {
	return &TimeSlotTable{
		ids:    make(map[int64]string),
		nextID: 1,
	}
}

// Register folds the start and end times of cues into the table and
// returns how many new slots were allocated. Points first seen in the same
// call are allocated in ascending time order.
func (t *TimeSlotTable) Register(cues []subtitle.Cue) int {
	points := make(map[int64]struct{}, len(cues)*2)
	for _, cue := range cues {
		points[cue.StartTime] = struct{}{}
		points[cue.EndTime] = struct{}{}
	}

	fresh := make([]int64, 0, len(points))
	for p := range points {
		if _, exists := t.ids[p]; !exists {
			fresh = append(fresh, p)
		}
	}
	sort.Slice(fresh, func(i, j int) bool { return fresh[i] < fresh[j] })

	for _, p := range fresh {
		t.ids[p] = fmt.Sprintf("ts%d", t.nextID)
		t.nextID++
	}
	return len(fresh)
}

// ID looks up the slot id for a time value.
func (t *TimeSlotTable) ID(ms int64) (string, bool) {
	id, ok := t.ids[ms]
	return id, ok
}

func (t *TimeSlotTable) Len() int {
	return len(t.ids)
}

// Slots returns every slot in ascending time order.
func (t *TimeSlotTable) Slots() []TimeSlot {
	slots := make([]TimeSlot, 0, len(t.ids))
	for value, id := range t.ids {
		slots = append(slots, TimeSlot{ID: id, Value: value})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Value < slots[j].Value })
	return slots
}
