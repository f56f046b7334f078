package core

// Interval is one contiguous stretch of CPU time given to a single process.
type Interval struct {
	ProcessID string
	Start     int
	End       int
}

// Timeline is the append-only Gantt record of a run. It does not check its
// own ordering; schedulers are expected to append in clock order.
type Timeline struct {
	intervals []Interval
}

func NewTimeline() *Timeline {
	return &Timeline{intervals: make([]Interval, 0)}
}

func (t *Timeline) Append(processID string, start, end int) {
	t.intervals = append(t.intervals, Interval{ProcessID: processID, Start: start, End: end})
}

// Intervals returns a copy of the recorded intervals.
func (t *Timeline) Intervals() []Interval {
	out := make([]Interval, len(t.intervals))
	copy(out, t.intervals)
	return out
}

// ContextSwitches counts adjacent intervals that belong to different processes.
func (t *Timeline) ContextSwitches() int {
	switches := 0
	for i := 1; i < len(t.intervals); i++ {
		if t.intervals[i].ProcessID != t.intervals[i-1].ProcessID {
			switches++
		}
	}
	return switches
}
