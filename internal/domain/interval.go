package domain

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching endpoints do not overlap: [10:00,11:00) and [11:00,12:00) are compatible.
func (i Interval) Overlaps(o Interval) bool {
	if !i.End.After(o.Start) {
		return false
	}
	if !o.End.After(i.Start) {
		return false
	}
	return true
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// EpicSchedule is the time rollup of an epic over its subtasks.
type EpicSchedule struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// RollupSchedule derives an epic's schedule from its subtasks:
// earliest start, latest end, and the sum of the subtasks' own durations.
// The duration is not the envelope length; gaps between subtasks are not counted.
// No subtasks yields the zero schedule.
func RollupSchedule(subtasks []Task) EpicSchedule {
	var s EpicSchedule
	for i := range subtasks {
		st := &subtasks[i]
		if i == 0 || st.Start.Before(s.Start) {
			s.Start = st.Start
		}
		if end := st.End(); i == 0 || end.After(s.End) {
			s.End = end
		}
		s.Duration += st.Duration
	}
	return s
}

// RollupStatus derives an epic's status from its subtasks.
// Any new or in-progress subtask makes the epic in progress; otherwise it is done.
// An empty set is done as well.
func RollupStatus(subtasks []Task) Status {
	for i := range subtasks {
		if subtasks[i].Status.IsOpen() {
			return StatusInProgress
		}
	}
	return StatusDone
}

// Apply writes the schedule onto an epic.
func (s EpicSchedule) Apply(epic *Task) {
	epic.Start = s.Start
	epic.EpicEnd = s.End
	epic.Duration = s.Duration
}
