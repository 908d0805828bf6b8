package core

// ProcessSpec is the immutable input description of one process. The engine
// never mutates a spec; all per-run bookkeeping (remaining burst, ready state)
// lives inside a single Simulate call.
type ProcessSpec struct {
	ID          int // unique, stable ordering token (e.g. insertion index)
	ArrivalTime int // simulated time at which the process becomes ready
	BurstTime   int // total CPU time required, > 0
	Priority    int // lower value = higher priority; Priority policy only
}

// ProcessResult holds the metrics derived for one process from a completed
// timeline. All fields are in simulated time units.
type ProcessResult struct {
	ID             int
	CompletionTime int // end of the process's last execution segment
	TurnAroundTime int // CompletionTime - ArrivalTime
	WaitingTime    int // TurnAroundTime - BurstTime
	ResponseTime   int // start of first execution segment - ArrivalTime
}

// ValidateSpecs checks the batch invariants: non-negative ids, non-negative
// arrival time, positive burst time, unique ids. The whole batch is rejected
// on the first violation; the returned error names the offending field and
// process id. Negative ids are rejected because they would alias the IdleID
// sentinel in the timeline.
func ValidateSpecs(specs []ProcessSpec) error {
	seen := make(map[int]struct{}, len(specs))
	for _, s := range specs {
		if s.ID < 0 {
			return &SpecError{ProcessID: s.ID, Field: "process_id", Reason: "must not be negative"}
		}
		if s.ArrivalTime < 0 {
			return &SpecError{ProcessID: s.ID, Field: "arrival_time", Reason: "must not be negative"}
		}
		if s.BurstTime < 1 {
			return &SpecError{ProcessID: s.ID, Field: "burst_time", Reason: "must be positive"}
		}
		if _, dup := seen[s.ID]; dup {
			return &SpecError{ProcessID: s.ID, Field: "process_id", Reason: "duplicate id"}
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}
