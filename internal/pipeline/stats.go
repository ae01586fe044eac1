package pipeline

import "convertall/internal/task"

// RunStats tracks planning counters and the scheduler's outcome for a run.
type RunStats struct {
	Found   int // input files matching the extension
	Skipped int // output already present, overwrite off
	Planned int // scheduled, or printed in dry-run mode
	Tasks   task.Stats
}

// Converted returns the number of tasks whose final output is in place.
func (s *RunStats) Converted() int {
	return s.Tasks.Succeeded - s.Tasks.CommitFailed
}
