package task

import (
	"io"

	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
)

// Task is one planned invocation of the converter for one input file.
type Task struct {
	ID         string
	InputPath  string
	OutputPath string
	// TempPath is where the command writes when temporary-extension mode is on.
	// Empty means the command writes OutputPath directly.
	TempPath string
	Args     []string
}

// New creates a task with a fresh ID.
func New(inputPath, outputPath, tempPath string, args []string) Task {
	return Task{
		ID:         uuid.NewString(),
		InputPath:  inputPath,
		OutputPath: outputPath,
		TempPath:   tempPath,
		Args:       args,
	}
}

// CommandLine renders Args the way a POSIX shell would accept them.
func (t Task) CommandLine() string {
	return FormatCommand(t.Args)
}

// Stats counts task outcomes observed by the scheduler.
type Stats struct {
	Launched     int
	Succeeded    int
	Failed       int
	CommitFailed int
}

// Options configures a Scheduler.
type Options struct {
	Jobs int
	// Stdout and Stderr receive the converter's output; nil means inherit.
	Stdout io.Writer
	Stderr io.Writer
}

const defaultJobs = 1

// FormatCommand joins args into one line a POSIX shell splits back into args.
func FormatCommand(args []string) string {
	return shellquote.Join(args...)
}
