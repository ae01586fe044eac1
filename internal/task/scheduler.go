package task

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Scheduler runs tasks as external processes, at most Jobs at a time.
//
// Every method must be called from a single goroutine. Each running process
// has a waiter goroutine that only reports the exit on the done channel; slot
// bookkeeping, commits and stats all happen on the calling goroutine.
type Scheduler struct {
	slots   []slot
	running int
	done    chan exit
	stats   Stats
	stdout  io.Writer
	stderr  io.Writer
}

// slot holds at most one running process. Slots are reused for the whole run.
type slot struct {
	cmd  *exec.Cmd
	task Task
}

func (s slot) empty() bool { return s.cmd == nil }

// exit is what a waiter goroutine reports when its process ends.
type exit struct {
	slot int
	err  error
}

// NewScheduler creates a scheduler with opts.Jobs slots.
func NewScheduler(opts Options) *Scheduler {
	if opts.Jobs <= 0 {
		opts.Jobs = defaultJobs
	}
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Scheduler{
		slots:  make([]slot, opts.Jobs),
		done:   make(chan exit, opts.Jobs),
		stdout: stdout,
		stderr: stderr,
	}
}

// Schedule blocks until a slot is free, then starts t in it and returns.
// If ctx ends first the task is not accepted and ctx.Err() is returned.
// A process that cannot be started counts as a failed task, not an error.
func (s *Scheduler) Schedule(ctx context.Context, t Task) error {
	if len(t.Args) == 0 {
		return ErrEmptyCommand
	}

	s.reapFinished()
	for s.IsBusy() {
		select {
		case e := <-s.done:
			s.reap(e)
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		}
	}

	s.launch(s.firstFree(), t)
	return nil
}

// Drain waits for every running process and applies its commit step.
// Returns false if ctx ended before all processes finished.
func (s *Scheduler) Drain(ctx context.Context) bool {
	for s.running > 0 {
		select {
		case e := <-s.done:
			s.reap(e)
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// IsBusy reports whether every slot holds a running process.
func (s *Scheduler) IsBusy() bool {
	return s.running >= len(s.slots)
}

// Running returns the number of processes currently in flight.
func (s *Scheduler) Running() int { return s.running }

// Jobs returns the number of slots.
func (s *Scheduler) Jobs() int { return len(s.slots) }

func (s *Scheduler) Stats() Stats { return s.stats }

// reapFinished handles every exit already reported without blocking.
func (s *Scheduler) reapFinished() {
	for {
		select {
		case e := <-s.done:
			s.reap(e)
		default:
			return
		}
	}
}

func (s *Scheduler) firstFree() int {
	for i := range s.slots {
		if s.slots[i].empty() {
			return i
		}
	}
	// unreachable while callers check IsBusy first
	panic("task: no free slot")
}
