package task

import (
	"errors"
	"os/exec"

	fileutil "convertall/internal/file"

	"github.com/rs/zerolog/log"
)

// launch starts t in slot idx. The waiter goroutine never blocks on send:
// done has one buffered entry per slot.
func (s *Scheduler) launch(idx int, t Task) {
	cmd := exec.Command(t.Args[0], t.Args[1:]...) //nolint:gosec // the command template is the operator's
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	log.Debug().Str("task_id", t.ID).Int("slot", idx).Str("cmd", t.CommandLine()).Msg("starting")
	if err := cmd.Start(); err != nil {
		s.stats.Failed++
		log.Error().Str("task_id", t.ID).Str("cmd", t.CommandLine()).Err(err).Msg("command failed to start")
		return
	}

	s.slots[idx] = slot{cmd: cmd, task: t}
	s.running++
	s.stats.Launched++

	go func() {
		s.done <- exit{slot: idx, err: cmd.Wait()}
	}()
}

// reap frees the slot of a finished process, then commits or reports it.
func (s *Scheduler) reap(e exit) {
	finished := s.slots[e.slot].task
	s.slots[e.slot] = slot{}
	s.running--

	if e.err != nil {
		s.stats.Failed++
		evt := log.Error().
			Str("task_id", finished.ID).
			Str("cmd", finished.CommandLine()).
			Err(e.err)
		var exitErr *exec.ExitError
		if errors.As(e.err, &exitErr) {
			evt = evt.Int("exit_code", exitErr.ExitCode())
		}
		evt.Msg("conversion failed")
		return
	}

	s.stats.Succeeded++
	if finished.TempPath != "" {
		if err := fileutil.Commit(finished.TempPath, finished.OutputPath); err != nil {
			s.stats.CommitFailed++
			log.Error().
				Str("task_id", finished.ID).
				Str("tmp", finished.TempPath).
				Str("output", finished.OutputPath).
				Err(err).
				Msg("failed to rename temporary output")
			return
		}
	}
	log.Info().Str("task_id", finished.ID).Str("output", finished.OutputPath).Msg("converted")
}
