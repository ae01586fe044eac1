// Package planner maps input files onto output paths and converter command
// lines.
//
// A file under the input root is a candidate when its name ends in
// ".<in_ext>". Its output path is the relative path with every component equal
// to in_ext renamed to out_ext and the final suffix forced to ".<out_ext>",
// joined under the output root. The planner only reads the filesystem; the
// driver creates directories and runs commands.
package planner

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"convertall/internal/config"
	fileutil "convertall/internal/file"
	"convertall/internal/task"
)

// Candidate is the planning outcome for one matching input file.
type Candidate struct {
	InputPath string
	// Skip is set when the final output exists and overwrite is off; Task is
	// then zero.
	Skip       bool
	OutputPath string
	Task       task.Task
}

// Planner turns input files into conversion tasks for one Config.
type Planner struct {
	cfg config.Config
}

func New(cfg config.Config) *Planner {
	return &Planner{cfg: cfg}
}

// Walk lazily yields one Candidate per matching file under the input root, in
// lexical order. A traversal error is yielded once and ends the sequence.
func (p *Planner) Walk() iter.Seq2[Candidate, error] {
	return func(yield func(Candidate, error) bool) {
		suffix := "." + p.cfg.InputExt
		stopped := false
		err := filepath.WalkDir(p.cfg.InputDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || path == p.cfg.InputDir || !strings.HasSuffix(d.Name(), suffix) {
				return nil
			}
			c, err := p.Plan(path)
			if err != nil {
				return err
			}
			if !yield(c, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield(Candidate{}, err)
		}
	}
}

// Plan computes the candidate for a single input file below the input root.
func (p *Planner) Plan(inputPath string) (Candidate, error) {
	rel, err := filepath.Rel(p.cfg.InputDir, inputPath)
	if err != nil {
		return Candidate{}, err //nolint:wrapcheck
	}
	outputPath := filepath.Join(p.cfg.OutputDir, OutputRel(rel, p.cfg.InputExt, p.cfg.OutputExt))

	c := Candidate{InputPath: inputPath, OutputPath: outputPath}
	if !p.cfg.Overwrite && fileutil.Exists(outputPath) {
		c.Skip = true
		return c, nil
	}

	tempPath := ""
	target := outputPath
	if p.cfg.TempExt != "" {
		tempPath = WithSuffix(outputPath, "."+p.cfg.TempExt)
		target = tempPath
	}
	c.Task = task.New(inputPath, outputPath, tempPath, ExpandCommand(p.cfg.Command, inputPath, target))
	return c, nil
}
