package config

// Flags: --in, --in_ext, --out, --out_ext, --dry_run, --overwrite, --tmp and
// --jobs, then the command template as the remaining arguments. When --config
// names a preset, the preset supplies the defaults and the command line is
// parsed again on top of it.

import (
	"flag"
	"fmt"
	"io"
	"os"
)

const usageEpilog = `
The tool recreates the input directory tree at the output, replacing file
extensions and names of folders that are exactly equal to the input extension.
For example, converting png to jpg turns blah/png/image.png into blah/jpg/image.jpg.

In the command template {i} expands to the input path and {o} to the output
path ({{ and }} give literal braces). Put -- before the template when its first
token starts with a dash.`

// Parse builds a Config from command-line args (without the program name).
// On --help it prints usage and returns flag.ErrHelp; on --version it returns
// ErrVersion.
func Parse(args []string) (Config, error) {
	cfg := Default()
	showVersion, err := parseInto(&cfg, args, os.Stderr)
	if err != nil {
		return cfg, err
	}
	if showVersion {
		return cfg, ErrVersion
	}

	if cfg.ConfigPath == "" {
		return cfg, nil
	}
	preset, err := Load(cfg.ConfigPath)
	if err != nil {
		return cfg, fmt.Errorf("load %s: %w", cfg.ConfigPath, err)
	}
	// Second pass: preset values are the defaults, explicit flags win.
	if _, err := parseInto(&preset, args, io.Discard); err != nil {
		return preset, err
	}
	return preset, nil
}

func parseInto(cfg *Config, args []string, output io.Writer) (bool, error) {
	fs := flag.NewFlagSet("convertall", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { printUsage(fs) }

	var showVersion bool
	fs.StringVar(&cfg.InputDir, "in", cfg.InputDir, "Input folder to scan recursively")
	fs.StringVar(&cfg.InputExt, "in_ext", cfg.InputExt, "Extension of input files")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output folder where to write results")
	fs.StringVar(&cfg.OutputExt, "out_ext", cfg.OutputExt, "Extension of output files")
	fs.BoolVar(&cfg.DryRun, "dry_run", cfg.DryRun, "Dry run (print commands, do not run the tool)")
	fs.BoolVar(&cfg.Overwrite, "overwrite", cfg.Overwrite, "Overwrite output files")
	fs.StringVar(&cfg.TempExt, "tmp", cfg.TempExt, "File extension to use for temporaries")
	fs.IntVar(&cfg.Jobs, "jobs", cfg.Jobs, "Max number of parallel executions of the command")
	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "YAML preset with default settings")
	fs.StringVar(&cfg.LogLevel, "log_level", cfg.LogLevel, "Log level: debug | info | warn | error")
	fs.StringVar(&cfg.LogFile, "log_file", cfg.LogFile, "Append logs to file")
	fs.BoolVar(&cfg.NoColor, "no_color", cfg.NoColor, "Disable colored logs")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return false, err //nolint:wrapcheck
	}
	if rest := fs.Args(); len(rest) > 0 {
		cfg.Command = append([]string(nil), rest...)
	}
	return showVersion, nil
}

func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "Convert all files with a specified extension within a folder")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  convertall --in PATH --in_ext EXT --out PATH --out_ext EXT [OPTIONS] COMMAND [ARGS...]")
	fmt.Fprintln(out)
	fs.PrintDefaults()
	fmt.Fprintln(out, usageEpilog)
}
