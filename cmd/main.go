// Command convertall converts every file with a given extension under a folder
// by running an external tool once per file, several files at a time.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	"convertall/internal/config"
	"convertall/internal/logging"
	"convertall/internal/pipeline"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	os.Exit(run())
}

// run returns 0 once the tree was scanned and every started conversion
// finished, whether or not individual conversions failed.
func run() int {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if errors.Is(err, config.ErrVersion) {
		fmt.Fprintln(os.Stdout, "convertall v"+version)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "convertall: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "convertall: %v\n", err)
		return 1
	}

	closer, err := logging.Setup(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "convertall: %v\n", err)
		return 1
	}
	defer func() { _ = closer.Close() }()

	if cfg.ConfigPath != "" {
		log.Debug().Str("config", cfg.ConfigPath).Msg("loaded preset")
	}

	if !cfg.DryRun {
		if err := checkCommand(cfg.Command[0]); err != nil {
			log.Error().Err(err).Msg("converter not available")
			return 1
		}
	}

	if _, err := pipeline.Run(context.Background(), cfg, os.Stdout); err != nil {
		return 1
	}
	return 0
}

// checkCommand fails fast when the converter cannot be found, instead of
// reporting the same launch failure once per file. Templated executables are
// left to the scheduler.
func checkCommand(name string) error {
	if strings.Contains(name, "{") {
		return nil
	}
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("look up %q: %w", name, err)
	}
	return nil
}
