package config

import "errors"

var (
	ErrMissingFlag  = errors.New("missing required flag")
	ErrInvalidJobs  = errors.New("invalid jobs")
	ErrEmptyCommand = errors.New("no command given: pass the converter and its arguments after the flags")
	// ErrVersion is returned by Parse when --version was given.
	ErrVersion = errors.New("version requested")
)
