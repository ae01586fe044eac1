package task

import "errors"

var ErrEmptyCommand = errors.New("task has no command")
