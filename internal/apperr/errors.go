package apperr

import "errors"

// ErrInvalidArgument is returned when a required input is absent.
// Use errors.Is(err, apperr.ErrInvalidArgument) to detect it regardless of
// which package reported it.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrTemplateUnavailable is returned when the source template cannot be
// located or read. The underlying cause is wrapped alongside it.
var ErrTemplateUnavailable = errors.New("template unavailable")

// ErrOutputDirectory is returned when the output directory tree cannot be created.
var ErrOutputDirectory = errors.New("could not create output directory")

// ErrOutputWrite is returned when the generated file cannot be written.
var ErrOutputWrite = errors.New("could not write output file")
