package core

import (
	"errors"
)

var (
	// ErrModelUnavailable indicates the classifier artifacts are missing or
	// corrupt. This is fatal: the service must refuse to start rather than
	// fail per-request.
	ErrModelUnavailable = errors.New("classifier model unavailable")

	// ErrEmptyMessage is returned when a caller submits an empty message
	ErrEmptyMessage = errors.New("message is empty")

	// ErrMessageTooShort is returned when a message is below the configured
	// minimum length for meaningful analysis
	ErrMessageTooShort = errors.New("message is too short to analyze")
)
