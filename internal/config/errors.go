package config

import "errors"

// ErrConfigUnreadable is returned when an explicitly-named configuration
// source does not exist, is not a regular file, or is not readable.
var ErrConfigUnreadable = errors.New("config: source file unreadable")

// ErrConfigMalformed is returned when the configuration source fails to
// parse as JSON.
var ErrConfigMalformed = errors.New("config: malformed JSON")

// ErrSectionLoad is returned when a section loader fails (allocation
// trouble or an unrecoverable structural problem); the Configuration
// Loader discards the entire AppConfig when this occurs.
var ErrSectionLoad = errors.New("config: section load failed")
