package main

import "errors"

// Error kinds returned by the config store. Each error carries exactly one of
// these, so callers can test with errors.Is.
var (
	ErrPathResolution = errors.New("cannot determine config directory")
	ErrNotFound       = errors.New("config file not found")
	ErrParse          = errors.New("failed to parse config file")
	ErrRead           = errors.New("failed to read config file")
	ErrWrite          = errors.New("failed to write config file")
)
