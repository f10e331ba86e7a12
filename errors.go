package scribe

import "errors"

// Sentinel errors returned by assistant operations.
var (
	// ErrAgentNotCreated is returned by every writing operation invoked
	// before CreateAgent has run.
	ErrAgentNotCreated = errors.New("scribe: create the agent first")

	ErrUnknownStructure   = errors.New("scribe: unknown structure type")
	ErrUnknownDepth       = errors.New("scribe: unknown research depth")
	ErrUnknownStylePreset = errors.New("scribe: unknown style preset")
	ErrNoDocumentsMatched = errors.New("scribe: no documents matched pattern")
)
