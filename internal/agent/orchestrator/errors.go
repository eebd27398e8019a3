package orchestrator

import "errors"

var (
	// ErrModelInvocation wraps a failed language model call. Fatal to the turn.
	ErrModelInvocation = errors.New("model invocation failed")
	// ErrIterationLimit is reported when the model keeps proposing actions
	// past the configured cap.
	ErrIterationLimit = errors.New("iteration limit exceeded")
	// ErrEmptyUtterance rejects a turn with nothing to say.
	ErrEmptyUtterance = errors.New("utterance is empty")
)
