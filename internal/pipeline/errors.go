package pipeline

import (
	"fmt"

	"enricher/pkg/domain"
)

// StageError reports the stage a run failed in together with the cause.
type StageError struct {
	Stage domain.RunState
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageError(stage domain.RunState, err error) error {
	if err == nil {
		return nil
	}

	return &StageError{Stage: stage, Err: err}
}
