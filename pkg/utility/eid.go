package utility

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// ExecutionID identifies one process run; every log line and report carries it.
type ExecutionID = uuid.UUID

var executionID atomic.Pointer[ExecutionID]

func GetExecutionID() ExecutionID {
	if id := executionID.Load(); id != nil {
		return *id
	}

	id := uuid.Must(uuid.NewV7())
	if executionID.CompareAndSwap(nil, &id) {
		return id
	}
	return *executionID.Load()
}

func ResetExecutionID() ExecutionID {
	id := uuid.Must(uuid.NewV7())
	executionID.Store(&id)
	return id
}
