package hooks

import (
	"context"
	"sync"

	"github.com/Artexxx/HR-Console/internal/apiclient"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// resource holds the idle → loading → success|error state of one fetch target.
//
// Overlapping loads are neither cancelled nor fenced: whichever fetch completes
// last writes the state, even if it was started first.
type resource[T any] struct {
	mu          sync.RWMutex
	status      Status
	data        T
	hasData     bool
	err         string
	fallback    string
	keepOnError bool
}

func (r *resource[T]) load(ctx context.Context, fetch func(context.Context) (T, error)) {
	r.mu.Lock()
	r.status = StatusLoading
	r.err = ""
	r.mu.Unlock()

	data, err := fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.status = StatusError
		r.err = apiclient.Message(err, r.fallback)

		if !r.keepOnError {
			var zero T
			r.data = zero
			r.hasData = false
		}

		return
	}

	r.status = StatusSuccess
	r.data = data
	r.hasData = true
}

func (r *resource[T]) snapshot() (Status, T, bool, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.status, r.data, r.hasData, r.err
}
