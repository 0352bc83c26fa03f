package hooks

import (
	"context"
	"sync"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type StatsGetter interface {
	Stats(ctx context.Context) (dto.Stats, error)
}

type StatsState struct {
	Status Status
	Stats  *dto.Stats
	Error  string
}

func (s StatsState) Loading() bool {
	return s.Status == StatusLoading
}

// Stats fetches the dashboard statistics once per mount.
type Stats struct {
	api StatsGetter
	res resource[dto.Stats]

	once sync.Once
}

func NewStats(api StatsGetter) *Stats {
	return &Stats{
		api: api,
		res: resource[dto.Stats]{fallback: "Failed to fetch statistics", keepOnError: true},
	}
}

func (h *Stats) Mount(ctx context.Context) StatsState {
	h.once.Do(func() {
		h.fetch(ctx)
	})

	return h.State()
}

func (h *Stats) Refetch(ctx context.Context) StatsState {
	h.fetch(ctx)

	return h.State()
}

func (h *Stats) State() StatsState {
	status, stats, ok, errText := h.res.snapshot()

	state := StatsState{Status: status, Error: errText}
	if ok {
		state.Stats = &stats
	}

	return state
}

func (h *Stats) fetch(ctx context.Context) {
	h.res.load(ctx, h.api.Stats)
}
