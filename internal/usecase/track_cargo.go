package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/customs/internal/domain"
	"github.com/aalvaropc/customs/internal/ports"
)

// TrackCargo runs the summary lookup, then the detail lookup for the first match.
type TrackCargo struct {
	gateway ports.CargoGateway
	clock   ports.Clock
	logger  *slog.Logger
	newID   func() string
}

type Option func(*TrackCargo)

func WithLogger(l *slog.Logger) Option {
	return func(uc *TrackCargo) { uc.logger = l }
}

// WithIDGenerator replaces the lookup ID source. Useful for tests.
func WithIDGenerator(gen func() string) Option {
	return func(uc *TrackCargo) { uc.newID = gen }
}

func NewTrackCargo(gw ports.CargoGateway, clk ports.Clock, opts ...Option) *TrackCargo {
	uc := &TrackCargo{
		gateway: gw,
		clock:   clk,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *TrackCargo) Execute(ctx context.Context, hbl string, year string) (domain.TrackResult, error) {
	q, err := domain.NewQuery(hbl, year, uc.clock.Now())
	if err != nil {
		return domain.TrackResult{}, err
	}

	res := domain.TrackResult{
		LookupID: uc.newID(),
		Query:    q,
	}
	log := uc.logger.With("lookup_id", res.LookupID)
	start := time.Now()

	log.Info("lookup.start", "hbl", q.HBL, "year", q.Year)

	fail := func(stage string, err error) (domain.TrackResult, error) {
		log.Warn("lookup.failed",
			"stage", stage,
			"kind", string(domain.KindOf(err)),
			"err", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return fail("start", err)
	}

	summary, err := uc.gateway.FetchSummary(ctx, q.HBL, q.Year)
	if err != nil {
		return fail("summary", err)
	}

	first, err := summary.First()
	if err != nil {
		return fail("summary", err)
	}
	log.Info("lookup.summary", "results", len(summary.Results), "cargo_mt_no", first.CargoManagementNo)

	if err := ctx.Err(); err != nil {
		return fail("detail", err)
	}

	detail, err := uc.gateway.FetchDetail(ctx, first.CargoManagementNo)
	if err != nil {
		return fail("detail", err)
	}
	log.Info("lookup.detail", "events", len(detail.Events), "status", detail.Master.Status)

	res.Detail = detail
	log.Info("lookup.done", "duration_ms", time.Since(start).Milliseconds())
	return res, nil
}
