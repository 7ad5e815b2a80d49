package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"anniversaries/internal/directory"
	"anniversaries/internal/domain"
)

// AnniversaryService turns a directory query into the ordered list of
// employees celebrating a work anniversary. It holds no per-call state and
// can be shared between widgets.
type AnniversaryService struct {
	source     directory.Source
	location   *time.Location
	weekPolicy directory.WeekPolicy
	now        func() time.Time
	logger     *slog.Logger
}

type Option func(*AnniversaryService)

func WithClock(now func() time.Time) Option {
	return func(s *AnniversaryService) {
		s.now = now
	}
}

func WithLocation(loc *time.Location) Option {
	return func(s *AnniversaryService) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithWeekPolicy(policy directory.WeekPolicy) Option {
	return func(s *AnniversaryService) {
		s.weekPolicy = policy
	}
}

func NewAnniversaryService(source directory.Source, logger *slog.Logger, opts ...Option) *AnniversaryService {
	s := &AnniversaryService{
		source:     source,
		location:   time.UTC,
		weekPolicy: directory.WeekRolling,
		now:        time.Now,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now is the service clock in the configured location.
func (s *AnniversaryService) Now() time.Time {
	return s.now().In(s.location)
}

// FetchAnniversaries issues one directory query for the window selected by r
// and returns records with at least one year of tenure, ordered by years,
// then display name, then identity. maxItems <= 0 returns everything.
func (s *AnniversaryService) FetchAnniversaries(ctx context.Context, maxItems int, r domain.DateRange) ([]domain.EmployeeRecord, error) {
	now := s.Now()
	window := directory.WindowFor(r, now, s.weekPolicy)

	raw, err := s.source.QueryHireDateAnniversaries(ctx, window)
	if err != nil {
		return nil, &domain.DataSourceError{Op: "query hire date anniversaries", Err: err}
	}

	type ranked struct {
		rec   domain.EmployeeRecord
		years int
	}

	items := make([]ranked, 0, len(raw))
	for _, e := range raw {
		hireDate, err := directory.ParseHireDate(e.HireDate)
		if err != nil {
			s.logger.DebugContext(ctx, "skipping employee without usable hire date",
				slog.String("identity", e.Identity),
				slog.String("error", err.Error()),
			)
			continue
		}

		years := domain.YearsOfService(hireDate, now)
		if years < 1 {
			continue
		}

		items = append(items, ranked{
			rec: domain.EmployeeRecord{
				Identity:    e.Identity,
				DisplayName: e.DisplayName,
				JobTitle:    e.JobTitle,
				Department:  e.Department,
				HireDate:    hireDate,
			},
			years: years,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].years != items[j].years {
			return items[i].years < items[j].years
		}
		if items[i].rec.DisplayName != items[j].rec.DisplayName {
			return items[i].rec.DisplayName < items[j].rec.DisplayName
		}
		return items[i].rec.Identity < items[j].rec.Identity
	})

	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}

	records := make([]domain.EmployeeRecord, 0, len(items))
	for _, it := range items {
		records = append(records, it.rec)
	}

	s.logger.DebugContext(ctx, "anniversaries fetched",
		slog.String("window", window.String()),
		slog.Int("source_count", len(raw)),
		slog.Int("count", len(records)),
	)

	return records, nil
}

// Anniversaries is FetchAnniversaries with tenure annotations, for API
// consumers that do not run a presenter.
func (s *AnniversaryService) Anniversaries(ctx context.Context, q domain.AnniversaryQuery, singular, plural string) ([]domain.Anniversary, error) {
	records, err := s.FetchAnniversaries(ctx, q.MaxItems, q.Range)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	items := make([]domain.Anniversary, 0, len(records))
	for _, rec := range records {
		if a, ok := domain.Annotate(rec, now, singular, plural); ok {
			items = append(items, a)
		}
	}
	return items, nil
}
