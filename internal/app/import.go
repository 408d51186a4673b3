package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orient_insight/internal/domain"
)

type ImportService struct {
	backend domain.BackendClient
	repo    domain.BookingRepository
	cache   domain.Cache
}

func NewImportService(c domain.BackendClient, r domain.BookingRepository, cache domain.Cache) *ImportService {
	return &ImportService{backend: c, repo: r, cache: cache}
}

// ImportBooking pulls one booking with its stays and travelers from the
// operator backend and upserts it. Known misses (404/401/403) are recorded
// and stop the import gracefully; anything else bubbles up.
func (s *ImportService) ImportBooking(ctx context.Context, id int64) error {
	p, err := s.backend.GetBooking(ctx, id)
	if err != nil {
		low := strings.ToLower(err.Error())

		if errors.Is(err, domain.ErrNotFound) || strings.Contains(low, "not found") {
			_ = s.repo.LogMiss(ctx, id, 404, "not found")
			s.invalidateBooking(ctx, id)
			return nil
		}
		if strings.Contains(low, "403") || strings.Contains(low, "forbidden") ||
			strings.Contains(low, "401") || strings.Contains(low, "unauthorized") {
			_ = s.repo.LogMiss(ctx, id, 403, "inactive")
			s.invalidateBooking(ctx, id)
			return nil
		}
		return err
	}

	b := mapBooking(id, p)

	// Parent row first to satisfy FKs for stays/travelers.
	if err := s.repo.UpsertBooking(ctx, b); err != nil {
		return err
	}
	if err := s.repo.UpsertStays(ctx, id, b.Stays); err != nil {
		return fmt.Errorf("upsert stays failed for %d: %w", id, err)
	}

	// Travelers come from a separate endpoint; a miss there is best-effort
	// but other errors surface so a half-imported roster is noticed.
	if rows, terr := s.backend.GetTravelers(ctx, id); terr != nil {
		low := strings.ToLower(terr.Error())
		switch {
		case errors.Is(terr, domain.ErrNotFound) || strings.Contains(low, "not found"):
			_ = s.repo.LogMiss(ctx, id, 404, "travelers")
		case strings.Contains(low, "403") || strings.Contains(low, "forbidden") ||
			strings.Contains(low, "401") || strings.Contains(low, "unauthorized"):
			_ = s.repo.LogMiss(ctx, id, 403, "travelers")
		default:
			return terr
		}
	} else if len(rows) > 0 {
		if err := s.repo.UpsertTravelers(ctx, id, mapTravelers(rows)); err != nil {
			return fmt.Errorf("upsert travelers failed for %d: %w", id, err)
		}
	}

	s.invalidateBooking(ctx, id)
	return nil
}

func (s *ImportService) invalidateBooking(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	for _, prefix := range []string{"cost", "rooming"} {
		_ = s.cache.Del(ctx, fmt.Sprintf("%s:%d", prefix, id))
	}
}
