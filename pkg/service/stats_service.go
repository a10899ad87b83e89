package service

import (
	"context"

	"clicktrack/pkg/storage"
)

const (
	recentClicksLimit = 50
	dailyWindowDays   = 30
)

// StatsService computes the statistics payload fresh on every call. Nothing
// is cached or incrementally maintained; each field is a single aggregate
// query against the click store.
type StatsService struct {
	storage storage.ClickStorage
}

func NewStatsService(storage storage.ClickStorage) *StatsService {
	return &StatsService{storage: storage}
}

type StatsResponse struct {
	TotalClicks  int64                    `json:"totalClicks"`
	ClicksByLink []storage.LinkClickCount `json:"clicksByLink"`
	RecentClicks []storage.ClickEvent     `json:"recentClicks"`
	ClicksByDay  []storage.DayClickCount  `json:"clicksByDay"`
}

func (s *StatsService) GetStats(ctx context.Context) (*StatsResponse, error) {
	total, err := s.storage.TotalCount(ctx)
	if err != nil {
		return nil, err
	}

	byLink, err := s.storage.CountByLink(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.storage.Recent(ctx, recentClicksLimit)
	if err != nil {
		return nil, err
	}

	byDay, err := s.storage.CountByDay(ctx, dailyWindowDays)
	if err != nil {
		return nil, err
	}

	// Keep the arrays non-null in JSON even when empty
	if byLink == nil {
		byLink = []storage.LinkClickCount{}
	}
	if recent == nil {
		recent = []storage.ClickEvent{}
	}
	if byDay == nil {
		byDay = []storage.DayClickCount{}
	}

	return &StatsResponse{
		TotalClicks:  total,
		ClicksByLink: byLink,
		RecentClicks: recent,
		ClicksByDay:  byDay,
	}, nil
}
