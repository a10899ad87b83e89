package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"clicktrack/pkg/logging"
	"clicktrack/pkg/storage"

	"github.com/stretchr/testify/assert"
)

// Mock click storage shared by click and stats service tests
type mockClickStorage struct {
	clicks    []storage.ClickEvent
	insertErr error
}

func (m *mockClickStorage) Insert(ctx context.Context, click *storage.ClickEvent) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	click.ID = int64(len(m.clicks) + 1)
	if click.ClickedAt.IsZero() {
		click.ClickedAt = time.Now()
	}
	m.clicks = append(m.clicks, *click)
	return nil
}

func (m *mockClickStorage) TotalCount(ctx context.Context) (int64, error) {
	return int64(len(m.clicks)), nil
}

func (m *mockClickStorage) CountByLink(ctx context.Context) ([]storage.LinkClickCount, error) {
	type group struct {
		text string
		ips  map[string]bool
		n    int64
	}
	groups := make(map[string]*group)
	for _, c := range m.clicks {
		g, ok := groups[c.LinkURL]
		if !ok {
			g = &group{text: c.LinkText, ips: make(map[string]bool)}
			groups[c.LinkURL] = g
		}
		if c.LinkText < g.text {
			g.text = c.LinkText
		}
		g.ips[c.IPAddress] = true
		g.n++
	}

	var counts []storage.LinkClickCount
	for url, g := range groups {
		counts = append(counts, storage.LinkClickCount{
			LinkURL:        url,
			LinkText:       g.text,
			Clicks:         g.n,
			UniqueVisitors: int64(len(g.ips)),
		})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Clicks > counts[j].Clicks })
	return counts, nil
}

func (m *mockClickStorage) Recent(ctx context.Context, limit int) ([]storage.ClickEvent, error) {
	recent := make([]storage.ClickEvent, len(m.clicks))
	copy(recent, m.clicks)
	sort.Slice(recent, func(i, j int) bool { return recent[i].ClickedAt.After(recent[j].ClickedAt) })
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

func (m *mockClickStorage) CountByDay(ctx context.Context, windowDays int) ([]storage.DayClickCount, error) {
	cutoff := time.Now().AddDate(0, 0, -windowDays)
	byDay := make(map[string]int64)
	for _, c := range m.clicks {
		if c.ClickedAt.Before(cutoff) {
			continue
		}
		byDay[c.ClickedAt.Format("2006-01-02")]++
	}

	var days []storage.DayClickCount
	for date, n := range byDay {
		days = append(days, storage.DayClickCount{Date: date, Clicks: n})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })
	return days, nil
}

func TestRecordClick(t *testing.T) {
	mock := &mockClickStorage{}
	svc := NewClickService(mock, logging.NewLogger(logging.LevelError))

	err := svc.RecordClick(context.Background(), &RecordClickRequest{
		LinkURL:  "https://example.com",
		LinkText: "Example",
	}, "10.0.0.1", "test-agent")

	assert.NoError(t, err)
	assert.Len(t, mock.clicks, 1)
	assert.Equal(t, "https://example.com", mock.clicks[0].LinkURL)
	assert.Equal(t, "Example", mock.clicks[0].LinkText)
	assert.Equal(t, "10.0.0.1", mock.clicks[0].IPAddress)
	assert.Equal(t, "test-agent", mock.clicks[0].UserAgent)
}

func TestRecordClickTextDefaultsToURL(t *testing.T) {
	mock := &mockClickStorage{}
	svc := NewClickService(mock, logging.NewLogger(logging.LevelError))

	err := svc.RecordClick(context.Background(), &RecordClickRequest{
		LinkURL: "https://example.com",
	}, "10.0.0.1", "test-agent")

	assert.NoError(t, err)
	assert.Equal(t, "https://example.com", mock.clicks[0].LinkText)
}

func TestRecordClickUnknownOrigin(t *testing.T) {
	mock := &mockClickStorage{}
	svc := NewClickService(mock, logging.NewLogger(logging.LevelError))

	err := svc.RecordClick(context.Background(), &RecordClickRequest{
		LinkURL: "https://example.com",
	}, "", "")

	assert.NoError(t, err)
	assert.Equal(t, "unknown", mock.clicks[0].IPAddress)
	assert.Equal(t, "unknown", mock.clicks[0].UserAgent)
}

func TestRecordClickMissingURL(t *testing.T) {
	mock := &mockClickStorage{}
	svc := NewClickService(mock, logging.NewLogger(logging.LevelError))

	err := svc.RecordClick(context.Background(), &RecordClickRequest{}, "10.0.0.1", "test-agent")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, mock.clicks)
}

func TestRecordClickStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	mock := &mockClickStorage{insertErr: storeErr}
	svc := NewClickService(mock, logging.NewLogger(logging.LevelError))

	err := svc.RecordClick(context.Background(), &RecordClickRequest{
		LinkURL: "https://example.com",
	}, "10.0.0.1", "test-agent")

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrValidation)
}
