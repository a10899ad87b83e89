package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresClickStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresClickStorage(pool *pgxpool.Pool) *PostgresClickStorage {
	return &PostgresClickStorage{pool: pool}
}

func (s *PostgresClickStorage) Insert(ctx context.Context, click *ClickEvent) error {
	query := `INSERT INTO clicks (link_url, link_text, ip_address, user_agent) VALUES ($1, $2, $3, $4)`
	_, err := s.pool.Exec(ctx, query, click.LinkURL, click.LinkText, click.IPAddress, click.UserAgent)
	return err
}

func (s *PostgresClickStorage) TotalCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clicks`).Scan(&count)
	return count, err
}

func (s *PostgresClickStorage) CountByLink(ctx context.Context) ([]LinkClickCount, error) {
	query := `SELECT link_url, MIN(link_text) AS link_text, COUNT(*) AS clicks, COUNT(DISTINCT ip_address) AS unique_visitors
		FROM clicks
		GROUP BY link_url
		ORDER BY clicks DESC`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []LinkClickCount
	for rows.Next() {
		var c LinkClickCount
		if err := rows.Scan(&c.LinkURL, &c.LinkText, &c.Clicks, &c.UniqueVisitors); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (s *PostgresClickStorage) Recent(ctx context.Context, limit int) ([]ClickEvent, error) {
	query := `SELECT id, link_url, link_text, ip_address, user_agent, clicked_at
		FROM clicks
		ORDER BY clicked_at DESC
		LIMIT $1`
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clicks []ClickEvent
	for rows.Next() {
		var c ClickEvent
		if err := rows.Scan(&c.ID, &c.LinkURL, &c.LinkText, &c.IPAddress, &c.UserAgent, &c.ClickedAt); err != nil {
			return nil, err
		}
		clicks = append(clicks, c)
	}
	return clicks, rows.Err()
}

func (s *PostgresClickStorage) CountByDay(ctx context.Context, windowDays int) ([]DayClickCount, error) {
	query := `SELECT to_char(clicked_at, 'YYYY-MM-DD') AS date, COUNT(*) AS clicks
		FROM clicks
		WHERE clicked_at >= now() - make_interval(days => $1)
		GROUP BY 1
		ORDER BY 1 DESC`
	rows, err := s.pool.Query(ctx, query, windowDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []DayClickCount
	for rows.Next() {
		var d DayClickCount
		if err := rows.Scan(&d.Date, &d.Clicks); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

type PostgresLinkStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresLinkStorage(pool *pgxpool.Pool) *PostgresLinkStorage {
	return &PostgresLinkStorage{pool: pool}
}

func (s *PostgresLinkStorage) Create(ctx context.Context, link *Link) (int64, error) {
	query := `INSERT INTO links (text, url, category, subtitle, icon, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := s.pool.QueryRow(ctx, query, link.Text, link.URL, link.Category, link.Subtitle, link.Icon, link.DisplayOrder).Scan(&id)
	return id, err
}

func (s *PostgresLinkStorage) Update(ctx context.Context, link *Link) error {
	query := `UPDATE links
		SET text = $2, url = $3, category = $4, subtitle = $5, icon = $6, display_order = $7, updated_at = now()
		WHERE id = $1`
	_, err := s.pool.Exec(ctx, query, link.ID, link.Text, link.URL, link.Category, link.Subtitle, link.Icon, link.DisplayOrder)
	return err
}

func (s *PostgresLinkStorage) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM links WHERE id = $1`
	_, err := s.pool.Exec(ctx, query, id)
	return err
}

func (s *PostgresLinkStorage) List(ctx context.Context) ([]Link, error) {
	query := `SELECT id, text, url, category, subtitle, icon, display_order, created_at, updated_at
		FROM links
		ORDER BY category, display_order, id`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []Link
	for rows.Next() {
		var l Link
		if err := rows.Scan(&l.ID, &l.Text, &l.URL, &l.Category, &l.Subtitle, &l.Icon, &l.DisplayOrder, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
