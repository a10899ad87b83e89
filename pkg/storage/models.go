package storage

import (
	"time"
)

type ClickEvent struct {
	ID        int64     `json:"id" db:"id"`
	LinkURL   string    `json:"link_url" db:"link_url"`
	LinkText  string    `json:"link_text" db:"link_text"`
	IPAddress string    `json:"ip_address" db:"ip_address"`
	UserAgent string    `json:"user_agent" db:"user_agent"`
	ClickedAt time.Time `json:"clicked_at" db:"clicked_at"`
}

type Link struct {
	ID           int64     `json:"id" db:"id"`
	Text         string    `json:"text" db:"text"`
	URL          string    `json:"url" db:"url"`
	Category     string    `json:"category" db:"category"`
	Subtitle     string    `json:"subtitle" db:"subtitle"`
	Icon         string    `json:"icon" db:"icon"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// LinkClickCount is one row of the per-link aggregate: total clicks and
// distinct origin IPs for a single link_url. LinkText is a representative
// value from within the group; when a URL was tracked under several texts
// the store picks one.
type LinkClickCount struct {
	LinkURL        string `json:"link_url"`
	LinkText       string `json:"link_text"`
	Clicks         int64  `json:"clicks"`
	UniqueVisitors int64  `json:"unique_visitors"`
}

// DayClickCount is one day of the sparse daily series. Date is YYYY-MM-DD.
type DayClickCount struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}
