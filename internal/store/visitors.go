package store

import (
	"context"
	"fmt"
	"time"
)

// Visitor is a page view recorded with a hashed IP instead of the raw address.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type Stats struct {
	TotalVisitors    int64     `json:"total_visitors"`
	UniqueVisitors   int64     `json:"unique_visitors"`
	VisitorsToday    int64     `json:"visitors_today"`
	VisitorsThisWeek int64     `json:"visitors_this_week"`
	TotalMessages    int64     `json:"total_messages"`
	MessagesThisWeek int64     `json:"messages_this_week"`
	TopPaths         []PathHit `json:"top_paths"`
	RecentVisitors   []Visitor `json:"recent_visitors"`
}

type PathHit struct {
	Path string `json:"path"`
	Hits int64  `json:"hits"`
}

func (s *Store) RecordVisit(ctx context.Context, v Visitor) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, v.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("recording visitor: %w", err)
	}
	return nil
}

// CleanupVisitors deletes visitor records older than cutoff and returns how many were removed.
func (s *Store) CleanupVisitors(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM visitors WHERE timestamp < ?", cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("cleaning up visitors: %w", err)
	}
	return result.RowsAffected()
}

func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying visitors: %w", err)
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// Stats gathers the admin dashboard numbers relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Unix()
	weekAgo := now.AddDate(0, 0, -7).Unix()

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, "SELECT COUNT(*) FROM visitors", nil},
		{&stats.UniqueVisitors, "SELECT COUNT(DISTINCT hashed_ip) FROM visitors", nil},
		{&stats.VisitorsToday, "SELECT COUNT(*) FROM visitors WHERE timestamp >= ?", []any{startOfDay}},
		{&stats.VisitorsThisWeek, "SELECT COUNT(*) FROM visitors WHERE timestamp >= ?", []any{weekAgo}},
		{&stats.TotalMessages, "SELECT COUNT(*) FROM contact_messages", nil},
		{&stats.MessagesThisWeek, "SELECT COUNT(*) FROM contact_messages WHERE created_at >= ?", []any{weekAgo}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("stats %q: %w", c.query, err)
		}
	}

	var err error
	if stats.TopPaths, err = s.topPaths(ctx, 10); err != nil {
		return nil, err
	}
	stats.RecentVisitors, err = s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) topPaths(ctx context.Context, limit int) ([]PathHit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS hits
		FROM visitors
		GROUP BY path
		ORDER BY hits DESC, path ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top paths: %w", err)
	}
	defer rows.Close()

	var hits []PathHit
	for rows.Next() {
		var hit PathHit
		if err := rows.Scan(&hit.Path, &hit.Hits); err != nil {
			return nil, fmt.Errorf("scanning path hit: %w", err)
		}
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}
