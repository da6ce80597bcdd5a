package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Zachkp/pillar-dev/internal/apperr"
	"github.com/Zachkp/pillar-dev/internal/contact"
)

// Message is a stored contact form submission.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	SenderHash string    `json:"sender_hash"`
	CreatedAt  time.Time `json:"created_at"`
}

// Submit stores the submission, making Store a contact.Submitter.
func (s *Store) Submit(ctx context.Context, sub contact.Submission) error {
	if err := s.SaveMessage(ctx, sub); err != nil {
		return apperr.NewBackend("storing contact message", err)
	}
	return nil
}

func (s *Store) SaveMessage(ctx context.Context, sub contact.Submission) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, message, sender_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sub.ID, sub.Draft.Name, sub.Draft.Email, sub.Draft.Subject, sub.Draft.Message, sub.SenderHash, sub.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("inserting message %s: %w", sub.ID, err)
	}
	return nil
}

// Messages returns stored messages, newest first.
func (s *Store) Messages(ctx context.Context, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, message, sender_hash, created_at
		FROM contact_messages
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		var created int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.SenderHash, &created); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		m.CreatedAt = time.Unix(created, 0).UTC()
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting message %s: %w", id, err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return apperr.NewNotFound("message not found")
	}
	return nil
}
