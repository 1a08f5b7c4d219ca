package repository

import (
	"context"
	"errors"

	"gigboard/internal/database"
	"gigboard/internal/domain/message"

	"github.com/google/uuid"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	// ListForUser returns messages the user sent or received, oldest first,
	// with the sender's profile name and avatar joined in.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]message.Message, error)
	Create(ctx context.Context, m message.Message) (message.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID, receiverID uuid.UUID) error
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]message.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.id, m.sender_id, m.receiver_id, m.content, m.read_status, m.created_at, p.full_name, p.avatar_url
		 FROM messages m
		 LEFT JOIN profiles p ON p.user_id = m.sender_id
		 WHERE m.sender_id = $1 OR m.receiver_id = $1
		 ORDER BY m.created_at ASC, m.id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]message.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m message.Message) (message.Message, error) {
	row := r.db.QueryRow(ctx,
		`WITH ins AS (
			INSERT INTO messages (id, sender_id, receiver_id, content)
			VALUES ($1, $2, $3, $4)
			RETURNING id, sender_id, receiver_id, content, read_status, created_at
		 )
		 SELECT ins.id, ins.sender_id, ins.receiver_id, ins.content, ins.read_status, ins.created_at, p.full_name, p.avatar_url
		 FROM ins
		 LEFT JOIN profiles p ON p.user_id = ins.sender_id`,
		m.ID, m.SenderID, m.ReceiverID, m.Content,
	)
	return scanMessage(row)
}

func (r *PostgresMessageRepository) MarkRead(ctx context.Context, id uuid.UUID, receiverID uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE messages SET read_status = true WHERE id = $1 AND receiver_id = $2`,
		id, receiverID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func scanMessage(row database.Row) (message.Message, error) {
	var m message.Message
	if err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.ReadStatus, &m.CreatedAt, &m.SenderName, &m.SenderAvatarURL); err != nil {
		if database.IsNoRows(err) {
			return message.Message{}, ErrMessageNotFound
		}
		return message.Message{}, err
	}
	return m, nil
}
