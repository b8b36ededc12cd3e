package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/HegryLuis/Voice-to-Text/app/config"
	"github.com/HegryLuis/Voice-to-Text/app/models"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// MustOpenDB connects to Postgres, bootstraps the schema, and logs
// fatally on error.
func MustOpenDB(cfg *config.Config) *sql.DB {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DB.Username,
		cfg.DB.Password,
		cfg.DB.URL,
		cfg.DB.Port,
		cfg.DB.Name,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("sql.Open: %v", err)
	}

	if err := db.Ping(); err != nil {
		log.Fatalf("db.Ping: %v", err)
	}

	if err := ensureSchema(context.Background(), db); err != nil {
		log.Fatalf("schema bootstrap: %v", err)
	}

	log.Println("Connected to Postgres")
	return db
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id                   TEXT PRIMARY KEY,
			is_premium           BOOLEAN NOT NULL DEFAULT FALSE,
			transcription_count  INTEGER NOT NULL DEFAULT 0,
			created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS transcriptions (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL REFERENCES users (id),
			text        TEXT NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS transcriptions_user_created_idx
			ON transcriptions (user_id, created_at DESC);
	`)
	return err
}

// PostgresStore implements Store on top of database/sql with lib/pq.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, is_premium, transcription_count, created_at
		FROM users
		WHERE id = $1;
	`, userID).Scan(&user.ID, &user.IsPremium, &user.TranscriptionCount, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *PostgresStore) EnsureUser(ctx context.Context, userID string) (models.User, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, is_premium, transcription_count)
		VALUES ($1, FALSE, 0)
		ON CONFLICT (id) DO NOTHING;
	`, userID)
	if err != nil {
		return models.User{}, err
	}
	return s.GetUser(ctx, userID)
}

func (s *PostgresStore) RecordTranscription(ctx context.Context, userID, text string) error {
	// One transaction for the counter bump and the history row.
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE users
		SET transcription_count = transcription_count + 1
		WHERE id = $1;
	`, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transcriptions (id, user_id, text)
		VALUES ($1, $2, $3);
	`, uuid.NewString(), userID, text)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *PostgresStore) SetPremium(ctx context.Context, userID string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET is_premium = TRUE
		WHERE id = $1;
	`, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *PostgresStore) ListTranscriptions(ctx context.Context, userID string) ([]models.Transcription, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, text, created_at
		FROM transcriptions
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Transcription
	for rows.Next() {
		var t models.Transcription
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
