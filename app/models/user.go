// Package models defines the entitlement and usage records persisted per user.
package models

import "time"

// User is the durable entitlement record for one identity-provider subject.
// Rows are provisioned lazily on a user's first transcription request.
type User struct {
	ID                 string    `db:"id" json:"id"`
	IsPremium          bool      `db:"is_premium" json:"isPremium"`
	TranscriptionCount int       `db:"transcription_count" json:"transcriptionCount"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
}

// Transcription is one completed transcription, recorded exactly once
// per successful provider call and never mutated afterwards.
type Transcription struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
