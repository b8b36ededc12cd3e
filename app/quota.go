// Package app enforces the free-tier transcription allowance for signed-in users.
package app

// FreeTierLimit is the number of lifetime transcriptions allowed without premium.
const FreeTierLimit = 2

// AllowTranscription reports whether a user may start another transcription.
// Premium users are never limited; free users are capped at FreeTierLimit.
func AllowTranscription(isPremium bool, transcriptionCount int) bool {
	if isPremium {
		return true
	}
	return transcriptionCount < FreeTierLimit
}

// FreeRemaining returns how many free-tier transcriptions are left, never
// going below zero (the counter can exceed the cap under concurrent use).
func FreeRemaining(transcriptionCount int) int {
	remaining := FreeTierLimit - transcriptionCount
	if remaining < 0 {
		return 0
	}
	return remaining
}
