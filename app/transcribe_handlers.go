package app

import (
	"log"
	"net/http"

	"github.com/HegryLuis/Voice-to-Text/auth"
	"github.com/HegryLuis/Voice-to-Text/transcribe"

	"github.com/gin-gonic/gin"
)

// Transcribe accepts an uploaded audio file, runs it through the
// speech-to-text provider, and records the result against the user's
// free-tier allowance.
func (a *App) Transcribe(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing auth context"})
		return
	}

	// First-touch provisioning: a brand-new identity gets a default
	// entitlement row before the quota is evaluated.
	user, err := a.store.EnsureUser(c.Request.Context(), claims.Subject)
	if err != nil {
		log.Printf("transcribe user provisioning failed user=%s err=%v", claims.Subject, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	// The check precedes the provider call and the increment; concurrent
	// requests from one user can both pass it, so the cap is a soft limit.
	if !AllowTranscription(user.IsPremium, user.TranscriptionCount) {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "free tier limit is reached"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file"})
		return
	}

	language := c.PostForm("language")
	if language == "" {
		language = transcribe.LanguageAuto
	}

	audio, err := fileHeader.Open()
	if err != nil {
		log.Printf("transcribe upload open failed user=%s err=%v", user.ID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer audio.Close()

	result, err := a.transcriber.Transcribe(c.Request.Context(), audio, language)
	if err != nil {
		log.Printf("transcription failed user=%s err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	text := transcribe.Format(result)
	if text == "" {
		log.Printf("transcription empty user=%s", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transcription failed, empty response"})
		return
	}

	if err := a.store.RecordTranscription(c.Request.Context(), user.ID, text); err != nil {
		log.Printf("transcription record failed user=%s err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save transcription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}
