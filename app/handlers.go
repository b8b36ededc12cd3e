// Package app provides public health and authenticated dashboard endpoints.
package app

import (
	"errors"
	"log"
	"net/http"

	"github.com/HegryLuis/Voice-to-Text/app/models"
	"github.com/HegryLuis/Voice-to-Text/auth"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Health is a public health check endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Me returns the entitlement summary for the authenticated user. Users
// without a row yet (no transcription so far) get the free-tier defaults.
func (a *App) Me(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
		return
	}

	user, err := a.store.GetUser(c.Request.Context(), claims.Subject)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Printf("me lookup failed user=%s err=%v", claims.Subject, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	var freeLimit any = nil
	var remaining any = nil
	if !user.IsPremium {
		freeLimit = FreeTierLimit
		remaining = FreeRemaining(user.TranscriptionCount)
	}

	c.JSON(http.StatusOK, gin.H{
		"isPremium":          user.IsPremium,
		"transcriptionCount": user.TranscriptionCount,
		"freeLimit":          freeLimit,
		"remaining":          remaining,
	})
}

// Dashboard returns the user's entitlement record and transcription
// history in one response. The two reads are issued jointly.
func (a *App) Dashboard(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
		return
	}

	var (
		user    models.User
		history = []models.Transcription{}
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		u, err := a.store.GetUser(ctx, claims.Subject)
		if errors.Is(err, ErrUserNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	g.Go(func() error {
		list, err := a.store.ListTranscriptions(ctx, claims.Subject)
		if err != nil {
			return err
		}
		if list != nil {
			history = list
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("dashboard load failed user=%s err=%v", claims.Subject, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcriptions": history,
		"count":          user.TranscriptionCount,
		"isPremium":      user.IsPremium,
	})
}
