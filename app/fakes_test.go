package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/HegryLuis/Voice-to-Text/app/config"
	"github.com/HegryLuis/Voice-to-Text/app/models"
	"github.com/HegryLuis/Voice-to-Text/auth"
	"github.com/HegryLuis/Voice-to-Text/transcribe"

	"github.com/gin-gonic/gin"
)

var errProvider = errors.New("provider unavailable")

func userPtr(id string, premium bool, count int) *models.User {
	return &models.User{ID: id, IsPremium: premium, TranscriptionCount: count, CreatedAt: time.Now()}
}

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	mu             sync.Mutex
	users          map[string]*models.User
	transcriptions []models.Transcription
	recordErr      error
	setPremiumErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*models.User{}}
}

func (s *fakeStore) GetUser(_ context.Context, userID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return *user, nil
}

func (s *fakeStore) EnsureUser(_ context.Context, userID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		user = &models.User{ID: userID, CreatedAt: time.Now()}
		s.users[userID] = user
	}
	return *user, nil
}

func (s *fakeStore) RecordTranscription(_ context.Context, userID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recordErr != nil {
		return s.recordErr
	}
	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.TranscriptionCount++
	s.transcriptions = append(s.transcriptions, models.Transcription{
		ID:        fmt.Sprintf("t-%d", len(s.transcriptions)+1),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	})
	return nil
}

func (s *fakeStore) SetPremium(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setPremiumErr != nil {
		return s.setPremiumErr
	}
	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.IsPremium = true
	return nil
}

func (s *fakeStore) ListTranscriptions(_ context.Context, userID string) ([]models.Transcription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Transcription
	for i := len(s.transcriptions) - 1; i >= 0; i-- {
		if s.transcriptions[i].UserID == userID {
			out = append(out, s.transcriptions[i])
		}
	}
	return out, nil
}

func (s *fakeStore) user(userID string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return models.User{}
	}
	return *user
}

func (s *fakeStore) rowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transcriptions)
}

// fakeProvider returns a canned transcription result.
type fakeProvider struct {
	result *transcribe.Result
	err    error
}

func (p *fakeProvider) Transcribe(context.Context, io.Reader, string) (*transcribe.Result, error) {
	return p.result, p.err
}

// fakePayments records checkout session requests.
type fakePayments struct {
	mu    sync.Mutex
	url   string
	err   error
	calls int
}

func (p *fakePayments) CreateCheckoutSession(context.Context, string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.url, p.err
}

func (p *fakePayments) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func testConfig() *config.Config {
	return &config.Config{
		Stripe: config.StripeConfig{
			SecretKey:     "sk_test_123",
			WebhookSecret: "whsec_test_123",
			PriceID:       "price_123",
			PublicBaseURL: "https://app.example",
		},
	}
}

// testRouter mounts the handlers with a middleware that injects claims
// for the given subject; an empty subject leaves the request anonymous.
func testRouter(a *App, subject string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if subject != "" {
			ctx := auth.WithClaims(c.Request.Context(), &auth.Claims{Subject: subject})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	})
	router.POST("/transcribe", a.Transcribe)
	router.GET("/checkout", a.CreateCheckoutSession)
	router.POST("/webhook/payment", a.StripeWebhook)
	router.GET("/me", a.Me)
	router.GET("/dashboard", a.Dashboard)
	return router
}

func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}
