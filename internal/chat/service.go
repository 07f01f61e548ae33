package chat

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/greenstall/greenmarket/config"
)

// Message is one turn of the assistant conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

const maxAttempts = 3

// Service talks to a completion-style chat API on behalf of the mobile
// assistant screen. It keeps the running conversation history and retries
// only on rate limiting: HTTP 429 backs off 2^attempt seconds, capped at
// three attempts; any other failure aborts immediately and is reported to
// the caller. No other call in the system retries automatically.
type Service struct {
	cfg config.ChatConfig

	mu      sync.Mutex
	history []Message

	// sleep is swapped out in tests
	sleep func(ctx context.Context, d time.Duration) error
}

func New(cfg config.ChatConfig) *Service {
	return &Service{cfg: cfg, sleep: sleepCtx}
}

// History returns a copy of the conversation so far.
func (s *Service) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// Reset drops the conversation history.
func (s *Service) Reset() {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()
}

// Send submits a user message and returns the assistant reply. The user
// turn is recorded even when the call ultimately fails, so the transcript
// always shows what was asked.
func (s *Service) Send(ctx context.Context, input string) (string, error) {
	s.mu.Lock()
	s.history = append(s.history, Message{Role: "user", Content: input})
	req := completionRequest{Model: s.cfg.Model, Messages: append([]Message(nil), s.history...)}
	s.mu.Unlock()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var (
			code int
			resp completionResponse
		)
		err := gout.POST(s.cfg.Endpoint).
			WithContext(ctx).
			SetHeader(gout.H{"Authorization": "Bearer " + s.cfg.ApiKey}).
			SetJSON(req).
			Code(&code).
			BindJSON(&resp).
			Do()
		if err != nil {
			return "", errors.Wrap(err, "chat request")
		}

		switch {
		case code == http.StatusOK:
			if len(resp.Choices) == 0 {
				return "", errors.New("chat response contained no choices")
			}
			reply := resp.Choices[0].Message
			s.mu.Lock()
			s.history = append(s.history, reply)
			s.mu.Unlock()
			return reply.Content, nil
		case code == http.StatusTooManyRequests && attempt < maxAttempts:
			wait := time.Duration(1<<uint(attempt)) * time.Second
			zap.L().Warn("chat rate limited, backing off",
				zap.Int("attempt", attempt),
				zap.Duration("wait", wait))
			if err := s.sleep(ctx, wait); err != nil {
				return "", err
			}
		case code == http.StatusTooManyRequests:
			return "", errors.Errorf("chat rate limited after %d attempts", maxAttempts)
		default:
			return "", errors.Errorf("chat request failed with status %d", code)
		}
	}
	return "", errors.Errorf("chat rate limited after %d attempts", maxAttempts)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
