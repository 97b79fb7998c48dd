package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fidelisagboli/tropicinfusions/internal/ai"
	"github.com/fidelisagboli/tropicinfusions/internal/store"
)

var (
	ErrEmptyMessage  = errors.New("message must not be blank")
	ErrEmptyPrompt   = errors.New("prompt must not be blank")
	ErrPromptTooLong = errors.New("prompt exceeds maximum length")
)

const defaultTTL = 30 * 24 * time.Hour

// ValidatePrompt rejects blank or oversized prompt updates.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	if len(prompt) > MaxPromptLen {
		return ErrPromptTooLong
	}
	return nil
}

// ValidateMessage rejects blank chat messages.
func ValidateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// Service owns the session/prompt state machine: it loads per-session
// records, keeps the shared system prompt merged at the head of every
// history, and checkpoints state around the completion call.
type Service struct {
	store    store.Store
	provider ai.Provider
	ttl      time.Duration
	log      *slog.Logger
}

func NewService(st store.Store, provider ai.Provider, ttl time.Duration, logger *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, provider: provider, ttl: ttl, log: logger}
}

func (s *Service) loadOrCreate(ctx context.Context, sessionID string) (*Record, error) {
	data, err := s.store.LoadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return NewRecord(), nil
	}
	return decodeRecord(data), nil
}

func (s *Service) persist(ctx context.Context, sessionID string, rec *Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.store.SaveSession(ctx, sessionID, b, s.ttl)
}

// Prompt returns the shared system prompt, falling back to the default when
// the stored value is absent or blank.
func (s *Service) Prompt(ctx context.Context) (string, error) {
	p, err := s.store.LoadPrompt(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(p) == "" {
		return DefaultSystemPrompt, nil
	}
	return p, nil
}

// SeedPrompt writes the default prompt at startup unless one already exists.
func (s *Service) SeedPrompt(ctx context.Context) error {
	seeded, err := s.store.SeedPrompt(ctx, DefaultSystemPrompt)
	if err != nil {
		return err
	}
	if seeded {
		s.log.Info("seeded global system prompt with default")
	} else {
		s.log.Info("global system prompt already present in store")
	}
	return nil
}

// UpdatePrompt validates and writes the shared prompt, then synchronizes the
// caller's own session record so the change is visible to them immediately.
// Other sessions pick it up on their next chat turn.
func (s *Service) UpdatePrompt(ctx context.Context, sessionID, prompt string) error {
	if err := ValidatePrompt(prompt); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(prompt)

	if err := s.store.SavePrompt(ctx, trimmed); err != nil {
		return err
	}

	rec, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return err
	}
	rec.History = MergeSystemPrompt(rec.History, trimmed)
	return s.persist(ctx, sessionID, rec)
}

// Chat runs one full turn: merge the current shared prompt, append the user
// message, persist, call the completion provider, append its reply, persist
// again. The persist before the provider call is a durability checkpoint: a
// failed completion loses nothing, and the next turn re-sends the same
// history plus a new user message.
func (s *Service) Chat(ctx context.Context, sessionID, message string) (string, error) {
	if err := ValidateMessage(message); err != nil {
		return "", err
	}

	rec, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return "", err
	}

	prompt, err := s.Prompt(ctx)
	if err != nil {
		return "", err
	}
	rec.History = MergeSystemPrompt(rec.History, prompt)
	rec.History = AppendTurn(rec.History, RoleUser, message)

	if err := s.persist(ctx, sessionID, rec); err != nil {
		return "", err
	}

	providerMsgs := make([]ai.Message, 0, len(rec.History))
	for _, m := range rec.History {
		providerMsgs = append(providerMsgs, ai.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.provider.Chat(ctx, providerMsgs)
	if err != nil {
		s.log.Error("completion call failed", "sessionId", sessionID, "error", err)
		return "", fmt.Errorf("completion: %w", err)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		reply = "…"
	}

	rec.History = AppendTurn(rec.History, RoleAssistant, reply)
	rec.Touch()
	if err := s.persist(ctx, sessionID, rec); err != nil {
		return "", err
	}
	return reply, nil
}
