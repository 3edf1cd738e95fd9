// Package lifecycle is the state machine owning Application and
// JobAssignment transitions. Every entity write goes through it: job
// creation charges the pricing-resolver quote, application and assignment
// moves are guarded conditional updates, and each accepted transition is
// followed by exactly one best-effort notification.
package lifecycle

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/database"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/pricing"
)

// Emitter is the notification sink the state machine fans out to. Dispatch
// happens after the transition's state change is persisted; an emitter
// failure is logged and never rolls the transition back.
type Emitter interface {
	Emit(ctx context.Context, n model.Notification) error
}

// Service applies lifecycle transitions. Construct one per process and share
// it between handlers; it holds no per-request state.
type Service struct {
	DB      *database.DBinstanceStruct
	Pricing *pricing.Resolver
	Emitter Emitter
}

// NewService creates the state machine with its collaborators.
func NewService(db *database.DBinstanceStruct, resolver *pricing.Resolver, emitter Emitter) *Service {
	return &Service{
		DB:      db,
		Pricing: resolver,
		Emitter: emitter,
	}
}

// emit sends the single notification that follows an accepted transition.
func (s *Service) emit(ctx context.Context, recipient uuid.UUID, kind string, payload string) {
	if s.Emitter == nil {
		return
	}
	err := s.Emitter.Emit(ctx, model.Notification{
		UserID:  recipient,
		Kind:    kind,
		Payload: payload,
	})
	if err != nil {
		log.Printf("notification emit failed (kind=%s recipient=%s): %v", kind, recipient, err)
	}
}

// storage wraps a backend failure into the retryable taxonomy kind.
func storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
