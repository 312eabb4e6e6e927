// Package advice contains advice card feed use cases.
package advice

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/application/adapter"
)

// MarkReadInput represents the input for marking an advice card read.
type MarkReadInput struct {
	UserID uuid.UUID
	CardID uuid.UUID
}

// MarkReadUseCase flips the read flag on one of the user's advice cards.
type MarkReadUseCase struct {
	adviceRepo adapter.AdviceCardRepository
}

// NewMarkReadUseCase creates a new MarkReadUseCase instance.
func NewMarkReadUseCase(adviceRepo adapter.AdviceCardRepository) *MarkReadUseCase {
	return &MarkReadUseCase{adviceRepo: adviceRepo}
}

// Execute marks the card read. The repository scopes the update to the
// owning user, so a foreign card ID surfaces as not found.
func (uc *MarkReadUseCase) Execute(ctx context.Context, input MarkReadInput) error {
	return uc.adviceRepo.MarkRead(ctx, input.UserID, input.CardID)
}
