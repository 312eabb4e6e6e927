// Package advice contains advice card feed use cases.
package advice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/application/adapter"
)

// FeedPageSize is the maximum number of cards returned by the feed.
const FeedPageSize = 50

// FeedInput represents the input for the advice feed query.
type FeedInput struct {
	UserID     uuid.UUID
	UnreadOnly bool
}

// FeedCard is one advice card in the feed.
type FeedCard struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Tag       string         `json:"tag"`
	CreatedAt time.Time      `json:"created_at"`
	Read      bool           `json:"read"`
	Meta      map[string]any `json:"meta"`
}

// FeedOutput represents the advice feed, newest card first.
type FeedOutput struct {
	Cards []FeedCard `json:"cards"`
}

// FeedUseCase returns the user's recent advice cards.
type FeedUseCase struct {
	adviceRepo adapter.AdviceCardRepository
}

// NewFeedUseCase creates a new FeedUseCase instance.
func NewFeedUseCase(adviceRepo adapter.AdviceCardRepository) *FeedUseCase {
	return &FeedUseCase{adviceRepo: adviceRepo}
}

// Execute retrieves the recent advice cards, optionally unread only.
func (uc *FeedUseCase) Execute(ctx context.Context, input FeedInput) (*FeedOutput, error) {
	cards, err := uc.adviceRepo.FindRecent(ctx, input.UserID, input.UnreadOnly, FeedPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load advice cards: %w", err)
	}

	out := &FeedOutput{Cards: make([]FeedCard, len(cards))}
	for i, card := range cards {
		out.Cards[i] = FeedCard{
			ID:        card.ID,
			Title:     card.Title,
			Body:      card.Body,
			Tag:       string(card.Tag),
			CreatedAt: card.CreatedAt,
			Read:      card.Read,
			Meta:      card.Meta,
		}
	}
	return out, nil
}
