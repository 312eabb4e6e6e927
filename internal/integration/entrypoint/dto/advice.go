// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-coach/backend/internal/application/usecase/advice"
)

// AdviceCardResponse represents a single advice card in API responses.
type AdviceCardResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Tag       string         `json:"tag"`
	CreatedAt time.Time      `json:"created_at"`
	Read      bool           `json:"read"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// AdviceFeedResponse represents the advice feed.
type AdviceFeedResponse struct {
	Cards []AdviceCardResponse `json:"cards"`
}

// ToAdviceFeedResponse converts a feed output to its DTO.
func ToAdviceFeedResponse(output *advice.FeedOutput) AdviceFeedResponse {
	cards := make([]AdviceCardResponse, len(output.Cards))
	for i, card := range output.Cards {
		cards[i] = AdviceCardResponse{
			ID:        card.ID.String(),
			Title:     card.Title,
			Body:      card.Body,
			Tag:       card.Tag,
			CreatedAt: card.CreatedAt,
			Read:      card.Read,
			Meta:      card.Meta,
		}
	}
	return AdviceFeedResponse{Cards: cards}
}
