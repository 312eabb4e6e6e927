// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdviceTag identifies the rule that produced an advice card.
type AdviceTag string

const (
	AdviceTagLowIncome   AdviceTag = "low_income"
	AdviceTagHighExpense AdviceTag = "high_expense"
)

// AdviceCard is a generated, rule-based advisory notification. Cards are
// stored so the frontend can show them and so the agent can avoid telling a
// user the same thing twice within a rule's cooldown window. Meta carries the
// raw numeric evidence behind the advice for auditing.
type AdviceCard struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Body      string
	Tag       AdviceTag
	CreatedAt time.Time
	Read      bool
	Meta      map[string]any
}

// NewAdviceCard creates a new AdviceCard entity.
func NewAdviceCard(userID uuid.UUID, title, body string, tag AdviceTag, meta map[string]any) *AdviceCard {
	return &AdviceCard{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		Tag:       tag,
		CreatedAt: time.Now().UTC(),
		Meta:      meta,
	}
}
