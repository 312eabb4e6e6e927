// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// AdviceCardModel represents the advice_cards table in the database.
// DedupKey is a creation-time bucket sized by the rule's cooldown; the unique
// index on (user_id, tag, dedup_key) is what makes the cooldown check safe
// under concurrent inserts.
type AdviceCardModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_advice_dedup"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Tag       string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_advice_dedup"`
	DedupKey  int64     `gorm:"not null;uniqueIndex:idx_advice_dedup"`
	Read      bool      `gorm:"not null;default:false"`
	Meta      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the AdviceCardModel.
func (AdviceCardModel) TableName() string {
	return "advice_cards"
}

// ToEntity converts an AdviceCardModel to a domain AdviceCard entity.
func (m *AdviceCardModel) ToEntity() *entity.AdviceCard {
	var meta map[string]any
	if m.Meta != "" {
		// A malformed meta blob degrades to nil rather than failing the read.
		_ = json.Unmarshal([]byte(m.Meta), &meta)
	}
	return &entity.AdviceCard{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Body:      m.Body,
		Tag:       entity.AdviceTag(m.Tag),
		CreatedAt: m.CreatedAt,
		Read:      m.Read,
		Meta:      meta,
	}
}

// AdviceCardFromEntity creates an AdviceCardModel from a domain AdviceCard
// entity, bucketing its creation time by cooldownDays into the dedup key.
func AdviceCardFromEntity(card *entity.AdviceCard, cooldownDays int) *AdviceCardModel {
	meta := ""
	if card.Meta != nil {
		if data, err := json.Marshal(card.Meta); err == nil {
			meta = string(data)
		}
	}
	return &AdviceCardModel{
		ID:        card.ID,
		UserID:    card.UserID,
		Title:     card.Title,
		Body:      card.Body,
		Tag:       string(card.Tag),
		DedupKey:  DedupBucket(card.CreatedAt, cooldownDays),
		Read:      card.Read,
		Meta:      meta,
		CreatedAt: card.CreatedAt,
	}
}

// DedupBucket maps a creation time to its cooldown-sized bucket number.
func DedupBucket(createdAt time.Time, cooldownDays int) int64 {
	if cooldownDays < 1 {
		cooldownDays = 1
	}
	bucketSeconds := int64(cooldownDays) * 24 * 60 * 60
	return createdAt.UTC().Unix() / bucketSeconds
}
