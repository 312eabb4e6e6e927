package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

// adviceCardRepository implements the adapter.AdviceCardRepository interface.
type adviceCardRepository struct {
	db *gorm.DB
}

// NewAdviceCardRepository creates a new advice card repository instance.
func NewAdviceCardRepository(db *gorm.DB) adapter.AdviceCardRepository {
	return &adviceCardRepository{
		db: db,
	}
}

// CreateWithCooldown inserts the card unless another card with the same
// (user, tag) exists inside the cooldown window. The explicit recency check
// runs inside a transaction and the insert itself relies on the unique
// (user_id, tag, dedup_key) index with DO NOTHING, so a concurrent duplicate
// loses the race instead of producing a second row.
func (r *adviceCardRepository) CreateWithCooldown(ctx context.Context, card *entity.AdviceCard, cooldownDays int) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cutoff := card.CreatedAt.AddDate(0, 0, -cooldownDays)

		var count int64
		result := tx.Model(&model.AdviceCardModel{}).
			Where("user_id = ? AND tag = ? AND created_at > ?", card.UserID, string(card.Tag), cutoff).
			Count(&count)
		if result.Error != nil {
			return result.Error
		}
		if count > 0 {
			return nil
		}

		cardModel := model.AdviceCardFromEntity(card, cooldownDays)
		insert := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(cardModel)
		if insert.Error != nil {
			return insert.Error
		}
		created = insert.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// FindRecent retrieves the user's most recent cards, newest first.
func (r *adviceCardRepository) FindRecent(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]entity.AdviceCard, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var cardModels []model.AdviceCardModel
	if result := query.Find(&cardModels); result.Error != nil {
		return nil, result.Error
	}

	cards := make([]entity.AdviceCard, len(cardModels))
	for i, m := range cardModels {
		cards[i] = *m.ToEntity()
	}
	return cards, nil
}

// MarkRead sets the read flag on one of the user's cards.
func (r *adviceCardRepository) MarkRead(ctx context.Context, userID, cardID uuid.UUID) error {
	var cardModel model.AdviceCardModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cardID, userID).
		First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domainerror.ErrAdviceCardNotFound
		}
		return result.Error
	}

	update := r.db.WithContext(ctx).
		Model(&model.AdviceCardModel{}).
		Where("id = ?", cardModel.ID).
		Update("read", true)
	return update.Error
}
