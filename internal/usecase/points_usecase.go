package usecase

import (
	"context"

	"bosskill/internal/domain/entity"

	"github.com/google/uuid"
)

// SendGiftInput represents the input for sending a gift to another user
type SendGiftInput struct {
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	GiftID     uuid.UUID `json:"gift_id"`
	Message    string    `json:"message"`
}

// SendGiftResult reports the delivered gift and the sender's wallet after payment
type SendGiftResult struct {
	Record *entity.GiftRecord `json:"record"`
	Wallet *entity.Wallet     `json:"wallet"`
}

// PointsUsecase defines the interface for the wallet, gift and reward use cases
type PointsUsecase interface {
	// GetWallet returns the user's wallet, creating a zeroed one for users
	// who have never earned points.
	GetWallet(ctx context.Context, userID string) (*entity.Wallet, error)

	// ListGifts returns the gift catalog.
	ListGifts(ctx context.Context) ([]*entity.Gift, error)

	// SendGift deducts the gift cost from the sender's available points and
	// records the delivery atomically. Fails when the sender cannot afford it.
	SendGift(ctx context.Context, input *SendGiftInput) (*SendGiftResult, error)

	// ListRewards returns the reward catalog with each reward's unlocked
	// flag computed from the user's points and streak.
	ListRewards(ctx context.Context, userID string) ([]*entity.UserReward, error)
}
