// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bosskill/internal/domain/entity"
	"bosskill/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for the point-ledger persistence.
var (
	// ErrWalletNotFound is returned when a user has no wallet yet.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrGiftNotFound is returned when a gift is not found.
	ErrGiftNotFound = errors.New("gift not found")
	// ErrPointRuleNotFound is returned when no rule exists for an action type.
	ErrPointRuleNotFound = errors.New("point rule not found")
)

// PointsRepository defines the interface for wallet, ledger, gift and reward
// database operations.
type PointsRepository interface {
	// FindWallet retrieves a user's wallet. Returns ErrWalletNotFound for
	// users who have never earned points.
	FindWallet(ctx context.Context, userID string) (*entity.Wallet, error)

	// SaveWallet upserts a user's wallet.
	SaveWallet(ctx context.Context, wallet *entity.Wallet) error

	// CreateTransaction appends an entry to the point ledger.
	CreateTransaction(ctx context.Context, tx *entity.PointTransaction) error

	// FindRuleByAction retrieves the active point rule for an action type.
	FindRuleByAction(ctx context.Context, action entity.ActionType) (*entity.PointRule, error)

	// CreateRule persists a point rule.
	CreateRule(ctx context.Context, rule *entity.PointRule) error

	// ListGifts retrieves active gifts ordered by sort order.
	ListGifts(ctx context.Context) ([]*entity.Gift, error)

	// FindGiftByID retrieves a gift by its unique ID.
	FindGiftByID(ctx context.Context, id uuid.UUID) (*entity.Gift, error)

	// CreateGift persists a gift definition.
	CreateGift(ctx context.Context, gift *entity.Gift) error

	// CreateGiftRecord persists a delivered gift.
	CreateGiftRecord(ctx context.Context, record *entity.GiftRecord) error

	// ListRewards retrieves active rewards ordered by sort order.
	ListRewards(ctx context.Context) ([]*entity.Reward, error)

	// CreateReward persists a reward definition.
	CreateReward(ctx context.Context, reward *entity.Reward) error
}
