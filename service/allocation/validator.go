package allocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/QuangTung97/donation-ledger/pkg/metrics"
	"github.com/QuangTung97/donation-ledger/pkg/otellib"
	"github.com/QuangTung97/donation-ledger/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate otelwrap --out service_wrappers.go . IValidator
//go:generate moq -out allocation_mocks.go . IValidator

// ErrNotFound ...
var ErrNotFound = errors.New("not found")

// ErrForbidden when the caller does not own the campaign
var ErrForbidden = errors.New("forbidden")

// ErrInvalidInput ...
var ErrInvalidInput = errors.New("invalid input")

// ErrTargetBelowCurrent when the new target is lower than what the item already received
var ErrTargetBelowCurrent = errors.New("target amount below current amount")

// GoalExceededError when the active item targets of a campaign would exceed its goal
type GoalExceededError struct {
	CurrentOtherItems decimal.Decimal `json:"current_other_items"`
	NewTotal          decimal.Decimal `json:"new_total"`
	CampaignGoal      decimal.Decimal `json:"campaign_goal"`
	MaxAllowed        decimal.Decimal `json:"max_allowed"`
}

func (e *GoalExceededError) Error() string {
	return fmt.Sprintf("total item targets %s would exceed campaign goal %s, max allowed %s",
		e.NewTotal, e.CampaignGoal, e.MaxAllowed)
}

// IValidator ...
type IValidator interface {
	UpdateItem(ctx context.Context, callerUserID string, itemID int64, raw map[string]interface{}) (model.CampaignItem, error)
	CreateItem(ctx context.Context, callerUserID string, campaignID int64, raw map[string]interface{}) (model.CampaignItem, error)
}

// Invalidator drops cached read models of a campaign
type Invalidator interface {
	Invalidate(ctx context.Context, campaignID int64)
}

// Validator guards item edits so that active item targets never exceed the campaign goal
type Validator struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	itemRepo     repository.CampaignItem

	invalidator Invalidator
	now         func() time.Time
}

var _ IValidator = &Validator{}

// NewValidator ...
func NewValidator(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	itemRepo repository.CampaignItem,
	invalidator Invalidator,
) *Validator {
	return &Validator{
		provider:     provider,
		campaignRepo: campaignRepo,
		itemRepo:     itemRepo,

		invalidator: invalidator,
		now:         time.Now,
	}
}

func reject(reason string, err error) error {
	metrics.ValidatorRejections.WithLabelValues(reason).Inc()
	return err
}

// lockOwnedCampaign is the first statement of every transaction of the validator
func (v *Validator) lockOwnedCampaign(ctx context.Context, callerUserID string, campaignID int64) (model.Campaign, error) {
	campaign, err := v.campaignRepo.LockCampaign(ctx, campaignID)
	if err != nil {
		return model.Campaign{}, fmt.Errorf("lock campaign: %w", err)
	}
	if !campaign.Valid {
		return model.Campaign{}, fmt.Errorf("%w: campaign %d", ErrNotFound, campaignID)
	}
	if callerUserID == "" || campaign.Campaign.NgoUserID != callerUserID {
		return model.Campaign{}, reject("forbidden", ErrForbidden)
	}
	return campaign.Campaign, nil
}

// checkGoal must run while the campaign row is locked
func (v *Validator) checkGoal(
	ctx context.Context, campaign model.Campaign, excludedItemID int64, newTarget decimal.Decimal,
) error {
	other, err := v.itemRepo.SumOtherActiveTargets(ctx, campaign.ID, excludedItemID)
	if err != nil {
		return fmt.Errorf("sum other active targets: %w", err)
	}

	newTotal := other.Add(newTarget)
	if newTotal.LessThanOrEqual(campaign.Goal) {
		return nil
	}

	maxAllowed := campaign.Goal.Sub(other)
	if maxAllowed.IsNegative() {
		maxAllowed = decimal.Zero
	}
	return reject("goal_exceeded", &GoalExceededError{
		CurrentOtherItems: other,
		NewTotal:          newTotal,
		CampaignGoal:      campaign.Goal,
		MaxAllowed:        maxAllowed,
	})
}

// UpdateItem applies an allow-listed partial update to an item of a campaign owned by the caller
func (v *Validator) UpdateItem(
	ctx context.Context, callerUserID string, itemID int64, raw map[string]interface{},
) (model.CampaignItem, error) {
	patch, err := ParseItemPatch(raw)
	if err != nil {
		return model.CampaignItem{}, reject("invalid_input", err)
	}
	if patch.Empty() {
		return model.CampaignItem{}, reject("invalid_input", fmt.Errorf("%w: no editable field", ErrInvalidInput))
	}

	// campaign_id of an item never changes, it is read before locking to keep the lock order
	existing, err := v.itemRepo.GetItem(v.provider.Readonly(ctx), itemID)
	if err != nil {
		return model.CampaignItem{}, fmt.Errorf("get item: %w", err)
	}
	if !existing.Valid {
		return model.CampaignItem{}, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}
	campaignID := existing.Item.CampaignID

	var result model.CampaignItem
	err = v.provider.Transact(ctx, func(ctx context.Context) error {
		campaign, err := v.lockOwnedCampaign(ctx, callerUserID, campaignID)
		if err != nil {
			return err
		}

		locked, err := v.itemRepo.LockItem(ctx, itemID)
		if err != nil {
			return fmt.Errorf("lock item: %w", err)
		}
		if !locked.Valid {
			return fmt.Errorf("%w: item %d", ErrNotFound, itemID)
		}
		current := locked.Item

		updated := patch.Apply(current)
		targetChanged := !updated.TargetAmount.Equal(current.TargetAmount)
		reactivated := updated.IsActive && !current.IsActive

		if updated.IsActive && (targetChanged || reactivated) {
			if err := v.checkGoal(ctx, campaign, itemID, updated.TargetAmount); err != nil {
				return err
			}
		}

		if targetChanged && updated.TargetAmount.LessThan(current.CurrentAmount) {
			return reject("below_current", fmt.Errorf("%w: target %s, current %s",
				ErrTargetBelowCurrent, updated.TargetAmount, current.CurrentAmount))
		}

		updated.UpdatedAt = v.now().UTC()
		if err := v.itemRepo.UpdateItem(ctx, updated); err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		result = updated
		return nil
	})
	if err != nil {
		return model.CampaignItem{}, err
	}

	otellib.Extract(ctx).Info("Item updated",
		zap.Int64("campaign.id", campaignID),
		zap.Int64("item.id", itemID),
		zap.String("target_amount", result.TargetAmount.String()),
		zap.Bool("is_active", result.IsActive),
	)
	v.invalidator.Invalidate(ctx, campaignID)
	return result, nil
}

// CreateItem adds an item to a campaign owned by the caller, name and target_amount are required
func (v *Validator) CreateItem(
	ctx context.Context, callerUserID string, campaignID int64, raw map[string]interface{},
) (model.CampaignItem, error) {
	patch, err := ParseItemPatch(raw)
	if err != nil {
		return model.CampaignItem{}, reject("invalid_input", err)
	}
	if patch.Name == nil || patch.TargetAmount == nil {
		return model.CampaignItem{}, reject("invalid_input",
			fmt.Errorf("%w: name and target_amount are required", ErrInvalidInput))
	}

	now := v.now().UTC()
	item := patch.Apply(model.CampaignItem{
		CampaignID:    campaignID,
		CurrentAmount: decimal.Zero,
		UnitCost:      decimal.Zero,
		Priority:      model.ItemPriorityMedium,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	})

	err = v.provider.Transact(ctx, func(ctx context.Context) error {
		campaign, err := v.lockOwnedCampaign(ctx, callerUserID, campaignID)
		if err != nil {
			return err
		}

		if item.IsActive {
			if err := v.checkGoal(ctx, campaign, 0, item.TargetAmount); err != nil {
				return err
			}
		}

		id, err := v.itemRepo.InsertItem(ctx, item)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
		item.ID = id
		return nil
	})
	if err != nil {
		return model.CampaignItem{}, err
	}

	otellib.Extract(ctx).Info("Item created",
		zap.Int64("campaign.id", campaignID), zap.Int64("item.id", item.ID))
	v.invalidator.Invalidate(ctx, campaignID)
	return item, nil
}
