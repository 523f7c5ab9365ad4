package allocation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/shopspring/decimal"
)

// ItemPatch is a partial update of the editable fields of an item, nil means unchanged
type ItemPatch struct {
	Name         *string
	Description  *string
	TargetAmount *decimal.Decimal
	Quantity     *int64
	UnitCost     *decimal.Decimal
	Priority     *model.ItemPriority
	Category     *string
	ImageURL     *string
	DisplayOrder *int64
	IsActive     *bool
}

// fields allowed in a patch, anything else is dropped
const (
	fieldName         = "name"
	fieldDescription  = "description"
	fieldTargetAmount = "target_amount"
	fieldQuantity     = "quantity"
	fieldUnitCost     = "unit_cost"
	fieldPriority     = "priority"
	fieldCategory     = "category"
	fieldImageURL     = "image_url"
	fieldDisplayOrder = "display_order"
	fieldIsActive     = "is_active"
)

func invalidField(field string, value interface{}) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidInput, field, value)
}

func toString(field string, value interface{}) (*string, error) {
	s, ok := value.(string)
	if !ok {
		return nil, invalidField(field, value)
	}
	return &s, nil
}

func toDecimal(field string, value interface{}) (*decimal.Decimal, error) {
	var d decimal.Decimal
	var err error

	switch v := value.(type) {
	case json.Number:
		d, err = decimal.NewFromString(v.String())
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(v))
	default:
		return nil, invalidField(field, value)
	}
	if err != nil {
		return nil, invalidField(field, value)
	}
	if d.IsNegative() || !d.Equal(d.Round(2)) || d.GreaterThan(model.MaxAmount) {
		return nil, invalidField(field, value)
	}
	return &d, nil
}

func toInt64(field string, value interface{}) (*int64, error) {
	var n int64
	var err error

	switch v := value.(type) {
	case json.Number:
		n, err = v.Int64()
	case float64:
		n = int64(v)
		if float64(n) != v {
			return nil, invalidField(field, value)
		}
	case int:
		n = int64(v)
	case int64:
		n = v
	case string:
		n, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	default:
		return nil, invalidField(field, value)
	}
	if err != nil || n < 0 {
		return nil, invalidField(field, value)
	}
	return &n, nil
}

func toBool(field string, value interface{}) (*bool, error) {
	switch v := value.(type) {
	case bool:
		return &v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, invalidField(field, value)
		}
		return &b, nil
	default:
		return nil, invalidField(field, value)
	}
}

// ParseItemPatch keeps only the allow-listed fields and coerces their values
func ParseItemPatch(raw map[string]interface{}) (ItemPatch, error) {
	var patch ItemPatch
	var err error

	for field, value := range raw {
		switch field {
		case fieldName:
			patch.Name, err = toString(field, value)
			if err == nil && strings.TrimSpace(*patch.Name) == "" {
				err = invalidField(field, value)
			}
		case fieldDescription:
			patch.Description, err = toString(field, value)
		case fieldTargetAmount:
			patch.TargetAmount, err = toDecimal(field, value)
		case fieldQuantity:
			patch.Quantity, err = toInt64(field, value)
		case fieldUnitCost:
			patch.UnitCost, err = toDecimal(field, value)
		case fieldPriority:
			var s *string
			s, err = toString(field, value)
			if err == nil {
				p := model.ItemPriority(*s)
				if !p.Valid() {
					err = invalidField(field, value)
				}
				patch.Priority = &p
			}
		case fieldCategory:
			patch.Category, err = toString(field, value)
		case fieldImageURL:
			patch.ImageURL, err = toString(field, value)
		case fieldDisplayOrder:
			patch.DisplayOrder, err = toInt64(field, value)
		case fieldIsActive:
			patch.IsActive, err = toBool(field, value)
		default:
			continue
		}
		if err != nil {
			return ItemPatch{}, err
		}
	}
	return patch, nil
}

// Empty ...
func (p ItemPatch) Empty() bool {
	return p == ItemPatch{}
}

// Apply returns the item with the patch applied, current_amount is never touched
func (p ItemPatch) Apply(item model.CampaignItem) model.CampaignItem {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.TargetAmount != nil {
		item.TargetAmount = *p.TargetAmount
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.UnitCost != nil {
		item.UnitCost = *p.UnitCost
	}
	if p.Priority != nil {
		item.Priority = *p.Priority
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.DisplayOrder != nil {
		item.DisplayOrder = *p.DisplayOrder
	}
	if p.IsActive != nil {
		item.IsActive = *p.IsActive
	}
	return item
}
