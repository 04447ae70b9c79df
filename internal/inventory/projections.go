package inventory

import (
	"encoding/json"

	"github.com/snipeops/snipeit-mcp/internal/snipeit"
)

// Projections are the stable subsets of remote entities returned to the
// caller. Optional fields marshal as explicit nulls rather than being
// dropped, so "unset on the remote entity" is visible in the result.

// AssetSummary is the trimmed asset projection used by create, update, and
// list results.
type AssetSummary struct {
	ID       int     `json:"id"`
	AssetTag *string `json:"asset_tag"`
	Name     *string `json:"name"`
	Serial   *string `json:"serial"`
	Model    *string `json:"model,omitempty"` // list rows only
}

// AssetDetail is the expanded projection returned by get.
type AssetDetail struct {
	ID           int              `json:"id"`
	AssetTag     *string          `json:"asset_tag"`
	Name         *string          `json:"name"`
	Serial       *string          `json:"serial"`
	Model        *snipeit.NamedRef `json:"model"`
	StatusLabel  *snipeit.NamedRef `json:"status_label"`
	Category     *snipeit.NamedRef `json:"category"`
	Manufacturer *snipeit.NamedRef `json:"manufacturer"`
	Supplier     *snipeit.NamedRef `json:"supplier"`
	Notes        *string          `json:"notes"`
	Location     *snipeit.NamedRef `json:"location"`
	AssignedTo   json.RawMessage  `json:"assigned_to"`
	PurchaseDate *string          `json:"purchase_date"`
	PurchaseCost *float64         `json:"purchase_cost"`
}

// TransitionAsset is the trimmed projection returned by the state-transition
// operations.
type TransitionAsset struct {
	ID         int             `json:"id"`
	AssetTag   *string         `json:"asset_tag"`
	AssignedTo json.RawMessage `json:"assigned_to,omitempty"`
}

func assetSummary(a *snipeit.Asset) *AssetSummary {
	return &AssetSummary{ID: a.ID, AssetTag: a.AssetTag, Name: a.Name, Serial: a.Serial}
}

func assetRow(a *snipeit.Asset) AssetSummary {
	row := AssetSummary{ID: a.ID, AssetTag: a.AssetTag, Name: a.Name, Serial: a.Serial}
	if a.Model != nil && a.Model.Name != "" {
		name := a.Model.Name
		row.Model = &name
	}
	return row
}

func assetDetail(a *snipeit.Asset) *AssetDetail {
	d := &AssetDetail{
		ID:           a.ID,
		AssetTag:     a.AssetTag,
		Name:         a.Name,
		Serial:       a.Serial,
		Model:        a.Model,
		StatusLabel:  a.StatusLabel,
		Category:     a.Category,
		Manufacturer: a.Manufacturer,
		Supplier:     a.Supplier,
		Notes:        a.Notes,
		Location:     a.Location,
		AssignedTo:   a.AssignedTo,
	}
	if a.PurchaseDate != nil {
		date := a.PurchaseDate.Date
		d.PurchaseDate = &date
	}
	d.PurchaseCost = a.PurchaseCost
	return d
}

func transitionAsset(a *snipeit.Asset, withAssignee bool) *TransitionAsset {
	t := &TransitionAsset{ID: a.ID, AssetTag: a.AssetTag}
	if withAssignee {
		t.AssignedTo = a.AssignedTo
	}
	return t
}

// ConsumableSummary is the trimmed consumable projection used by create,
// update, and list results.
type ConsumableSummary struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	Qty       *int    `json:"qty"`
	Remaining *int    `json:"remaining,omitempty"` // list rows only
}

// ConsumableDetail is the expanded projection returned by get.
type ConsumableDetail struct {
	ID           int              `json:"id"`
	Name         *string          `json:"name"`
	Qty          *int             `json:"qty"`
	Category     *snipeit.NamedRef `json:"category"`
	Company      *snipeit.NamedRef `json:"company"`
	Location     *snipeit.NamedRef `json:"location"`
	Manufacturer *snipeit.NamedRef `json:"manufacturer"`
	ModelNumber  *string          `json:"model_number"`
	ItemNo       *string          `json:"item_no"`
	OrderNumber  *string          `json:"order_number"`
	PurchaseDate *string          `json:"purchase_date"`
	PurchaseCost *float64         `json:"purchase_cost"`
	MinAmt       *int             `json:"min_amt"`
	Remaining    *int             `json:"remaining"`
}

func consumableSummary(c *snipeit.Consumable) *ConsumableSummary {
	return &ConsumableSummary{ID: c.ID, Name: c.Name, Qty: c.Qty}
}

func consumableRow(c *snipeit.Consumable) ConsumableSummary {
	return ConsumableSummary{ID: c.ID, Name: c.Name, Qty: c.Qty, Remaining: c.Remaining}
}

func consumableDetail(c *snipeit.Consumable) *ConsumableDetail {
	d := &ConsumableDetail{
		ID:           c.ID,
		Name:         c.Name,
		Qty:          c.Qty,
		Category:     c.Category,
		Company:      c.Company,
		Location:     c.Location,
		Manufacturer: c.Manufacturer,
		ModelNumber:  c.ModelNumber,
		ItemNo:       c.ItemNo,
		OrderNumber:  c.OrderNumber,
		PurchaseCost: c.PurchaseCost,
		MinAmt:       c.MinAmt,
		Remaining:    c.Remaining,
	}
	if c.PurchaseDate != nil {
		date := c.PurchaseDate.Date
		d.PurchaseDate = &date
	}
	return d
}
