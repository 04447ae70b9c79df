package snipeit

import "encoding/json"

// NamedRef is a linked sub-entity reference as Snipe-IT embeds it
// (model, status label, category, location, ...).
type NamedRef struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Date is Snipe-IT's date object shape.
type Date struct {
	Date      string `json:"date"`
	Formatted string `json:"formatted,omitempty"`
}

// Asset is a hardware entity as returned by the API. Optional fields are
// pointers so a missing field is distinguishable from a zero value.
type Asset struct {
	ID           int             `json:"id"`
	AssetTag     *string         `json:"asset_tag"`
	Name         *string         `json:"name"`
	Serial       *string         `json:"serial"`
	Model        *NamedRef       `json:"model"`
	StatusLabel  *NamedRef       `json:"status_label"`
	Category     *NamedRef       `json:"category"`
	Manufacturer *NamedRef       `json:"manufacturer"`
	Supplier     *NamedRef       `json:"supplier"`
	Notes        *string         `json:"notes"`
	Location     *NamedRef       `json:"location"`
	RTDLocation  *NamedRef       `json:"rtd_location"`
	AssignedTo   json.RawMessage `json:"assigned_to,omitempty"` // polymorphic: user, asset, or location
	PurchaseDate *Date           `json:"purchase_date"`
	PurchaseCost *float64        `json:"purchase_cost"`
}

// Consumable is a consumable entity as returned by the API.
type Consumable struct {
	ID           int       `json:"id"`
	Name         *string   `json:"name"`
	Qty          *int      `json:"qty"`
	Remaining    *int      `json:"remaining"`
	Category     *NamedRef `json:"category"`
	Company      *NamedRef `json:"company"`
	Location     *NamedRef `json:"location"`
	Manufacturer *NamedRef `json:"manufacturer"`
	ModelNumber  *string   `json:"model_number"`
	ItemNo       *string   `json:"item_no"`
	OrderNumber  *string   `json:"order_number"`
	PurchaseDate *Date     `json:"purchase_date"`
	PurchaseCost *float64  `json:"purchase_cost"`
	MinAmt       *int      `json:"min_amt"`
}

// ListOptions are the pagination and filter parameters accepted by list
// endpoints. Empty filter fields are not sent.
type ListOptions struct {
	Limit  int
	Offset int
	Search string
	Sort   string
	Order  string
}
