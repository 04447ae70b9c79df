package inventory

// Mutation payloads are sparse: every field is a pointer, and only non-nil
// fields participate in the forwarded payload. A pointer to a zero value IS
// forwarded, so "set to 0 / empty" is distinct from "not set". Rendering is
// a pure function of the struct, which keeps repeated updates idempotent.

// put adds *v to the map when v is present.
func put[T any](m map[string]any, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}

// AssetFields is the sparse payload for asset create/update.
type AssetFields struct {
	StatusID       *int     `json:"status_id,omitempty" jsonschema:"ID of the status label"`
	ModelID        *int     `json:"model_id,omitempty" jsonschema:"ID of the asset model"`
	AssetTag       *string  `json:"asset_tag,omitempty" jsonschema:"Asset tag identifier"`
	Name           *string  `json:"name,omitempty" jsonschema:"Asset name"`
	Serial         *string  `json:"serial,omitempty" jsonschema:"Serial number"`
	PurchaseDate   *string  `json:"purchase_date,omitempty" jsonschema:"Purchase date (YYYY-MM-DD)"`
	PurchaseCost   *float64 `json:"purchase_cost,omitempty" jsonschema:"Purchase cost"`
	OrderNumber    *string  `json:"order_number,omitempty" jsonschema:"Order number"`
	Notes          *string  `json:"notes,omitempty" jsonschema:"Additional notes"`
	WarrantyMonths *int     `json:"warranty_months,omitempty" jsonschema:"Warranty period in months"`
	LocationID     *int     `json:"location_id,omitempty" jsonschema:"Location ID"`
	RTDLocationID  *int     `json:"rtd_location_id,omitempty" jsonschema:"Default location ID"`
	SupplierID     *int     `json:"supplier_id,omitempty" jsonschema:"Supplier ID"`
	CompanyID      *int     `json:"company_id,omitempty" jsonschema:"Company ID"`
	Requestable    *bool    `json:"requestable,omitempty" jsonschema:"Whether asset is requestable"`
}

func (f *AssetFields) payload() map[string]any {
	m := map[string]any{}
	put(m, "status_id", f.StatusID)
	put(m, "model_id", f.ModelID)
	put(m, "asset_tag", f.AssetTag)
	put(m, "name", f.Name)
	put(m, "serial", f.Serial)
	put(m, "purchase_date", f.PurchaseDate)
	put(m, "purchase_cost", f.PurchaseCost)
	put(m, "order_number", f.OrderNumber)
	put(m, "notes", f.Notes)
	put(m, "warranty_months", f.WarrantyMonths)
	put(m, "location_id", f.LocationID)
	put(m, "rtd_location_id", f.RTDLocationID)
	put(m, "supplier_id", f.SupplierID)
	put(m, "company_id", f.CompanyID)
	put(m, "requestable", f.Requestable)
	return m
}

// CheckoutFields is the payload for asset checkout. The destination type and
// ID are mandatory; the rest is optional.
type CheckoutFields struct {
	CheckoutToType  string  `json:"checkout_to_type" jsonschema:"Type of entity to checkout to: user, asset, or location" validate:"omitempty,oneof=user asset location"`
	AssignedToID    int     `json:"assigned_to_id" jsonschema:"ID of the user/asset/location"`
	ExpectedCheckin *string `json:"expected_checkin,omitempty" jsonschema:"Expected checkin date (YYYY-MM-DD)"`
	CheckoutAt      *string `json:"checkout_at,omitempty" jsonschema:"Checkout date (YYYY-MM-DD)"`
	Note            *string `json:"note,omitempty" jsonschema:"Checkout notes"`
	Name            *string `json:"name,omitempty" jsonschema:"Name for the checkout"`
}

func (f *CheckoutFields) payload() map[string]any {
	m := map[string]any{
		"checkout_to_type": f.CheckoutToType,
		"assigned_to_id":   f.AssignedToID,
	}
	put(m, "expected_checkin", f.ExpectedCheckin)
	put(m, "checkout_at", f.CheckoutAt)
	put(m, "note", f.Note)
	put(m, "name", f.Name)
	return m
}

// CheckinFields is the optional payload for asset checkin.
type CheckinFields struct {
	Note       *string `json:"note,omitempty" jsonschema:"Checkin notes"`
	LocationID *int    `json:"location_id,omitempty" jsonschema:"Location ID to checkin to"`
}

func (f *CheckinFields) payload() map[string]any {
	m := map[string]any{}
	if f == nil {
		return m
	}
	put(m, "note", f.Note)
	put(m, "location_id", f.LocationID)
	return m
}

// AuditFields is the optional payload for asset audit.
type AuditFields struct {
	LocationID    *int    `json:"location_id,omitempty" jsonschema:"Location ID"`
	Note          *string `json:"note,omitempty" jsonschema:"Audit notes"`
	NextAuditDate *string `json:"next_audit_date,omitempty" jsonschema:"Next audit date (YYYY-MM-DD)"`
}

func (f *AuditFields) payload() map[string]any {
	m := map[string]any{}
	if f == nil {
		return m
	}
	put(m, "location_id", f.LocationID)
	put(m, "note", f.Note)
	put(m, "next_audit_date", f.NextAuditDate)
	return m
}

// MaintenanceFields is the payload for a maintenance record. Improvement
// type, supplier, and title are mandatory; the rest is forwarded only when
// present.
type MaintenanceFields struct {
	AssetImprovement string   `json:"asset_improvement" jsonschema:"Type of maintenance/improvement"`
	SupplierID       int      `json:"supplier_id" jsonschema:"Supplier ID"`
	Title            string   `json:"title" jsonschema:"Maintenance title"`
	Cost             *float64 `json:"cost,omitempty" jsonschema:"Maintenance cost"`
	StartDate        *string  `json:"start_date,omitempty" jsonschema:"Start date (YYYY-MM-DD)"`
	CompletionDate   *string  `json:"completion_date,omitempty" jsonschema:"Completion date (YYYY-MM-DD)"`
	Notes            *string  `json:"notes,omitempty" jsonschema:"Maintenance notes"`
}

func (f *MaintenanceFields) payload(assetID int) map[string]any {
	m := map[string]any{
		"asset_id":          assetID,
		"asset_improvement": f.AssetImprovement,
		"supplier_id":       f.SupplierID,
		"title":             f.Title,
	}
	put(m, "cost", f.Cost)
	put(m, "start_date", f.StartDate)
	put(m, "completion_date", f.CompletionDate)
	put(m, "notes", f.Notes)
	return m
}

// ConsumableFields is the sparse payload for consumable create/update.
type ConsumableFields struct {
	Name           *string  `json:"name,omitempty" jsonschema:"Consumable name"`
	Qty            *int     `json:"qty,omitempty" jsonschema:"Quantity"`
	CategoryID     *int     `json:"category_id,omitempty" jsonschema:"Category ID"`
	CompanyID      *int     `json:"company_id,omitempty" jsonschema:"Company ID"`
	LocationID     *int     `json:"location_id,omitempty" jsonschema:"Location ID"`
	ManufacturerID *int     `json:"manufacturer_id,omitempty" jsonschema:"Manufacturer ID"`
	ModelNumber    *string  `json:"model_number,omitempty" jsonschema:"Model number"`
	ItemNo         *string  `json:"item_no,omitempty" jsonschema:"Item number"`
	OrderNumber    *string  `json:"order_number,omitempty" jsonschema:"Order number"`
	PurchaseDate   *string  `json:"purchase_date,omitempty" jsonschema:"Purchase date (YYYY-MM-DD)"`
	PurchaseCost   *float64 `json:"purchase_cost,omitempty" jsonschema:"Purchase cost"`
	MinAmt         *int     `json:"min_amt,omitempty" jsonschema:"Minimum quantity threshold"`
	Notes          *string  `json:"notes,omitempty" jsonschema:"Additional notes"`
}

func (f *ConsumableFields) payload() map[string]any {
	m := map[string]any{}
	put(m, "name", f.Name)
	put(m, "qty", f.Qty)
	put(m, "category_id", f.CategoryID)
	put(m, "company_id", f.CompanyID)
	put(m, "location_id", f.LocationID)
	put(m, "manufacturer_id", f.ManufacturerID)
	put(m, "model_number", f.ModelNumber)
	put(m, "item_no", f.ItemNo)
	put(m, "order_number", f.OrderNumber)
	put(m, "purchase_date", f.PurchaseDate)
	put(m, "purchase_cost", f.PurchaseCost)
	put(m, "min_amt", f.MinAmt)
	put(m, "notes", f.Notes)
	return m
}
