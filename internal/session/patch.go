package session

import (
	"github.com/archimart/quote-api/internal/quote"
)

// CustomLinePatch updates one manual line item slot by index.
type CustomLinePatch struct {
	Slot   int     `json:"slot" validate:"min=0,max=2"`
	Name   *string `json:"name" validate:"omitempty,max=120"`
	Amount *string `json:"amount" validate:"omitempty,max=32"`
}

// SnapshotPatch is a partial update to a session snapshot. Nil fields are left
// untouched. Add-on quantities merge per key; an empty value removes the key.
type SnapshotPatch struct {
	ProjectName *string `json:"projectName" validate:"omitempty,max=200"`
	ClientName  *string `json:"clientName" validate:"omitempty,max=200"`
	SiteAddress *string `json:"siteAddress" validate:"omitempty,max=300"`

	Length *string `json:"length" validate:"omitempty,max=32"`
	Width  *string `json:"width" validate:"omitempty,max=32"`

	ProductID *string `json:"productId" validate:"omitempty,max=64"`
	Color     *string `json:"color" validate:"omitempty,max=64"`
	Shape     *string `json:"shape" validate:"omitempty,max=64"`

	AddonQuantities map[string]string `json:"addonQuantities" validate:"omitempty,max=32,dive,keys,max=64,endkeys,max=32"`
	CustomLines     []CustomLinePatch `json:"customLines" validate:"omitempty,max=3,dive"`

	DepositPaid *bool `json:"depositPaid"`
}

func (p SnapshotPatch) apply(snap *quote.InputSnapshot) {
	// Configuration switch first: it clears option state that the remainder of
	// the patch may then repopulate.
	if p.ProductID != nil && *p.ProductID != snap.ProductID {
		snap.ProductID = *p.ProductID
		snap.ClearSelection()
	}

	if p.ProjectName != nil {
		snap.ProjectName = *p.ProjectName
	}
	if p.ClientName != nil {
		snap.ClientName = *p.ClientName
	}
	if p.SiteAddress != nil {
		snap.SiteAddress = *p.SiteAddress
	}
	if p.Length != nil {
		snap.Length = *p.Length
	}
	if p.Width != nil {
		snap.Width = *p.Width
	}
	if p.Color != nil {
		snap.Color = *p.Color
	}
	if p.Shape != nil {
		snap.Shape = *p.Shape
	}
	if len(p.AddonQuantities) > 0 {
		if snap.AddonQuantities == nil {
			snap.AddonQuantities = map[string]string{}
		}
		for id, qty := range p.AddonQuantities {
			if qty == "" {
				delete(snap.AddonQuantities, id)
				continue
			}
			snap.AddonQuantities[id] = qty
		}
	}
	for _, line := range p.CustomLines {
		if line.Slot < 0 || line.Slot >= quote.CustomLineSlots {
			continue
		}
		if line.Name != nil {
			snap.CustomLines[line.Slot].Name = *line.Name
		}
		if line.Amount != nil {
			snap.CustomLines[line.Slot].Amount = *line.Amount
		}
	}
	if p.DepositPaid != nil {
		snap.DepositPaid = *p.DepositPaid
	}
}
