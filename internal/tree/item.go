package tree

import "time"

// Item is a leaf entity: a trackable physical object with purchase and sale
// history. An item always belongs to exactly one box.
//
// Note the asymmetry in the financial fields: BoughtPrice is a per-unit price
// while SoldPrice is the total revenue across all sold units.
type Item struct {
	ID           string
	Name         string
	Description  string
	BoughtAmount float64
	BoughtPrice  float64 // per unit
	SoldAmount   float64
	SoldPrice    float64 // total revenue, not per unit
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AverageSoldPrice returns the per-unit sale price, or 0 when nothing has
// been sold yet.
func (it *Item) AverageSoldPrice() float64 {
	if it.SoldAmount == 0 {
		return 0
	}
	return it.SoldPrice / it.SoldAmount
}

// ProfitLoss returns total revenue minus total purchase cost.
func (it *Item) ProfitLoss() float64 {
	return it.SoldPrice - it.BoughtAmount*it.BoughtPrice
}

// ItemUpdate is a partial update for an item. Nil fields are left unchanged.
type ItemUpdate struct {
	Name         *string
	Description  *string
	BoughtAmount *float64
	BoughtPrice  *float64
	SoldAmount   *float64
	SoldPrice    *float64
}

func (u ItemUpdate) validate() error {
	if u.Name != nil && *u.Name == "" {
		return errValidation("name", "must not be empty")
	}
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"boughtAmount", u.BoughtAmount},
		{"boughtPrice", u.BoughtPrice},
		{"soldAmount", u.SoldAmount},
		{"soldPrice", u.SoldPrice},
	} {
		if f.value != nil && *f.value < 0 {
			return errValidation(f.name, "must not be negative")
		}
	}
	return nil
}

func (it *Item) apply(u ItemUpdate) {
	if u.Name != nil {
		it.Name = *u.Name
	}
	if u.Description != nil {
		it.Description = *u.Description
	}
	if u.BoughtAmount != nil {
		it.BoughtAmount = *u.BoughtAmount
	}
	if u.BoughtPrice != nil {
		it.BoughtPrice = *u.BoughtPrice
	}
	if u.SoldAmount != nil {
		it.SoldAmount = *u.SoldAmount
	}
	if u.SoldPrice != nil {
		it.SoldPrice = *u.SoldPrice
	}
	it.UpdatedAt = time.Now()
}
