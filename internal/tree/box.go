package tree

import "time"

// Box is a node in the storage forest. It holds items and nested boxes.
// Children are referenced by identifier; the owning Tracker resolves them,
// so a box on its own carries no object graph and cannot form a cycle.
type Box struct {
	ID          string
	Name        string
	Description string
	BoxIDs      []string // ordered direct child boxes
	ItemIDs     []string // ordered direct items
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BoxUpdate is a partial update for a box. Nil fields are left unchanged.
type BoxUpdate struct {
	Name        *string
	Description *string
}

func (u BoxUpdate) validate() error {
	if u.Name != nil && *u.Name == "" {
		return errValidation("name", "must not be empty")
	}
	return nil
}

func (b *Box) apply(u BoxUpdate) {
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Description != nil {
		b.Description = *u.Description
	}
	b.UpdatedAt = time.Now()
}

// removeID deletes the first occurrence of id from ids, preserving order.
func removeID(ids []string, id string) ([]string, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}
