package tree

import (
	"strconv"
	"time"
)

// Tracker owns one forest of boxes and items. All structure lives in flat
// tables keyed by identifier: child lists reference ids, and a parent table
// maps every non-root entity to its containing box. This makes the cycle
// check a parent-chain walk and cascade delete a set of map removals.
//
// The Tracker does no locking; the host must not run two operations on the
// same instance concurrently.
type Tracker struct {
	boxes  map[string]*Box
	items  map[string]*Item
	parent map[string]string // entity id -> containing box id; roots absent
	roots  []string          // ordered root box ids
	nextID uint64
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{
		boxes:  make(map[string]*Box),
		items:  make(map[string]*Item),
		parent: make(map[string]string),
	}
}

// newID produces an identifier unique for the lifetime of this Tracker.
// A base36 millisecond timestamp keeps ids roughly sortable for debugging;
// the counter guarantees uniqueness under rapid successive calls.
func (t *Tracker) newID() string {
	t.nextID++
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + strconv.FormatUint(t.nextID, 10)
}

// CreateBox creates a box under parentID, or as a forest root when parentID
// is empty.
func (t *Tracker) CreateBox(name, description, parentID string) (*Box, error) {
	if name == "" {
		return nil, errValidation("name", "must not be empty")
	}

	var parent *Box
	if parentID != "" {
		parent = t.boxes[parentID]
		if parent == nil {
			return nil, errNotFound("box", parentID)
		}
	}

	now := time.Now()
	b := &Box{
		ID:          t.newID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.boxes[b.ID] = b

	if parent != nil {
		parent.BoxIDs = append(parent.BoxIDs, b.ID)
		parent.UpdatedAt = now
		t.parent[b.ID] = parent.ID
	} else {
		t.roots = append(t.roots, b.ID)
	}
	return b, nil
}

// CreateItem creates an item inside boxID. An item cannot exist without a
// containing box, so boxID is mandatory.
func (t *Tracker) CreateItem(name, description, boxID string) (*Item, error) {
	if name == "" {
		return nil, errValidation("name", "must not be empty")
	}
	if boxID == "" {
		return nil, errValidation("boxId", "an item must be created inside a box")
	}

	box := t.boxes[boxID]
	if box == nil {
		return nil, errNotFound("box", boxID)
	}

	now := time.Now()
	it := &Item{
		ID:          t.newID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.items[it.ID] = it
	box.ItemIDs = append(box.ItemIDs, it.ID)
	box.UpdatedAt = now
	t.parent[it.ID] = box.ID
	return it, nil
}

// FindBox returns the box with the given id, or false when no such box
// exists. Absence is not an error; callers decide what missing means.
func (t *Tracker) FindBox(id string) (*Box, bool) {
	b, ok := t.boxes[id]
	return b, ok
}

// FindItem returns the item with the given id, or false when absent.
func (t *Tracker) FindItem(id string) (*Item, bool) {
	it, ok := t.items[id]
	return it, ok
}

// ParentOf returns the id of the box containing the given entity, or ""
// for root boxes and unknown ids.
func (t *Tracker) ParentOf(id string) string {
	return t.parent[id]
}

// UpdateBox applies a partial update to a box.
func (t *Tracker) UpdateBox(id string, u BoxUpdate) (*Box, error) {
	b := t.boxes[id]
	if b == nil {
		return nil, errNotFound("box", id)
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	b.apply(u)
	return b, nil
}

// UpdateItem applies a partial update to an item.
func (t *Tracker) UpdateItem(id string, u ItemUpdate) (*Item, error) {
	it := t.items[id]
	if it == nil {
		return nil, errNotFound("item", id)
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	it.apply(u)
	return it, nil
}

// DeleteBox removes a box and everything transitively inside it. Returns
// whether a box was removed.
func (t *Tracker) DeleteBox(id string) bool {
	b := t.boxes[id]
	if b == nil {
		return false
	}
	t.detachBox(b)

	// Cascade: everything inside the box is reachable only through it.
	boxIDs, itemIDs := t.collectSubtree(b)
	for _, bid := range boxIDs {
		delete(t.boxes, bid)
		delete(t.parent, bid)
	}
	for _, iid := range itemIDs {
		delete(t.items, iid)
		delete(t.parent, iid)
	}
	return true
}

// DeleteItem removes an item from the forest. Returns whether an item was
// removed.
func (t *Tracker) DeleteItem(id string) bool {
	it := t.items[id]
	if it == nil {
		return false
	}
	if box := t.boxes[t.parent[id]]; box != nil {
		box.ItemIDs, _ = removeID(box.ItemIDs, id)
		box.UpdatedAt = time.Now()
	}
	delete(t.items, id)
	delete(t.parent, id)
	return true
}

// MoveBox reparents a box (and its whole subtree) under newParentID, or to
// the forest roots when newParentID is empty. Moving a box into itself or
// into its own subtree is rejected. All validation happens before any
// mutation, so a failed move leaves the forest untouched.
func (t *Tracker) MoveBox(id, newParentID string) (*Box, error) {
	b := t.boxes[id]
	if b == nil {
		return nil, errNotFound("box", id)
	}

	var dest *Box
	if newParentID != "" {
		dest = t.boxes[newParentID]
		if dest == nil {
			return nil, errNotFound("box", newParentID)
		}
		// Walk the destination's ancestry: if the moved box appears there,
		// attaching would close a cycle.
		for cur := newParentID; cur != ""; cur = t.parent[cur] {
			if cur == id {
				return nil, &InvalidOperationError{Reason: "cannot move a box into itself or its own subtree"}
			}
		}
	}

	t.detachBox(b)
	now := time.Now()
	if dest != nil {
		dest.BoxIDs = append(dest.BoxIDs, id)
		dest.UpdatedAt = now
		t.parent[id] = dest.ID
	} else {
		t.roots = append(t.roots, id)
	}
	b.UpdatedAt = now
	return b, nil
}

// MoveItem moves an item into another box.
func (t *Tracker) MoveItem(id, boxID string) (*Item, error) {
	it := t.items[id]
	if it == nil {
		return nil, errNotFound("item", id)
	}
	if boxID == "" {
		return nil, errValidation("boxId", "an item must live inside a box")
	}
	dest := t.boxes[boxID]
	if dest == nil {
		return nil, errNotFound("box", boxID)
	}

	now := time.Now()
	if old := t.boxes[t.parent[id]]; old != nil {
		old.ItemIDs, _ = removeID(old.ItemIDs, id)
		old.UpdatedAt = now
	}
	dest.ItemIDs = append(dest.ItemIDs, id)
	dest.UpdatedAt = now
	t.parent[id] = dest.ID
	it.UpdatedAt = now
	return it, nil
}

// detachBox unlinks a box from its parent's child list or from the root
// list, leaving the box and its subtree intact in the tables.
func (t *Tracker) detachBox(b *Box) {
	if pid, ok := t.parent[b.ID]; ok {
		if p := t.boxes[pid]; p != nil {
			p.BoxIDs, _ = removeID(p.BoxIDs, b.ID)
			p.UpdatedAt = time.Now()
		}
		delete(t.parent, b.ID)
		return
	}
	t.roots, _ = removeID(t.roots, b.ID)
}

// collectSubtree returns the ids of every box and item reachable from b,
// including b itself, in depth-first order.
func (t *Tracker) collectSubtree(b *Box) (boxIDs, itemIDs []string) {
	boxIDs = append(boxIDs, b.ID)
	itemIDs = append(itemIDs, b.ItemIDs...)
	for _, cid := range b.BoxIDs {
		if child := t.boxes[cid]; child != nil {
			cb, ci := t.collectSubtree(child)
			boxIDs = append(boxIDs, cb...)
			itemIDs = append(itemIDs, ci...)
		}
	}
	return boxIDs, itemIDs
}

// TotalItems returns the number of items directly and transitively inside b.
func (t *Tracker) TotalItems(b *Box) int {
	n := len(b.ItemIDs)
	for _, cid := range b.BoxIDs {
		if child := t.boxes[cid]; child != nil {
			n += t.TotalItems(child)
		}
	}
	return n
}

// Roots returns the root boxes in order.
func (t *Tracker) Roots() []*Box {
	out := make([]*Box, 0, len(t.roots))
	for _, id := range t.roots {
		if b := t.boxes[id]; b != nil {
			out = append(out, b)
		}
	}
	return out
}

// ChildBoxes returns b's direct child boxes in order.
func (t *Tracker) ChildBoxes(b *Box) []*Box {
	out := make([]*Box, 0, len(b.BoxIDs))
	for _, id := range b.BoxIDs {
		if c := t.boxes[id]; c != nil {
			out = append(out, c)
		}
	}
	return out
}

// ChildItems returns b's direct items in order.
func (t *Tracker) ChildItems(b *Box) []*Item {
	out := make([]*Item, 0, len(b.ItemIDs))
	for _, id := range b.ItemIDs {
		if it := t.items[id]; it != nil {
			out = append(out, it)
		}
	}
	return out
}
