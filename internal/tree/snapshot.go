package tree

import "time"

// Snapshot is the serialized form of a whole forest: one JSON document per
// tenant. Derived values (totalItems, averageSoldPrice, profitLoss) are
// recomputed on every call, never read back, so reload-then-resave is
// idempotent even when a stored derived value is stale.
type Snapshot struct {
	RootBoxes []BoxSnapshot `json:"rootBoxes"`
	NextID    uint64        `json:"nextId"`
	SavedAt   time.Time     `json:"savedAt"`
}

// BoxSnapshot is a box with its children serialized in place.
type BoxSnapshot struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Boxes       []BoxSnapshot  `json:"boxes"`
	Items       []ItemSnapshot `json:"items"`
	TotalItems  int            `json:"totalItems"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ItemSnapshot carries an item's stored fields plus its derived financial
// metrics, computed at serialization time.
type ItemSnapshot struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	BoughtAmount     float64   `json:"boughtAmount"`
	BoughtPrice      float64   `json:"boughtPrice"`
	SoldAmount       float64   `json:"soldAmount"`
	SoldPrice        float64   `json:"soldPrice"`
	AverageSoldPrice float64   `json:"averageSoldPrice"`
	ProfitLoss       float64   `json:"profitLoss"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Snapshot serializes the forest.
func (t *Tracker) Snapshot() *Snapshot {
	s := &Snapshot{
		RootBoxes: []BoxSnapshot{},
		NextID:    t.nextID,
		SavedAt:   time.Now(),
	}
	for _, root := range t.Roots() {
		s.RootBoxes = append(s.RootBoxes, t.SnapshotBox(root))
	}
	return s
}

// SnapshotBox serializes one box and its subtree.
func (t *Tracker) SnapshotBox(b *Box) BoxSnapshot {
	bs := BoxSnapshot{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Boxes:       []BoxSnapshot{},
		Items:       []ItemSnapshot{},
		TotalItems:  t.TotalItems(b),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	for _, it := range t.ChildItems(b) {
		bs.Items = append(bs.Items, SnapshotItem(it))
	}
	for _, c := range t.ChildBoxes(b) {
		bs.Boxes = append(bs.Boxes, t.SnapshotBox(c))
	}
	return bs
}

// SnapshotItem serializes one item, computing its derived metrics.
func SnapshotItem(it *Item) ItemSnapshot {
	return ItemSnapshot{
		ID:               it.ID,
		Name:             it.Name,
		Description:      it.Description,
		BoughtAmount:     it.BoughtAmount,
		BoughtPrice:      it.BoughtPrice,
		SoldAmount:       it.SoldAmount,
		SoldPrice:        it.SoldPrice,
		AverageSoldPrice: it.AverageSoldPrice(),
		ProfitLoss:       it.ProfitLoss(),
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}

// FromSnapshot rebuilds a Tracker from a serialized forest. Children are
// re-attached depth-first. Missing optional fields (description, financial
// counters) default to their zero values; stored derived fields are ignored.
func FromSnapshot(s *Snapshot) *Tracker {
	t := New()
	if s == nil {
		return t
	}
	t.nextID = s.NextID
	for i := range s.RootBoxes {
		t.restoreBox(&s.RootBoxes[i], "")
	}
	return t
}

func (t *Tracker) restoreBox(bs *BoxSnapshot, parentID string) {
	b := &Box{
		ID:          bs.ID,
		Name:        bs.Name,
		Description: bs.Description,
		CreatedAt:   bs.CreatedAt,
		UpdatedAt:   bs.UpdatedAt,
	}
	t.boxes[b.ID] = b
	if parentID != "" {
		t.parent[b.ID] = parentID
	} else {
		t.roots = append(t.roots, b.ID)
	}

	for i := range bs.Items {
		is := &bs.Items[i]
		it := &Item{
			ID:           is.ID,
			Name:         is.Name,
			Description:  is.Description,
			BoughtAmount: is.BoughtAmount,
			BoughtPrice:  is.BoughtPrice,
			SoldAmount:   is.SoldAmount,
			SoldPrice:    is.SoldPrice,
			CreatedAt:    is.CreatedAt,
			UpdatedAt:    is.UpdatedAt,
		}
		t.items[it.ID] = it
		t.parent[it.ID] = b.ID
		b.ItemIDs = append(b.ItemIDs, it.ID)
	}
	for i := range bs.Boxes {
		child := &bs.Boxes[i]
		b.BoxIDs = append(b.BoxIDs, child.ID)
		t.restoreBox(child, b.ID)
	}
}
