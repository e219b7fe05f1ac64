package domain

type Category struct {
	ID    int64
	Name  string
	Image string
}

type Item struct {
	ID         int64
	CategoryID int64
	Name       string
	Price      float64
	ImageID    string
}

// ItemSnapshot is an item's identity and price frozen at lookup time. The
// validation engine prices orders against snapshots, never against
// client-submitted values.
type ItemSnapshot struct {
	ID    int64
	Name  string
	Price float64
}

func (i Item) Snapshot() ItemSnapshot {
	return ItemSnapshot{ID: i.ID, Name: i.Name, Price: i.Price}
}
