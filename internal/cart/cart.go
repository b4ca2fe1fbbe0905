package cart

// Item is one menu item held in a cart. Name and Price are captured at
// add-time and are not re-synced with the catalog afterwards.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Cart is the ordered list of items a session has picked, unique by item id.
type Cart []Item

// Total sums price times quantity over all items.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount is the total unit count across all lines.
func (c Cart) ItemCount() int {
	var count int
	for _, item := range c {
		count += item.Quantity
	}
	return count
}

func (c Cart) indexOf(itemID int64) int {
	for i, item := range c {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}
