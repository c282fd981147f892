package cart

// Package is a purchasable variant carried on a cart line so pricing can be
// resolved without a catalog lookup.
type Package struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Product is the catalog view a cart line is built from.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Packages    []Package
}

// Item is one cart line: a product plus a selected package. At most one line
// exists per (product, selected package) pair.
type Item struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Quantity        int       `json:"quantity"`
	Image           string    `json:"image"`
	Category        string    `json:"category"`
	Packages        []Package `json:"packages"`
	SelectedPackage string    `json:"selectedPackage"`
	TotalPrice      float64   `json:"totalPrice"`
}

// Cart holds the in-memory cart state. Insertion order is preserved for
// display. Cart is not safe for concurrent use.
type Cart struct {
	Items []Item `json:"items"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// ItemPrice resolves the effective unit price of a line: the selected
// package's price when it exists among the line's packages, else the base
// product price. An unknown selected package falls back to the base price.
func ItemPrice(it Item) float64 {
	for _, pkg := range it.Packages {
		if pkg.ID == it.SelectedPackage {
			return pkg.Price
		}
	}
	return it.Price
}

// AddItem merges quantity into an existing line with the same product and
// selected package, or appends a new line. Quantities below 1 are ignored.
// Stock limits are the caller's concern; the cart does not enforce them.
func (c *Cart) AddItem(p Product, quantity int, selectedPackage string) {
	if quantity < 1 {
		return
	}

	for i := range c.Items {
		if c.Items[i].ID == p.ID && c.Items[i].SelectedPackage == selectedPackage {
			c.Items[i].Quantity += quantity
			c.Items[i].TotalPrice = ItemPrice(c.Items[i]) * float64(c.Items[i].Quantity)
			return
		}
	}

	item := Item{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Quantity:        quantity,
		Image:           p.Image,
		Category:        p.Category,
		Packages:        p.Packages,
		SelectedPackage: selectedPackage,
	}
	item.TotalPrice = ItemPrice(item) * float64(quantity)

	c.Items = append(c.Items, item)
}

// RemoveItem drops every line for the given product id.
func (c *Cart) RemoveItem(id string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// UpdateQuantity sets the quantity of every line for the given product id and
// recomputes its total. Quantities below 1 leave the cart unchanged.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			c.Items[i].TotalPrice = ItemPrice(c.Items[i]) * float64(quantity)
		}
	}
}

// UpdatePackage switches the selected package of every line for the given
// product id and recomputes its total. The package id is not checked against
// the line's packages; an unknown id silently prices at the base price.
func (c *Cart) UpdatePackage(id, packageID string) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].SelectedPackage = packageID
			c.Items[i].TotalPrice = ItemPrice(c.Items[i]) * float64(c.Items[i].Quantity)
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total is the sum of all line totals.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.TotalPrice
	}
	return total
}

// Count is the sum of all line quantities.
func (c *Cart) Count() int {
	var count int
	for _, it := range c.Items {
		count += it.Quantity
	}
	return count
}
