package domain

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is the canonical catalog record. The catalog is read-only after
// load; wishlist entries reference products by ID and carry a snapshot, not
// a pointer into the catalog.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	CategoryName  string   `json:"categoryName"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice,omitempty"` // >0 only when discounted
	Images        []string `json:"images"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	IsNew         bool     `json:"isNew,omitempty"`
	IsBestseller  bool     `json:"isBestseller,omitempty"`
	Description   string   `json:"description"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	InStock       bool     `json:"inStock"`
	StockCount    int      `json:"stockCount,omitempty"`
	Tags          []string `json:"tags"`
}

// OnSale reports whether the product carries a crossed-out original price.
func (p Product) OnSale() bool { return p.OriginalPrice > 0 }

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}
