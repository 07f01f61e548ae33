package domain

// Product represents a farmer's produce listing.
//
// The wire casing keeps the legacy mobile client contract: Contact and
// Location are capitalized, everything else is lowercase. Quantity and Price
// are free text on purpose (sellers write "5 kg" or "₹50/kg"); price ranking
// is done by the catalog price parser, never by the store.
//
// There is no created_at column: recency ordering is derived from the
// monotonically increasing ID (see catalog sort).
type Product struct {
	ID          string `gorm:"primaryKey;size:32" json:"id"`
	Name        string `gorm:"index" json:"name"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	Image       string `gorm:"size:1024" json:"image"`
	Description string `json:"description"`
	Email       string `gorm:"index" json:"email"`
	Upi         string `json:"upi"`
	Contact     string `json:"Contact"`
	Location    string `json:"Location"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "product"
}

// OwnedBy reports whether the product belongs to the farmer with the given
// email. Ownership is a plain string match, there is no foreign key.
func (p Product) OwnedBy(email string) bool {
	return p.Email == email
}
