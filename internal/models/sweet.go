package models

import "time"

// Sweet represents a single inventory item in the shop.
type Sweet struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"index;type:varchar(255)" validate:"required,max=255"`
	Category    string    `json:"category" gorm:"index;type:varchar(100)" validate:"required,max=100"`
	Price       float64   `json:"price" gorm:"index" validate:"required,gt=0"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string    `json:"image_url,omitempty" gorm:"type:text"` // URL or inline data URI
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SweetPatch is a sparse update of a sweet. Only non-nil fields are applied;
// the persistence layer builds its SET clause from exactly these fields.
type SweetPatch struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Category    *string  `json:"category" validate:"omitempty,min=1,max=100"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

// Empty reports whether the patch carries no fields at all.
func (p SweetPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil &&
		p.Quantity == nil && p.Description == nil && p.ImageURL == nil
}

// Fields returns the column-to-value map for the fields present in the patch.
func (p SweetPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Quantity != nil {
		fields["quantity"] = *p.Quantity
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.ImageURL != nil {
		fields["image_url"] = *p.ImageURL
	}
	return fields
}

// SearchFilter narrows sweet lookups. Zero-value fields are left out of the
// predicate entirely rather than matched as wildcards.
type SearchFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}
