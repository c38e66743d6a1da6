package models

// Product represents a product in the store.
type Product struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(24)"`
	Image       string   `json:"image"`
	Title       string   `json:"title" gorm:"type:varchar(80)"`
	Price       float64  `json:"price"`
	Description string   `json:"description" gorm:"type:varchar(300)"`
	Tags        []string `json:"tags,omitempty" gorm:"serializer:json"`
}

// ProductInput is the body accepted when creating a product.
type ProductInput struct {
	Image       string   `json:"image"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
}

// ToProduct builds a product without an ID; the repository assigns one.
func (in ProductInput) ToProduct() Product {
	return Product{
		Image:       in.Image,
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Tags:        in.Tags,
	}
}

// ProductPatch carries a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Image       *string   `json:"image,omitempty"`
	Title       *string   `json:"title,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// IsEmpty reports whether the patch sets no field.
func (p ProductPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Fields returns the set fields keyed by their document field name.
func (p ProductPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Image != nil {
		fields["image"] = *p.Image
	}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Tags != nil {
		fields["tags"] = *p.Tags
	}
	return fields
}

// Apply merges the patch into product.
func (p ProductPatch) Apply(product *Product) {
	if p.Image != nil {
		product.Image = *p.Image
	}
	if p.Title != nil {
		product.Title = *p.Title
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Tags != nil {
		product.Tags = *p.Tags
	}
}

// HasAnyTag reports whether the product carries at least one of tags.
func (p Product) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range p.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
