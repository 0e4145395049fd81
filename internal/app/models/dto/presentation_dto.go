package dto

// UpdateHeroRequest upserts the singleton hero content. Sent as multipart
// when an image accompanies the text fields.
type UpdateHeroRequest struct {
	Title       *string `json:"title" form:"title"`
	Subtitle    *string `json:"subtitle" form:"subtitle"`
	Description *string `json:"description" form:"description"`
	ButtonText  *string `json:"buttonText" form:"buttonText"`
	ButtonLink  *string `json:"buttonLink" form:"buttonLink"`
}

// CreateCarouselItemRequest adds a slide to the homepage carousel.
type CreateCarouselItemRequest struct {
	Title        string `json:"title" form:"title" binding:"required"`
	Description  string `json:"description" form:"description"`
	DisplayOrder int    `json:"displayOrder" form:"displayOrder"`
}

// UpdateCarouselItemRequest carries partial updates to a slide.
type UpdateCarouselItemRequest struct {
	Title        *string `json:"title" form:"title"`
	Description  *string `json:"description" form:"description"`
	DisplayOrder *int    `json:"displayOrder" form:"displayOrder"`
}
