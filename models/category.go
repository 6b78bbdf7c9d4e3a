package models

type Category struct {
	ID       int       `json:"id" gorm:"primaryKey;autoIncrement;type:INT"`
	Name     string    `json:"name" gorm:"type:varchar(50);not null"`
	Slug     string    `json:"slug" gorm:"type:varchar(50);uniqueIndex;not null"`
	Vehicles []Vehicle `json:"-" gorm:"foreignKey:CategoryID;references:ID"`
}

func (Category) TableName() string {
	return "categories"
}

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (c *Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}
