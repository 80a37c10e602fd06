package category

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug          string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	CategoryName  string         `gorm:"size:255;not null;column:category_name" json:"category_name"`
	AuthorID      uint64         `gorm:"not null;column:author_id" json:"author_id"`
	Description   *string        `gorm:"type:text" json:"description,omitempty"`
	ThumbnailPath *string        `gorm:"size:255;column:thumbnail_path" json:"thumbnail_path,omitempty"`
	DisplayOrder  *int           `gorm:"column:display_order" json:"display_order,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Category) TableName() string {
	return "quiz_category"
}
