package models

import (
	"time"
)

// The catalog entities below back the selection inputs for new orders.
// Orders reference them by value (the key string); there is deliberately no
// referential integrity between orders and these tables.

// Lot is a batch identifier grouping orders
type Lot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LotNumber   string    `gorm:"uniqueIndex;not null" json:"lot_number"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the Lot model
func (Lot) TableName() string {
	return "lots"
}

// Size is a catalogued t-shirt size
type Size struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SizeName    string    `gorm:"uniqueIndex;not null" json:"size_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the Size model
func (Size) TableName() string {
	return "sizes"
}

// TShirtModel is a catalogued t-shirt model
type TShirtModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ModelName   string    `gorm:"uniqueIndex;not null" json:"model_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the TShirtModel model
func (TShirtModel) TableName() string {
	return "tshirt_models"
}
