package models

import (
	"time"
)

// Order status values. These exact strings are part of the external contract
// and are surfaced as-is to clients and in the PDF report.
const (
	StatusPending      = "Pendente"
	StatusInProduction = "Em Produção"
	StatusReady        = "Pronto"
	StatusDelivered    = "Entregue"
)

// OrderStatuses returns the full status vocabulary in lifecycle order.
func OrderStatuses() []string {
	return []string{StatusPending, StatusInProduction, StatusReady, StatusDelivered}
}

// IsValidStatus reports whether s is one of the recognized order statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProduction, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// Order represents one t-shirt order placed by a congregation
type Order struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	CongregationName string     `gorm:"not null" json:"congregation_name"`
	ResponsibleName  string     `gorm:"not null" json:"responsible_name"`
	ResponsiblePhone string     `json:"responsible_phone"`
	ResponsibleEmail string     `json:"responsible_email"`
	LotNumber        string     `gorm:"not null" json:"lot_number"` // plain string, no FK to lots
	Model            string     `gorm:"not null" json:"model"`
	Size             string     `gorm:"not null" json:"size"`
	Quantity         int        `gorm:"not null;default:1;check:quantity > 0" json:"quantity"`
	Color            string     `json:"color"`
	Observations     string     `json:"observations"`
	OrderDate        time.Time  `json:"order_date"`
	DeliveryDate     *time.Time `json:"delivery_date"` // nullable, date-only input
	Status           string     `gorm:"not null;default:'Pendente'" json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
