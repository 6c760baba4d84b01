package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string     `gorm:"type:varchar(64);primaryKey"`
	UserID          string     `gorm:"type:varchar(64);not null;index"`
	WorkerID        string     `gorm:"type:varchar(64);not null;index"`
	Status          string     `gorm:"type:order_status;not null;default:'pending'"`
	Description     *string    `gorm:"type:text"`
	BookedFor       *time.Time `gorm:"type:timestamp"`
	DurationMinutes *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	User            *User   `gorm:"foreignKey:UserID;references:ID"`
	Worker          *Worker `gorm:"foreignKey:WorkerID;references:ID"`
}

func (Order) TableName() string {
	return "orders"
}

type Transaction struct {
	ID        string          `gorm:"type:varchar(64);primaryKey"`
	OrderID   string          `gorm:"type:varchar(64);not null;index"`
	PaymentID *string         `gorm:"type:varchar(128)"`
	Signature *string         `gorm:"type:varchar(256)"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'INR'"`
	Status    string          `gorm:"type:payment_status;not null"`
	Method    string          `gorm:"type:payment_method;not null"`
	Email     *string         `gorm:"type:varchar(255)"`
	Contact   *string         `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	Order     *Order `gorm:"foreignKey:OrderID;references:ID"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type Review struct {
	ID        string  `gorm:"type:varchar(64);primaryKey"`
	OrderID   string  `gorm:"type:varchar(64);not null;index"`
	UserID    string  `gorm:"type:varchar(64);not null"`
	WorkerID  string  `gorm:"type:varchar(64);not null;index"`
	Rating    int     `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment   *string `gorm:"type:text"`
	CreatedAt time.Time
	Order     *Order `gorm:"foreignKey:OrderID;references:ID"`
}

func (Review) TableName() string {
	return "reviews"
}

// All returns every model in dependency order for migration.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Worker{},
		&Specialization{},
		&LiveLocation{},
		&Order{},
		&Transaction{},
		&Review{},
	}
}
