package models

import (
	"time"
)

type User struct {
	ID           string   `gorm:"type:varchar(64);primaryKey"`
	FullName     string   `gorm:"type:varchar(100);not null"`
	Email        string   `gorm:"type:varchar(255);index;not null"`
	PhoneNumber  string   `gorm:"type:varchar(15);not null"`
	PasswordHash *string  `gorm:"column:password;type:varchar(255)"`
	Location     *string  `gorm:"type:text"`
	Address      *string  `gorm:"type:text"`
	City         *string  `gorm:"type:varchar(100)"`
	State        *string  `gorm:"type:varchar(100)"`
	Country      *string  `gorm:"type:varchar(100)"`
	ZipCode      *string  `gorm:"type:varchar(20)"`
	AutoLocation *string  `gorm:"type:text"`
	Lat          *float64 `gorm:"type:double precision"`
	Lng          *float64 `gorm:"type:double precision"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
