package models

import "time"

type LiveLocation struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	WorkerID  string    `gorm:"type:varchar(64);not null;index"`
	Lat       float64   `gorm:"type:double precision;not null"`
	Lng       float64   `gorm:"type:double precision;not null"`
	CreatedAt time.Time `gorm:"index"`
	Worker    *Worker   `gorm:"foreignKey:WorkerID;references:ID"`
}

func (LiveLocation) TableName() string {
	return "workers_location"
}
