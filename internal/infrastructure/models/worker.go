package models

import "time"

type Worker struct {
	ID             string  `gorm:"type:varchar(64);primaryKey"`
	FullName       string  `gorm:"type:varchar(100);not null"`
	Email          string  `gorm:"type:varchar(255);index;not null"`
	PasswordHash   *string `gorm:"column:password;type:varchar(255)"`
	PhoneNumber    string  `gorm:"type:varchar(15);not null"`
	ProfilePicture *string `gorm:"type:text"`
	Location       *string `gorm:"type:text"`
	Description    *string `gorm:"type:text"`
	IsAvailable    bool    `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Worker) TableName() string {
	return "workers"
}

type Specialization struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	WorkerID  string `gorm:"type:varchar(64);not null;index"`
	Name      string `gorm:"type:varchar(100);not null;index"`
	CreatedAt time.Time
	Worker    *Worker `gorm:"foreignKey:WorkerID;references:ID"`
}

func (Specialization) TableName() string {
	return "specializations"
}
