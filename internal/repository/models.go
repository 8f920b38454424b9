package repository

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(80);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(120);not null"`
}

type Member struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"type:varchar(120);not null"`
	Email   string `gorm:"type:varchar(120);not null"`
	Phone   string `gorm:"type:varchar(40);not null"`
	Address string `gorm:"type:text;not null"`
}

type Attendance struct {
	ID       uint      `gorm:"primaryKey"`
	MemberID uint      `gorm:"not null;index"`
	Date     time.Time `gorm:"not null"`
}
