package core

import "time"

type Credentials struct {
	Username string
	Password string
}

type Account struct {
	ID       uint
	Username string
}

type MemberRecord struct {
	ID      uint
	Name    string
	Email   string
	Phone   string
	Address string
}

type AttendanceRecord struct {
	ID       uint
	MemberID uint
	Date     time.Time
}
