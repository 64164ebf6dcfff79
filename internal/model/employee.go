package model

import "time"

type Employee struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`  // unique lookup key, matched case-insensitively
	Email        string             `json:"email"` // unique
	Phone        string             `json:"phone"`
	Role         string             `json:"role"`
	Availability WeeklyAvailability `json:"availability"`
	CreatedAt    time.Time          `json:"created_at"`
}
