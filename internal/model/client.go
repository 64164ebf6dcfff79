package model

import "time"

type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"` // unique lookup key, matched case-insensitively
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
