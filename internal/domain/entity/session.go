package entity

import "time"

// Session is the explicit authenticated identity handed to components that
// need it. It replaces the single ambient "current user" slot.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
