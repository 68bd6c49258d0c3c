// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account row. HashedPassword never leaves the server layers;
// handlers work with token claims instead.
type User struct {
	ID             int64
	Email          string
	FullName       string
	ImageURL       string
	HashedPassword string
	CreatedAt      time.Time
}
