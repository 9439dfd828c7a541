package domain

import "time"

// User is the domain model for site principals. The identity set is small
// and seeded statically; account lifecycle is out of scope.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
