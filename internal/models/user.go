package models

import "time"

// User captures an individual account as stored.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     *string   `json:"username"`
	Name         string    `json:"name"`
	Surname      *string   `json:"surname"`
	Age          int       `json:"age"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSummary is the projection returned after registration.
type UserSummary struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Username *string `json:"username"`
	Name     string  `json:"name"`
	Age      int     `json:"age"`
}

// UserProfile is the projection returned after login.
type UserProfile struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Username *string `json:"username"`
	Name     string  `json:"name"`
	Surname  *string `json:"surname"`
	Age      int     `json:"age"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Username: u.Username, Name: u.Name, Age: u.Age}
}

func (u User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Email: u.Email, Username: u.Username, Name: u.Name, Surname: u.Surname, Age: u.Age}
}

// UserPatch lists the columns an update replaces. Nil fields are left untouched.
type UserPatch struct {
	Email        *string
	Name         *string
	Surname      *string
	Username     *string
	Age          *int
	PasswordHash *string
}

// Empty reports whether the patch carries no fields.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.Name == nil && p.Surname == nil &&
		p.Username == nil && p.Age == nil && p.PasswordHash == nil
}
