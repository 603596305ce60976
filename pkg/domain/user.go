package domain

import "time"

// User is a subscriber. Names are not unique, several users may share one.
type User struct {
	ID        *int64     `json:"id,omitempty"`
	Name      string     `json:"name"`
	CreatedOn *time.Time `json:"created_on,omitempty"`
}

// UserOption sets optional User fields
type UserOption func(*User)

// NewUser makes a user record with the given name
func NewUser(name string, opts ...UserOption) User {
	u := User{Name: name}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// UserID sets the storage-assigned id
func UserID(id int64) UserOption {
	return func(u *User) { u.ID = &id }
}

// UserCreatedOn sets the user's creation time
func UserCreatedOn(t time.Time) UserOption {
	return func(u *User) { u.CreatedOn = &t }
}
