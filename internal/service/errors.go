package service

import "errors"

var (
	// ErrNotFound means the record does not exist or belongs to another user.
	ErrNotFound = errors.New("record not found")
	// ErrUserExists means the requested username is already taken.
	ErrUserExists = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown users and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrMissingField means a required field was absent or empty.
	ErrMissingField = errors.New("all fields are required")
)

// Publisher is the event-publishing capability services use after a
// successful write. *mq.Producer satisfies it.
type Publisher interface {
	Publish(routingKey string, payload any) error
}
