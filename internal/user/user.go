package user

import (
	"errors"
	"time"

	"github.com/hgmendoza/recaudo/internal/auth"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrMissingFields     = errors.New("username and password are required")
)

type User struct {
	ID        int64
	Username  string
	Role      auth.Role
	Active    bool
	CreatedAt time.Time
}
