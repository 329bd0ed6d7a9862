package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin          UserRole = "admin"
	UserRoleDataScientist  UserRole = "data_scientist"
	UserRoleMLEngineer     UserRole = "ml_engineer"
	UserRoleProjectManager UserRole = "project_manager"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
