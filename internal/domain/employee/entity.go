package employee

import (
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

type Employee struct {
	ID         string
	Name       string
	Email      string
	Department string
	Position   string
	Status     Status
	Avatar     *string
	Phone      *string
	Location   *string
	JoinDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
