package domain

import "cx-chat/errors"

// Role is supplied per request, never stored as participant state.
type Role string

const (
	Customer Role = "CUSTOMER"
	Agent    Role = "AGENT"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case Customer:
		return Customer, nil
	case Agent:
		return Agent, nil
	default:
		return "", errors.ErrInvalidRole
	}
}

// Opposite returns the role a participant can be paired with.
func (r Role) Opposite() Role {
	if r == Customer {
		return Agent
	}
	return Customer
}
