package domain

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

type Resource string

const (
	ResourceCatalog     Resource = "catalog"
	ResourceHall        Resource = "hall"
	ResourcePerformance Resource = "performance"
	ResourceReservation Resource = "reservation"
)

// Permitted is the single capability check applied at the request boundary.
// Authentication is a precondition: callers reach this only with a known user.
// Reservations are always permitted here because ownership scoping happens in
// the queries themselves, never via an admin override.
func Permitted(user User, action Action, resource Resource) bool {
	if resource == ResourceReservation {
		return true
	}

	if action == ActionRead {
		return true
	}

	return user.IsStaff
}
