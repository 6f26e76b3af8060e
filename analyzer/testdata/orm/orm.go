// Package orm is a minimal stand-in for an ORM runtime.
package orm

// Model marks a struct as a managed entity when embedded.
type Model struct {
	ID uint64
}

// Tracker registers entities with the persistence layer.
type Tracker struct{}

// Register makes e known to the tracker.
func (t *Tracker) Register(e any) {}
