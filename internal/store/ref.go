package store

// Ref pairs an entity with its internal surrogate key.
// Surrogate keys are used to set foreign keys and never leave the service layer.
type Ref[T any] struct {
	PK     int64
	Entity *T
}
