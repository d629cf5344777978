// Package service contains the application use cases for athletes,
// categories and training centers. Services validate input through the
// domain constructors, resolve references by natural key, and wrap every
// multi-step write in a single transaction (see store.RunInTransaction).
//
// Services depend on the store interfaces only. Errors returned to callers
// are domain validation errors, store not-found errors, or *PersistenceError
// carrying a client-safe description of a failed write.
package service
