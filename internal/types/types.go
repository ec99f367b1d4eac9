// internal/types/types.go
package types

// EntityID identifies a board entity. IDs are never reused within a session;
// zero means "no entity".
type EntityID uint64
