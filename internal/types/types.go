// internal/types/types.go
package types

// EntityID это уникальный идентификатор сущности в мире.
type EntityID uint64
