package core

import "errors"

var (
	// ErrCellOccupied is returned when placing an entity onto a cell that
	// already holds one.
	ErrCellOccupied = errors.New("cell is already occupied")
	// ErrEntityNotFound is returned when an entity is not part of the environment.
	ErrEntityNotFound = errors.New("entity not found in the environment")
	// ErrInvalidEntity is returned when an entity cannot be placed, such as a
	// nil or non-pointer value.
	ErrInvalidEntity = errors.New("invalid entity")
	// ErrInvalidAction is returned for actions an environment does not recognise.
	ErrInvalidAction = errors.New("invalid action")
	// ErrUnsupportedOperation is returned by environments that do not model
	// entities at all.
	ErrUnsupportedOperation = errors.New("operation not supported by this environment")
)
