package menu

import "errors"

var (
	// ErrCycle is returned when a menu would end up containing itself.
	ErrCycle = errors.New("menu cycle detected")

	// ErrMaxDepth is returned when rendering descends past the handler's depth limit.
	ErrMaxDepth = errors.New("menu nesting exceeds maximum depth")

	// ErrInvalidItem is returned when a menu definition mixes link and raw fields.
	ErrInvalidItem = errors.New("invalid menu item")
)
