package classname

import "errors"

var (
	// ErrDuplicateGroup is returned when two groups share an id.
	ErrDuplicateGroup = errors.New("duplicate class group")

	// ErrUnknownConflict is returned when a group lists a conflicting group
	// that does not exist in the table.
	ErrUnknownConflict = errors.New("unknown conflicting class group")

	// ErrEmptyGroup is returned for groups without id or without classes.
	ErrEmptyGroup = errors.New("class group has no id or no classes")

	// ErrAmbiguousClass is returned when the same class or prefix is claimed
	// by two groups.
	ErrAmbiguousClass = errors.New("class belongs to more than one group")
)
