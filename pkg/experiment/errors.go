package experiment

import "errors"

var (
	ErrBadDataSource    = errors.New("experiment: data source must be 1, 2 or 3")
	ErrBadLoadFactor    = errors.New("experiment: load factor must be between 0 and 1")
	ErrBadDebugLevel    = errors.New("experiment: debug level must be 0, 1 or 2")
	ErrBadCapacityRange = errors.New("experiment: max capacity is below min capacity")
	ErrTooSmall         = errors.New("experiment: capacity too small for double hashing")
)
