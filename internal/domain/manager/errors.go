package manager

import "errors"

var (
	ErrManagerNotFound = errors.New("manager not found")
	ErrEmailExists     = errors.New("manager email already registered")
)
