package project

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrAssignmentNotFound = errors.New("project assignment not found")
	ErrAlreadyAssigned    = errors.New("employee already assigned to this project")
)
