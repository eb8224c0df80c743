package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrNotAuthorized     = errors.New("not authorized for this task")
	ErrNoAssignerProfile = errors.New("account has no employee profile to assign tasks from")
)
