package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrSAPIDExists           = errors.New("SAP ID already registered")
	ErrEmailExists           = errors.New("email already registered")
	ErrEmployeeHasDependents = errors.New("employee has dependent records and cannot be deleted")
)
