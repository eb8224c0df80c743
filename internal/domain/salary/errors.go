package salary

import "errors"

var ErrRecordNotFound = errors.New("salary record not found")
