package job

import "errors"

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrJobNotEditable  = errors.New("invoiced job can no longer be edited")
	ErrInvalidStatus   = errors.New("invalid job status")
	ErrInvalidVehicle  = errors.New("invalid vehicle class")
	ErrInvalidJobDate  = errors.New("invalid job date")
	ErrInvalidMonthKey = errors.New("month must be in YYYY-MM format")
)
