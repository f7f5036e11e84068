package staff

import "errors"

var (
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrStaffPhoneExists = errors.New("staff member with this phone number already exists")
)
