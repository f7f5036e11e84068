package catalog

import "errors"

var (
	ErrServiceNotFound  = errors.New("catalog service not found")
	ErrServiceSKUExists = errors.New("catalog service with this SKU already exists")
)
