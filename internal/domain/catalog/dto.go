package catalog

import "github.com/autodazzle/detailing-backend-go/internal/pkg/validator"

type ServiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
	Active   bool   `json:"active"`
}

type CreateServiceRequest struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
}

func (r *CreateServiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.SKU) {
		errs = append(errs, validator.ValidationError{
			Field:   "sku",
			Message: "sku is required",
		})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
