package fixtures

import (
	"context"
	"fmt"

	"github.com/autodazzle/detailing-backend-go/internal/domain/catalog"
)

// DefaultServices is the catalog a fresh shop starts with. SKUs matter:
// the payroll engine keys premium bonuses off name/SKU keywords, so the
// defaults keep the conventions the engine matches on.
var DefaultServices = []catalog.Service{
	{Name: "Foam Wash", SKU: "WASH-FOAM", Category: catalog.CategoryWashing, Active: true},
	{Name: "Underbody Wash", SKU: "WASH-UB", Category: catalog.CategoryWashing, Active: true},
	{Name: "Bike Wash", SKU: "WASH-BIKE", Category: catalog.CategoryWashing, Active: true},
	{Name: "Interior Cleaning", SKU: "INT-CLEAN", Category: catalog.CategoryDetailing, Active: true},
	{Name: "Machine Polish", SKU: "POL-MACHINE", Category: catalog.CategoryDetailing, Active: true},
	{Name: "Headlight Polish", SKU: "POL-HEAD", Category: catalog.CategoryDetailing, Active: true},
	{Name: "Ceramic Coating", SKU: "COAT-CERAMIC", Category: catalog.CategoryCoating, Active: true},
	{Name: "Graphene Coating", SKU: "COAT-GRAPHENE", Category: catalog.CategoryCoating, Active: true},
	{Name: "Paint Protection Film", SKU: "COAT-PPF", Category: catalog.CategoryCoating, Active: true},
	{Name: "Engine Bay Detailing", SKU: "ADD-ENGINE", Category: catalog.CategoryAddon, Active: true},
	{Name: "Odor Removal", SKU: "ADD-ODOR", Category: catalog.CategoryAddon, Active: true},
}

// SeedCatalog inserts the default services when the catalog is empty.
// A shop that already has services keeps what it has.
func SeedCatalog(ctx context.Context, repo catalog.ServiceRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count services: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, svc := range DefaultServices {
		if _, err := repo.Create(ctx, svc); err != nil {
			return fmt.Errorf("seed service %s: %w", svc.SKU, err)
		}
	}
	return nil
}
