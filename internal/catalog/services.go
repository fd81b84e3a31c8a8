// Package catalog holds the catalog services and the referential-integrity
// rules on product and stock writes. Services validate against the store
// contracts in store.go and never talk to the driver directly.
package catalog

// Services bundles the four entity services for wiring into the router.
type Services struct {
	Categories *CategoryService
	Variations *VariationService
	Products   *ProductService
	Stocks     *StockService
}

func NewServices(categories CategoryStore, variations VariationStore, products ProductStore, stocks StockStore) *Services {
	return &Services{
		Categories: NewCategoryService(categories),
		Variations: NewVariationService(variations),
		Products:   NewProductService(products, categories, variations),
		Stocks:     NewStockService(stocks, products, variations),
	}
}
