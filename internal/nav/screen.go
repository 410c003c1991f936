// Package nav implements the screen router: a closed set of typed screens, the
// login gate in front of them, and tasks whose results only land on the screen
// that started them.
package nav

import (
	"strings"

	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// Screen ids
const (
	IDDashboard        = "Dashboard"
	IDAddProduct       = "AddProduct"
	IDAppSettings      = "AppSettings"
	IDSettingsProducts = "SettingsProducts"
	IDSearch           = "Search"
	IDProductList      = "ProductList"
	IDProductDetail    = "ProductDetail"
	IDEditProduct      = "EditProduct"

	// IDLegacySettings is the older name of the product management screen
	IDLegacySettings = "Settings"

	productListPrefix = IDProductList + "-"
)

// Screen is one navigable view. The set of implementations is closed.
type Screen interface {
	ID() string
	isScreen()
}

// Dashboard is the home screen with search and the category grid
type Dashboard struct{}

// AddProduct is the new product form, optionally preselecting a category
type AddProduct struct {
	Category model.Category
}

// AppSettings edits the display settings
type AppSettings struct{}

// SettingsProducts is the product management screen
type SettingsProducts struct{}

// Search shows the results for Term
type Search struct {
	Term string
}

// ProductList shows every product in Category
type ProductList struct {
	Category model.Category
}

// ProductDetail shows one product
type ProductDetail struct {
	Product model.Product
}

// EditProduct is the edit form for Product
type EditProduct struct {
	Product model.Product
}

func (Dashboard) ID() string        { return IDDashboard }
func (AddProduct) ID() string       { return IDAddProduct }
func (AppSettings) ID() string      { return IDAppSettings }
func (SettingsProducts) ID() string { return IDSettingsProducts }
func (Search) ID() string           { return IDSearch }
func (s ProductList) ID() string    { return productListPrefix + string(s.Category) }
func (ProductDetail) ID() string    { return IDProductDetail }
func (EditProduct) ID() string      { return IDEditProduct }

func (Dashboard) isScreen()        {}
func (AddProduct) isScreen()       {}
func (AppSettings) isScreen()      {}
func (SettingsProducts) isScreen() {}
func (Search) isScreen()           {}
func (ProductList) isScreen()      {}
func (ProductDetail) isScreen()    {}
func (EditProduct) isScreen()      {}

// ParseScreen maps a string id to a screen. Screens that need a product cannot
// be built from an id alone and, like unknown ids, resolve to Dashboard.
func ParseScreen(id string) Screen {
	return resolve(id, "", nil, "")
}

// resolve builds a screen from an id plus the loose context values the id form
// of navigation carries
func resolve(id string, category model.Category, product *model.Product, term string) Screen {
	switch id {
	case IDDashboard:
		return Dashboard{}
	case IDAddProduct:
		return AddProduct{Category: category}
	case IDAppSettings:
		return AppSettings{}
	case IDSettingsProducts, IDLegacySettings:
		return SettingsProducts{}
	case IDSearch:
		return Search{Term: term}
	case IDProductList:
		if category.IsValid() {
			return ProductList{Category: category}
		}
	case IDProductDetail:
		if product != nil {
			return ProductDetail{Product: *product}
		}
	case IDEditProduct:
		if product != nil {
			return EditProduct{Product: *product}
		}
	default:
		if rest, ok := strings.CutPrefix(id, productListPrefix); ok {
			if c := model.Category(rest); c.IsValid() {
				return ProductList{Category: c}
			}
		}
	}
	return Dashboard{}
}

// BackTarget is where the back button of screen leads
func BackTarget(screen Screen) Screen {
	switch s := screen.(type) {
	case ProductDetail:
		return ProductList{Category: s.Product.Category}
	case EditProduct:
		return ProductDetail{Product: s.Product}
	default:
		return Dashboard{}
	}
}
