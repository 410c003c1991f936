package ui

// Localization holds the UI copy. The catalogue ships in English only; keys
// keep the copy in one table so screens never hard-code user-facing text.
type Localization struct {
	texts map[string]string
}

// Text keys
const (
	KeyAppTitle           = "app_title"
	KeyUsername           = "username"
	KeyPassword           = "password"
	KeyEnter              = "enter"
	KeySearchPlaceholder  = "search_placeholder"
	KeySearch             = "search"
	KeyCategories         = "categories"
	KeyAddProduct         = "add_product"
	KeyAddProductTitle    = "add_product_title"
	KeyEditProductTitle   = "edit_product_title"
	KeyBackToDashboard    = "back_to_dashboard"
	KeyBackToList         = "back_to_list"
	KeyBackToProduct      = "back_to_product"
	KeyLoading            = "loading"
	KeyNoProducts         = "no_products"
	KeyNoProductsCategory = "no_products_category"
	KeyProductName        = "product_name"
	KeyDescription        = "description"
	KeyPrice              = "price"
	KeyImageURLs          = "image_urls"
	KeyCategory           = "category"
	KeySaveProduct        = "save_product"
	KeySaveChanges        = "save_changes"
	KeyEdit               = "edit"
	KeyDelete             = "delete"
	KeyManageProducts     = "manage_products"
	KeyManageTitle        = "manage_title"
	KeyFilterPlaceholder  = "filter_placeholder"
	KeyDangerZone         = "danger_zone"
	KeyClearAll           = "clear_all"
	KeyAppSettings        = "app_settings"
	KeyBackgroundURL      = "background_url"
	KeyPrimaryColor       = "primary_color"
	KeySecondaryColor     = "secondary_color"
	KeyFontFamily         = "font_family"
	KeyBaseFontSize       = "base_font_size"
	KeyGridColumns        = "grid_columns"
	KeySaveSettings       = "save_settings"
	KeyConfirmTitle       = "confirm_title"
	KeyNoticeTitle        = "notice_title"
	KeySettingsLoadFailed = "settings_load_failed"
)

// NewLocalization creates the copy table
func NewLocalization() *Localization {
	return &Localization{texts: map[string]string{
		KeyAppTitle:           "Comfort Digital Catalogue",
		KeyUsername:           "Username",
		KeyPassword:           "Password",
		KeyEnter:              "Enter",
		KeySearchPlaceholder:  "Search products...",
		KeySearch:             "Search",
		KeyCategories:         "Categories",
		KeyAddProduct:         "Add New Product",
		KeyAddProductTitle:    "Add a New Product",
		KeyEditProductTitle:   "Edit Product",
		KeyBackToDashboard:    "Back to Dashboard",
		KeyBackToList:         "Back to List",
		KeyBackToProduct:      "Back to Product",
		KeyLoading:            "Loading products...",
		KeyNoProducts:         "No products found.",
		KeyNoProductsCategory: "No products found in this category.",
		KeyProductName:        "Product Name",
		KeyDescription:        "Product Description",
		KeyPrice:              "Price",
		KeyImageURLs:          "Image URLs (separate with commas)",
		KeyCategory:           "Category",
		KeySaveProduct:        "Save Product",
		KeySaveChanges:        "Save Changes",
		KeyEdit:               "Edit",
		KeyDelete:             "Delete",
		KeyManageProducts:     "Manage Products",
		KeyManageTitle:        "Settings",
		KeyFilterPlaceholder:  "Filter products to delete...",
		KeyDangerZone:         "Danger Zone",
		KeyClearAll:           "Clear All Catalog Data",
		KeyAppSettings:        "App Settings",
		KeyBackgroundURL:      "Background Image URL",
		KeyPrimaryColor:       "Primary Color",
		KeySecondaryColor:     "Secondary Color",
		KeyFontFamily:         "Font Family",
		KeyBaseFontSize:       "Base Font Size (px)",
		KeyGridColumns:        "Category Grid Columns",
		KeySaveSettings:       "Save Settings",
		KeyConfirmTitle:       "Please confirm",
		KeyNoticeTitle:        "Comfort Digital Catalogue",
		KeySettingsLoadFailed: "Could not load display settings, using defaults",
	}}
}

// GetText returns the copy for key, or the key itself when missing
func (l *Localization) GetText(key string) string {
	if text, ok := l.texts[key]; ok {
		return text
	}
	return key
}
