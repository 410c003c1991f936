package flows

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/comfort-hq/digital-catalogue/internal/model"
)

var (
	// ErrMissingFields is returned when name, price or category is blank
	ErrMissingFields = errors.New("Please fill in Product Name, Price, and Category.")
	// ErrInvalidPrice is returned when the price does not parse as a number
	ErrInvalidPrice = errors.New("Please enter a valid number for Price.")
	// ErrUnknownCategory is returned for a category outside the fixed list
	ErrUnknownCategory = errors.New("Please choose one of the listed categories.")
)

// ProductForm is the raw text collected by the add and edit screens
type ProductForm struct {
	Name        string
	Description string
	Price       string
	Category    model.Category
	ImageURLs   string
}

// FormFromProduct prefills a form for editing p
func FormFromProduct(p model.Product) ProductForm {
	return ProductForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       strconv.FormatFloat(float64(p.Price), 'f', -1, 64),
		Category:    p.Category,
		ImageURLs:   strings.Join(p.ImageURL, ", "),
	}
}

// Validate checks the required fields before anything is sent
func (f ProductForm) Validate() error {
	_, err := f.parse()
	return err
}

// Product builds the product the form describes. The id is left empty.
func (f ProductForm) Product() (model.Product, error) {
	return f.parse()
}

func (f ProductForm) parse() (model.Product, error) {
	name := strings.TrimSpace(f.Name)
	price := strings.TrimSpace(f.Price)
	if name == "" || price == "" || f.Category == "" {
		return model.Product{}, ErrMissingFields
	}

	amount, err := strconv.ParseFloat(price, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return model.Product{}, ErrInvalidPrice
	}
	if !f.Category.IsValid() {
		return model.Product{}, ErrUnknownCategory
	}

	return model.Product{
		Name:        name,
		Description: f.Description,
		Price:       model.Price(amount),
		Category:    f.Category,
		ImageURL:    model.ImageList(ParseImageURLs(f.ImageURLs)),
	}, nil
}

// ParseImageURLs splits comma separated URLs, trimming each and dropping empties
func ParseImageURLs(text string) []string {
	urls := []string{}
	for _, part := range strings.Split(text, ",") {
		if u := strings.TrimSpace(part); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
