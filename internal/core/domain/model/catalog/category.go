package catalog

import (
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
)

// Category groups inventory on the barista screen.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryDrinks
	CategorySnacks
	CategoryCarCare
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryDrinks:  "drinks",
		CategorySnacks:  "snacks",
		CategoryCarCare: "car_care",
	}
}

func ParseCategory(s string) (Category, error) {
	for c, name := range getCategoryStrings() {
		if name == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", s))
}

func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}
