package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ProductType identifies a product from the shop's fixed catalog
type ProductType int

const (
	ProductPanaFlex ProductType = iota
	ProductVinyl
	ProductPaperPoster
	ProductBusinessCard
	ProductMugPrint
	ProductTShirtPrint
	ProductStamp
	ProductOthers
)

var productTypeNames = [...]string{
	"Pana Flex",
	"Vinyl",
	"Paper Poster",
	"Business Card",
	"Mug Print",
	"T-Shirt Print",
	"Stamp",
	"Others",
}

func (p ProductType) String() string {
	if int(p) < 0 || int(p) >= len(productTypeNames) {
		return "Others"
	}
	return productTypeNames[p]
}

// IsAreaPriced reports whether the product is priced by width x height x rate.
// Everything else in the catalog takes a flat amount entered directly.
func (p ProductType) IsAreaPriced() bool {
	switch p {
	case ProductPanaFlex, ProductVinyl, ProductPaperPoster:
		return true
	}
	return false
}

// ParseProductType resolves a catalog name to its ProductType
func ParseProductType(s string) (ProductType, error) {
	for i, name := range productTypeNames {
		if name == s {
			return ProductType(i), nil
		}
	}
	return ProductOthers, fmt.Errorf("unknown product type %q", s)
}

func (p ProductType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *ProductType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = ProductType(i)
		return nil
	}
	parsed, err := ParseProductType(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p ProductType) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *ProductType) Scan(value interface{}) error {
	if value == nil {
		*p = ProductOthers
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = ProductType(v)
	case int:
		*p = ProductType(v)
	}
	return nil
}
