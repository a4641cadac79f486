package models

// Product categories known to the catalog.
const (
	ProductTypeStandard = "Padrao"
	ProductTypePainted  = "Pintado"
	ProductTypeNaval    = "Naval"
)

// Product represents reference catalog data; read-only on this side
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	UnitValue   float64 `json:"unitValue"`
	ProductType string  `json:"productType"`
}
