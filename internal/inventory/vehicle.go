package inventory

// Status is the availability state of a catalog record. Available and
// Reserved are the only two states this core ever writes.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusReserved  Status = "Reserved"
)

// Canonical body styles as stored in criteria (upper-case). Catalog rows may
// carry any casing; comparisons are case-insensitive.
const (
	BodySUV         = "SUV"
	BodySedan       = "SEDAN"
	BodyHatchback   = "HATCHBACK"
	BodyTruck       = "TRUCK"
	BodyConvertible = "CONVERTIBLE"
	BodyCoupe       = "COUPE"
)

// Vehicle is one catalog record. The VIN is globally unique and immutable
// once assigned; only Status is ever mutated after load (by Reserve).
type Vehicle struct {
	VIN          string  `json:"vin"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Price        float64 `json:"price"`
	Mileage      int     `json:"mileage"`
	Color        string  `json:"color"`
	BodyStyle    string  `json:"body_style"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	Status       Status  `json:"status"`
	SafetyRating string  `json:"safety_rating,omitempty"`
	Features     string  `json:"features,omitempty"`
}

// Available reports whether the vehicle can still be reserved.
func (v Vehicle) Available() bool {
	return v.Status == StatusAvailable
}
