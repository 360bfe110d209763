package domain

// RegionKind distinguishes South African provinces from Lesotho districts.
type RegionKind string

const (
	RegionProvince RegionKind = "province"
	RegionDistrict RegionKind = "district"
)

// Location is a service area shown on the locations map. The set is fixed
// reference data seeded at install time.
type Location struct {
	ID      string
	Name    string
	Country string
	Kind    RegionKind
	Lat     float64
	Lng     float64
}
