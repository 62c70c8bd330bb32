package dto

// VendorListFilter contains query parameters for the catalogue listing endpoint.
type VendorListFilter struct {
	Category string
	Region   string
	MaxPrice *int
	Page     int
	PerPage  int
}
