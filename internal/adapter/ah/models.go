package ah

// searchResponse represents the AH product search API response structure.
type searchResponse struct {
	Page  pageInfo `json:"page"`
	Cards []card   `json:"cards"`
}

type pageInfo struct {
	Number     int `json:"number"`
	TotalPages int `json:"totalPages"`
	TotalCount int `json:"totalCount"`
}

type card struct {
	Products []apiProduct `json:"products"`
}

type apiProduct struct {
	WebshopID     int64        `json:"webshopId"`
	Title         string       `json:"title"`
	MainCategory  string       `json:"mainCategory"`
	SalesUnitSize string       `json:"salesUnitSize"`
	Price         apiPrice     `json:"price"`
	Discount      *apiDiscount `json:"discount"`
	Images        []apiImage   `json:"images"`
}

type apiPrice struct {
	Now float64  `json:"now"`
	Was *float64 `json:"was"`
}

type apiDiscount struct {
	BonusMechanism string `json:"bonusMechanism"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
}

type apiImage struct {
	URL string `json:"url"`
}
