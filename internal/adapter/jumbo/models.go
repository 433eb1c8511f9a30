package jumbo

// searchResponse represents the Jumbo mobile API search response structure.
type searchResponse struct {
	Products productsPage `json:"products"`
}

type productsPage struct {
	Data   []apiProduct `json:"data"`
	Total  int          `json:"total"`
	Offset int          `json:"offset"`
}

type apiProduct struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	TopLevelCategory string        `json:"topLevelCategory"`
	Quantity         string        `json:"quantity"`
	Prices           apiPrices     `json:"prices"`
	ImageInfo        *apiImageInfo `json:"imageInfo"`
	Promotion        *apiPromotion `json:"promotion"`
}

type apiPrices struct {
	Price            apiMoney  `json:"price"`
	PromotionalPrice *apiMoney `json:"promotionalPrice"`
}

// apiMoney is an amount in cents.
type apiMoney struct {
	Amount int64 `json:"amount"`
}

type apiImageInfo struct {
	Primary apiImage `json:"primaryView"`
}

type apiImage struct {
	URL string `json:"url"`
}

type apiPromotion struct {
	FromDate string   `json:"fromDate"`
	ToDate   string   `json:"toDate"`
	Tags     []apiTag `json:"tags"`
}

type apiTag struct {
	Text string `json:"text"`
}
