package models

// Product is the normalized record produced by the mapping pipeline and
// returned by the search API. Field names follow the public wire contract.
type Product struct {
	Link         string  `json:"link"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	ProductName  string  `json:"productName"`
	Website      string  `json:"website"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	Reviews      int     `json:"reviews,omitempty"`
	Availability string  `json:"availability,omitempty"`

	// Message is set only on the sentinel record returned when the upstream
	// credential is not configured. Clients detect the condition by its
	// presence; everything else about the response stays success-shaped.
	Message string `json:"message,omitempty"`
}

// MissingKeyResult builds the sentinel returned when no SerpApi key is set.
func MissingKeyResult() Product {
	return Product{
		ProductName: "Error",
		Message:     "API key is missing. Please set the SERPAPI_API_KEY environment variable.",
	}
}
