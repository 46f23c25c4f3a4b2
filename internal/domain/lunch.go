package domain

type MenuRecommendation struct {
	RecommendedMenu string   `json:"recommended_menu"`
	CuisineType     string   `json:"cuisine_type"`
	Message         string   `json:"message"`
	Alternatives    []string `json:"alternatives"`
}

type Restaurant struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Note    string  `json:"note"`
}
