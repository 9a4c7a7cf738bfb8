package response

type VariantPair struct {
	Base    string `json:"base"`
	Variant string `json:"variant"`
}

type PricesResponse struct {
	Products []VariantPair `json:"products"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type AuthResponse struct {
	Status string `json:"status"`
	Game   string `json:"game,omitempty"`
	Store  string `json:"store,omitempty"`
}

type ImpressionsResponse struct {
	Recorded int `json:"recorded"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
