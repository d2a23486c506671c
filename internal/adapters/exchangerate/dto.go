package exchangerate

// latestRatesResponse mirrors the rate endpoint's JSON document. Only
// the rates object is read; the rest is kept for debugging.
type latestRatesResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}
