package chat

// QueryResponse is the POST /chat success body.
type QueryResponse struct {
	Response string   `json:"response"`
	Metadata Metadata `json:"metadata"`
}

// Metadata describes how the answer was produced. Duration is wall-clock
// seconds rounded to 2 decimals.
type Metadata struct {
	Model    string  `json:"model"`
	Duration float64 `json:"duration"`
}
