package chat

// QueryRequest is the POST /chat body. Model is optional; the configured
// default is used when it is absent or blank.
type QueryRequest struct {
	Query string `json:"query" binding:"required" example:"How many films are there in the database?"`
	Model string `json:"model" example:"mistralai/mistral-7b-instruct:free"`
}
