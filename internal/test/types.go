package test

// ClassifyRequest represents a classification request
type ClassifyRequest struct {
	Message *string `json:"message" binding:"required"`
}

// ClassifyResponse represents a classification result
type ClassifyResponse struct {
	Message string         `json:"message"`
	Domain  string         `json:"domain"`
	Scores  map[string]int `json:"scores"`
}
