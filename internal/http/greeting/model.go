package greeting

// Data models the response payload for the root greeting endpoint.
type Data struct {
	Message   string `json:"message" doc:"Greeting message" example:"Hello World!"`
	Version   string `json:"version" doc:"Service version" example:"1.0.0"`
	Timestamp string `json:"timestamp" doc:"Time the response was generated, RFC 3339 UTC" format:"date-time" example:"2024-01-01T00:00:00.000Z"`
}

// Output is the response wrapper for the greeting endpoint.
type Output struct {
	Body Data
}
