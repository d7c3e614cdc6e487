// Package health serves the liveness probe endpoint. The handler is mounted
// on the router directly, bypassing content negotiation, so orchestrators
// always see the exact JSON body regardless of Accept headers. It must never
// depend on anything downstream; while the process is alive it succeeds.
package health

import (
	"encoding/json"
	"net/http"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status"`
}

// Handler is a plain HTTP handler for the health check endpoint.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Response{Status: "healthy"})
}
