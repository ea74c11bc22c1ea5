package rest

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// BatchResponseError carries per-entry validation failures for batch
// requests.
type BatchResponseError struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}
