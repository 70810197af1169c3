package response

// DefaultErrorMessage is returned for unexpected server faults.
const DefaultErrorMessage = "internal server error"

// Msg is a plain confirmation body.
type Msg struct {
	Message string `json:"message"`
}

// ErrResp is the standard error body.
type ErrResp struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
