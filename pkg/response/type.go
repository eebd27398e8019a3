package response

// Resp is the envelope of every JSON body served under /api/v1.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// IsSuccess reports whether the envelope carries a result.
func (r Resp) IsSuccess() bool {
	return r.ErrorCode == CodeOK
}
