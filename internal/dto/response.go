package dto

import "time"

type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Code      string    `json:"code,omitempty"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now(),
	}
}

func NewErrorResponse(code string, details string) BasicResponse {
	resp := NewBasicResponse(false, details)
	resp.Code = code
	return resp
}
