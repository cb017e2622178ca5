package types

import "github.com/haneulsoft/weddingmoa-backend/pkg/pagination"

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ListEnvelope is the shape of paginated listing responses.
type ListEnvelope struct {
	Data       any             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
