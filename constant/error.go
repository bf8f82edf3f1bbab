package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrInvalidOperation
	ErrInvalidState
	ErrInsufficientStock
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrCredentialExists:  "email or phone already exists",
	ErrInvalidPassword:   "password invalid",
	ErrInvalidOperation:  "operation not allowed",
	ErrInvalidState:      "entity is in the wrong state for this operation",
	ErrInsufficientStock: "insufficient stock",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrCredentialExists:  http.StatusBadRequest,
	ErrInvalidPassword:   http.StatusBadRequest,
	ErrInvalidOperation:  http.StatusBadRequest,
	ErrInvalidState:      http.StatusConflict,
	ErrInsufficientStock: http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrCredentialExists:  "0005",
	ErrInvalidPassword:   "0006",
	ErrInvalidOperation:  "0007",
	ErrInvalidState:      "0008",
	ErrInsufficientStock: "0009",
}
