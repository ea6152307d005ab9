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
	ErrInvalidQuantity
	ErrInvalidOperation
	ErrInvalidDocumentStatus
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrUnauthorize:           "unauthorize request",
	ErrCredentialExists:      "email or phone already exists",
	ErrInvalidPassword:       "password invalid",
	ErrInvalidQuantity:       "quantity must be greater than zero",
	ErrInvalidOperation:      "operation not allowed",
	ErrInvalidDocumentStatus: "document status does not allow this operation",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrUnauthorize:           http.StatusUnauthorized,
	ErrCredentialExists:      http.StatusBadRequest,
	ErrInvalidPassword:       http.StatusBadRequest,
	ErrInvalidQuantity:       http.StatusBadRequest,
	ErrInvalidOperation:      http.StatusBadRequest,
	ErrInvalidDocumentStatus: http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrUnauthorize:           "0004",
	ErrCredentialExists:      "0005",
	ErrInvalidPassword:       "0006",
	ErrInvalidQuantity:       "0007",
	ErrInvalidOperation:      "0008",
	ErrInvalidDocumentStatus: "0009",
}
