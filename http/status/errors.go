package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrURLDecoding         = NewError(BadRequest, "invalid urlencoded sequence")
	ErrTooLargeRequest     = NewError(BadRequest, "request exceeds the size limit")
	ErrForbidden           = NewError(Forbidden, "forbidden")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrMethodNotAllowed    = NewError(MethodNotAllowed, "method not allowed")
	ErrRequestTimeout      = NewError(RequestTimeout, "request timeout")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
