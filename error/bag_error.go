package error

type ErrorType int

const (
	IndexOutOfRangeError ErrorType = iota
)

type Error struct {
	Message string
	Type    ErrorType
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	if !ok {
		return false
	}

	return (e.Type == t.Type) && (e.Message == t.Message)
}

func New(errorType ErrorType, reason string) *Error {
	error := &Error{}

	switch errorType {
	case IndexOutOfRangeError:
		error.Message = "go-bag: index out of range: " + reason
	default:
		error.Message = "go-bag: unknown error: " + reason
	}

	error.Type = errorType

	return error
}
