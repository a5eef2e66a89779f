package error

import "errors"

// Tweet dataset domain errors.
var (
	// ErrMissingCoordinate is returned when a coordinate cell is empty.
	ErrMissingCoordinate = errors.New("coordinate missing")

	// ErrUnparseableCoordinate is returned when a coordinate cell does not follow "[lat, lon]".
	ErrUnparseableCoordinate = errors.New("coordinate unparseable")

	// ErrCoordinateOutOfRange is returned when latitude or longitude fall outside their bounds.
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")

	// ErrEmptyColumnList is returned when a schema check receives no column names.
	ErrEmptyColumnList = errors.New("column list is empty")

	// ErrTooManyCoordinates is returned when a parse request exceeds the batch limit.
	ErrTooManyCoordinates = errors.New("too many coordinates")
)

// TweetErrorCode defines error codes for tweet dataset errors.
// Format: TWT-XXYYYY where XX is category and YYYY is specific error.
type TweetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingCoordinate     TweetErrorCode = "TWT-010001"
	ErrCodeUnparseableCoordinate TweetErrorCode = "TWT-010002"
	ErrCodeCoordinateOutOfRange  TweetErrorCode = "TWT-010003"
	ErrCodeEmptyColumnList       TweetErrorCode = "TWT-010004"
	ErrCodeTooManyCoordinates    TweetErrorCode = "TWT-010005"
	ErrCodeInvalidTweetRequest   TweetErrorCode = "TWT-010006"
)

// TweetDataError represents a tweet dataset error with code and message.
type TweetDataError struct {
	Code    TweetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TweetDataError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TweetDataError) Unwrap() error {
	return e.Err
}

// NewTweetDataError creates a new TweetDataError with the given code and message.
func NewTweetDataError(code TweetErrorCode, message string, err error) *TweetDataError {
	return &TweetDataError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CoordinateErrorCode maps a coordinate parse error to its error code.
func CoordinateErrorCode(err error) TweetErrorCode {
	switch {
	case errors.Is(err, ErrMissingCoordinate):
		return ErrCodeMissingCoordinate
	case errors.Is(err, ErrCoordinateOutOfRange):
		return ErrCodeCoordinateOutOfRange
	default:
		return ErrCodeUnparseableCoordinate
	}
}
