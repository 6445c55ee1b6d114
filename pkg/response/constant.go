package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500

	// DateFormat is the wire format for plain calendar dates.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = "2006-01-02 15:04:05"
)
