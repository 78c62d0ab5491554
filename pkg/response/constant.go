package response

const (
	MessageSuccess = "Success"

	BadRequestErrorCode      = 400
	TooManyRequestsErrorCode = 429
	InternalServerErrorCode  = 500

	DefaultErrorMessage = "Something went wrong"
)
