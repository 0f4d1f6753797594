package api

// ErrorResponse is the body of every failed request. The original
// frontend expects a "status" discriminator next to the message.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// errorJSON wraps a message into a standardized error object
func errorJSON(message string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Message: message,
	}
}

var (
	errorInternalServer             = errorJSON("internal server error")
	errorCannotParseRequest         = errorJSON("cannot parse request")
	errorInvalidParameters          = errorJSON("invalid parameters")
	errorInvalidAuthorizationFormat = errorJSON("invalid authorization format")
	errorInvalidToken               = errorJSON("invalid token")
	errorAccountNotFound            = errorJSON("account not found")

	errorMissingFields      = errorJSON("All fields are required.")
	errorInvalidPhone       = errorJSON("Phone number must be exactly 10 digits.")
	errorEmailTaken         = errorJSON("Email already registered.")
	errorMissingCredentials = errorJSON("Email and password are required.")
	errorInvalidCredentials = errorJSON("Invalid email or password.")

	errorMissingRouteFields = errorJSON("Missing required fields")
	errorMissingEndpoints   = errorJSON("Invalid input. 'start_point' and 'end_point' are required.")
	errorUnknownUser        = errorJSON("User or route ID does not exist.")
	errorRatingOutOfRange   = errorJSON("Rating must be between 1 and 5.")

	errorDirectionsFailed      = errorJSON("An error occurred while fetching routes from Google Maps.")
	errorDirectionsUnavailable = errorJSON("Google Maps API is not configured. Route calculation is unavailable.")

	errorCrimeLogList = errorJSON("Invalid input. Expected a JSON list of crime objects.")
	errorDBConnection = errorJSON("Database connection failed.")
)
