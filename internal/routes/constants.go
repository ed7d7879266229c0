package routes

var (
	SignupDurationSecondsBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
	LoginDurationSecondsBuckets  = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
)

const (
	// API route constants
	MetricsRouteAPI = "/metrics"
	HealthRouteAPI  = "/healthz"
	LoginRouteAPI   = "/login"
	SignupRouteAPI  = "/signup"

	// Content-Type constants
	ContentType     = "Content-Type"
	ContentTypeJson = "application/json"

	// maxBodyBytes caps request bodies for signup and login.
	maxBodyBytes = 1 << 14

	// message constants
	MsgLoginSuccessful   = "Login successful"
	MsgUserCreatedFormat = "User created successfully with ID: %s"
	MsgHealthy           = "ok"
	MsgUnhealthy         = "unavailable"

	// Error messages
	ErrMethodNotAllowed         = "method not allowed"
	ErrInvalidContentType       = "content-Type must be application/json"
	ErrInvalidRequestBody       = "invalid request body"
	ErrValidationFailed         = "data validation failed"
	ErrFailedToRegisterUser     = "failed to register user"
	ErrUsernameTaken            = "username already taken"
	ErrInvalidCredentials       = "invalid username or password"
	ErrServiceUnavailable       = "service temporarily unavailable"
	ErrInternal                 = "internal server error"
	ErrInvalidContentTypeFormat = "invalid content-type: %s"

	// metrics constants
	SignupRequestsTotal       = "signup_requests_total"
	SignupRequestsTotalHelp   = "Total number of signup requests received"
	SignupSuccessTotal        = "signup_success_total"
	SignupSuccessTotalHelp    = "Total number of successful signup requests"
	SignupErrorsTotal         = "signup_errors_total"
	SignupErrorsTotalHelp     = "Total number of errors during signup requests"
	SignupDurationSeconds     = "signup_duration_seconds"
	SignupDurationSecondsHelp = "Duration of signup requests in seconds"
	LoginRequestsTotal        = "login_requests_total"
	LoginRequestsTotalHelp    = "Total number of login requests received"
	LoginSuccessTotal         = "login_success_total"
	LoginSuccessTotalHelp     = "Total number of successful login requests"
	LoginFailedTotal          = "login_failed_total"
	LoginFailedTotalHelp      = "Total number of failed login requests"
	LoginDurationSeconds      = "login_duration_seconds"
	LoginDurationSecondsHelp  = "Duration of login requests in seconds"
	StoreErrorsTotal          = "store_errors_total"
	StoreErrorsTotalHelp      = "Total number of credential store failures by operation"
	StoreUp                   = "store_up"
	StoreUpHelp               = "1 if the last health check reached the credential store, 0 otherwise"

	labelOperation  = "operation"
	operationSignup = "signup"
	operationLogin  = "login"
	operationHealth = "health"
)

// StoreErrorsLabels are the labels of StoreErrorsTotal.
var StoreErrorsLabels = []string{labelOperation}
