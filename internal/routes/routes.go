package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	structValidator "github.com/go-playground/validator/v10"

	"github.com/haguru/credkeeper/internal/credvalidator"
	"github.com/haguru/credkeeper/internal/interfaces"
	"github.com/haguru/credkeeper/internal/models/dto"
	"github.com/haguru/credkeeper/internal/userservice"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Route struct {
	Metrics       interfaces.Metrics
	Authenticator interfaces.Authenticator
	Registrar     interfaces.Registrar
	Health        HealthChecker
	Logger        interfaces.Logger
	validator     *structValidator.Validate
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, authenticator interfaces.Authenticator,
	registrar interfaces.Registrar, health HealthChecker, logger interfaces.Logger,
	validator *structValidator.Validate,
) *Route {
	if validator == nil {
		validator = structValidator.New()
	}

	return &Route{
		Metrics:       metrics,
		Authenticator: authenticator,
		Registrar:     registrar,
		Health:        health,
		Logger:        logger,
		validator:     validator,
	}
}

// Signup handles user signup requests.
func (r *Route) Signup(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		r.errorResponse(w, http.StatusMethodNotAllowed, ErrMethodNotAllowed, fmt.Sprintf("method %s not allowed", req.Method))
		return
	}
	r.incCounter(SignupRequestsTotal)

	signupRequest := &dto.UserSignupRequestDTO{}
	if msg, ok := r.decode(w, req, signupRequest); !ok {
		r.errorResponse(w, http.StatusBadRequest, ErrInvalidRequestBody, msg)
		r.incCounter(SignupErrorsTotal)
		return
	}

	startTime := time.Now()
	credential, err := r.Registrar.Register(req.Context(), signupRequest.Username, signupRequest.Password)
	r.observe(SignupDurationSeconds, startTime)
	if err != nil {
		r.incCounter(SignupErrorsTotal)
		r.signupError(w, err)
		return
	}

	r.incCounter(SignupSuccessTotal)
	r.writeJSON(w, http.StatusCreated, &dto.UserSignupResponseDTO{
		Message: fmt.Sprintf(MsgUserCreatedFormat, credential.ID),
		UserID:  credential.ID,
	})
}

func (r *Route) signupError(w http.ResponseWriter, err error) {
	var vErr *credvalidator.ValidationError
	switch {
	case errors.As(err, &vErr):
		r.writeJSON(w, http.StatusBadRequest, &dto.ErrorResponseDTO{
			Error:   ErrValidationFailed,
			Message: vErr.Message,
			Field:   vErr.Field,
			Reason:  string(vErr.Reason),
		})
	case errors.Is(err, userservice.ErrDuplicateUsername):
		r.errorResponse(w, http.StatusConflict, ErrFailedToRegisterUser, ErrUsernameTaken)
	case errors.Is(err, userservice.ErrStoreUnavailable):
		r.incCounterVec(StoreErrorsTotal, operationSignup)
		r.errorResponse(w, http.StatusServiceUnavailable, ErrFailedToRegisterUser, ErrServiceUnavailable)
	default:
		r.Logger.Error("Signup failed", "error", err)
		r.errorResponse(w, http.StatusInternalServerError, ErrFailedToRegisterUser, ErrInternal)
	}
}

// Login handles user login requests. Every rejection gets the same 401 body.
func (r *Route) Login(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		r.errorResponse(w, http.StatusMethodNotAllowed, ErrMethodNotAllowed, fmt.Sprintf("method %s not allowed", req.Method))
		r.incCounter(LoginFailedTotal)
		return
	}
	r.incCounter(LoginRequestsTotal)

	loginRequest := &dto.LoginRequestDTO{}
	if msg, ok := r.decode(w, req, loginRequest); !ok {
		r.errorResponse(w, http.StatusBadRequest, ErrInvalidRequestBody, msg)
		r.incCounter(LoginFailedTotal)
		return
	}

	startTime := time.Now()
	outcome, err := r.Authenticator.Authenticate(req.Context(), loginRequest.Username, loginRequest.Password)
	r.observe(LoginDurationSeconds, startTime)

	switch {
	case errors.Is(err, userservice.ErrStoreUnavailable):
		r.incCounter(LoginFailedTotal)
		r.incCounterVec(StoreErrorsTotal, operationLogin)
		r.errorResponse(w, http.StatusServiceUnavailable, ErrServiceUnavailable, ErrServiceUnavailable)
		return
	case err != nil:
		r.incCounter(LoginFailedTotal)
		r.Logger.Error("Login failed", "error", err)
		r.errorResponse(w, http.StatusInternalServerError, ErrInternal, ErrInternal)
		return
	case !outcome.Authenticated():
		r.incCounter(LoginFailedTotal)
		r.errorResponse(w, http.StatusUnauthorized, ErrInvalidCredentials, userservice.ErrAuthenticationRejected.Error())
		return
	}

	r.incCounter(LoginSuccessTotal)
	r.writeJSON(w, http.StatusOK, &dto.LoginResponseDTO{
		Message:  MsgLoginSuccessful,
		Username: outcome.Credential.Username,
	})
}

// Healthz pings the credential store.
func (r *Route) Healthz(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet)
		r.errorResponse(w, http.StatusMethodNotAllowed, ErrMethodNotAllowed, fmt.Sprintf("method %s not allowed", req.Method))
		return
	}

	if r.Health != nil {
		if err := r.Health.Ping(req.Context()); err != nil {
			r.Logger.Warn("Health check failed", "error", err)
			r.incCounterVec(StoreErrorsTotal, operationHealth)
			r.setGauge(StoreUp, 0)
			r.writeJSON(w, http.StatusServiceUnavailable, &dto.HealthResponseDTO{Status: MsgUnhealthy})
			return
		}
	}
	r.setGauge(StoreUp, 1)
	r.writeJSON(w, http.StatusOK, &dto.HealthResponseDTO{Status: MsgHealthy})
}

// decode checks the content type, decodes the JSON body into v and runs the
// struct validation. On failure it returns a client-safe message.
func (r *Route) decode(w http.ResponseWriter, req *http.Request, v any) (string, bool) {
	mediaType := strings.TrimSpace(strings.Split(req.Header.Get(ContentType), ";")[0])
	if mediaType != ContentTypeJson {
		return fmt.Sprintf(ErrInvalidContentTypeFormat, req.Header.Get(ContentType)), false
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return ErrInvalidRequestBody, false
	}

	if err := r.validator.Struct(v); err != nil {
		var errs structValidator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.ToLower(errs[0].Field())), false
		}
		return ErrValidationFailed, false
	}

	return "", true
}

func (r *Route) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		r.Logger.Error("Failed to encode response", "error", err)
	}
}

func (r *Route) errorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	r.writeJSON(w, status, &dto.ErrorResponseDTO{
		Error:   errMsg,
		Message: message,
	})
}

func (r *Route) incCounter(name string) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(name)
	}
}

func (r *Route) incCounterVec(name string, labels ...string) {
	if r.Metrics != nil {
		r.Metrics.IncCounterVec(name, labels...)
	}
}

func (r *Route) observe(name string, start time.Time) {
	if r.Metrics != nil {
		r.Metrics.ObserveHistogram(name, time.Since(start).Seconds())
	}
}

func (r *Route) setGauge(name string, value float64) {
	if r.Metrics != nil {
		r.Metrics.SetGauge(name, value)
	}
}
