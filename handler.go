package signup

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"golang.org/x/text/language"
)

// RegisterUserHandler serves POST /api/1.0/users. Any "inactive" member in
// the request body is never decoded, so callers cannot create active
// accounts.
func RegisterUserHandler(svc Service, res *Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locale := NegotiateLocale(r.Header.Get("Accept-Language"))

		req, err := decodeRegisterUserRequest(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if _, err := svc.Register(req); err != nil {
			encodeError(err, res, locale, w)
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message": res.Resolve(CodeUserCreateSuccess, locale),
		}); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
}

// encodeError is the single place internal errors become HTTP responses;
// nothing below the handler leaks out verbatim.
func encodeError(err error, res *Resolver, locale language.Tag, w http.ResponseWriter) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		w.WriteHeader(http.StatusBadRequest)
		validationErrors := make(map[string]string, len(ve.Fields))
		for field, code := range ve.Fields {
			validationErrors[field] = res.Resolve(code, locale)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"validationErrors": validationErrors,
		})
	case errors.Is(err, ErrNotification):
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message": res.Resolve(CodeEmailFailure, locale),
		})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message": "internal server error",
		})
	}
}

func decodeRegisterUserRequest(body io.Reader) (registerUserRequest, error) {
	req := registerUserRequest{}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return registerUserRequest{}, err
	}
	return req, nil
}
