// Package httpx exposes use cases over HTTP.
package httpx

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"

	"github.com/8SOAT-Team/use-case-lib/pkg/option"
	"github.com/8SOAT-Team/use-case-lib/usecase"
)

// Set a Decoder instance as a package global, because it caches
// meta-data about structs, and an instance can be shared safely.
var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)

	return d
}()

// DecodeFunc decodes a command from a request.
type DecodeFunc[C any] func(r *http.Request) (C, error)

// DecodeQuery decodes a command from the query string and the route variables.
// Route variables take precedence over query parameters.
func DecodeQuery[C any](r *http.Request) (C, error) {
	var command C

	values := r.URL.Query()
	for k, v := range mux.Vars(r) {
		values.Set(k, v)
	}

	err := decoder.Decode(&command, values)

	return command, err
}

// DecodeJSON decodes a command from a JSON request body.
func DecodeJSON[C any](r *http.Request) (C, error) {
	var command C

	err := json.NewDecoder(r.Body).Decode(&command)

	return command, err
}

// ErrorResponse is the body written when a use case recorded errors.
type ErrorResponse struct {
	Errors []usecase.Error `json:"errors"`
}

type response struct {
	status int
	body   any
}

// Handler runs a fresh use case for every request.
//
// A present result is written as JSON with 200, an absent one as 204.
// When errors were recorded, the status follows the kind of the first error.
func Handler[C, O any](factory usecase.Factory[C, O], decode DecodeFunc[C]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		command, err := decode(r)
		if err != nil {
			writeErrors(w, []usecase.Error{usecase.NewError(usecase.BadRequest, err.Error())})

			return
		}

		uc := factory()

		result, err := uc.Run(r.Context(), command)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Errors: uc.Errors()})

			return
		}

		if uc.IsFailure() {
			writeErrors(w, uc.Errors())

			return
		}

		resp := option.Match(result,
			func(v O) response { return response{status: http.StatusOK, body: v} },
			func() response { return response{status: http.StatusNoContent} },
		)

		writeJSON(w, resp.status, resp.body)
	})
}

func writeErrors(w http.ResponseWriter, errs []usecase.Error) {
	writeJSON(w, StatusFor(errs[0].Kind), ErrorResponse{Errors: errs})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	if body == nil {
		w.WriteHeader(status)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
