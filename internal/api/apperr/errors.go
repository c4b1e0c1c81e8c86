package apperr

import (
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"
)

func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	WriteStatus(w, r, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, r *http.Request, message string) {
	WriteStatus(w, r, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, r *http.Request, message string) {
	WriteStatus(w, r, http.StatusConflict, message)
}

// Internal logs err against the request and writes a generic 500. The error
// text never reaches the client.
func Internal(w http.ResponseWriter, r *http.Request, err error, message string) {
	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg(message)
	WriteStatus(w, r, http.StatusInternalServerError, message)
}

// Decode reports a request body that could not be decoded.
func Decode(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteStatus(w, r, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	BadRequest(w, r, "invalid JSON body")
}

// Validation writes a 400 listing every failed field. Non-validation errors
// fall back to a plain 400 with the error text.
func Validation(w http.ResponseWriter, r *http.Request, err error) {
	var errs validation.Errors
	if !errors.As(err, &errs) || len(errs) == 0 {
		BadRequest(w, r, err.Error())
		return
	}

	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	p := Problem{Status: http.StatusBadRequest}
	for _, f := range fields {
		fe := FieldError{Field: f, Code: "invalid", Message: errs[f].Error()}
		var ve validation.Error
		if errors.As(errs[f], &ve) && ve.Code() == validation.ErrRequired.Code() {
			fe.Code = "required"
		}
		p.FieldErrors = append(p.FieldErrors, fe)
	}
	// first field message doubles as the summary
	p.Message = p.FieldErrors[0].Message
	Write(w, r, p)
}
