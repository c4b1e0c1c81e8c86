package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type messageBody struct {
	Message string `json:"message"`
}

type createdBody struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v as a 200 body.
func OK(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, v)
}

// Message writes {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, messageBody{Message: msg})
}

// Created writes 201 {"id": id, "message": msg}.
func Created(w http.ResponseWriter, id int64, msg string) {
	WriteJSON(w, http.StatusCreated, createdBody{ID: id, Message: msg})
}

var ErrTrailingData = errors.New("request body must contain a single JSON object")

// DecodeJSON reads exactly one JSON value from the body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return ErrTrailingData
	}
	return nil
}
