package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var ErrInvalidContentType = errors.New("invalid content type")

// DecodeJSONBody checks the request is application/json and decodes its body into dst.
func DecodeJSONBody(r *http.Request, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != ContentType.JSON {
		return ErrInvalidContentType
	}
	if r.Body == nil {
		return errors.New("empty request body")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid json body: %w", err)
	}
	return nil
}

// PathID returns the {name} path variable if it is a valid uuid.
func PathID(r *http.Request, name string) (string, bool) {
	id := mux.Vars(r)[name]
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// IsDeleteConfirmed reports whether the request confirms a delete with
// ?confirm=true or the X-Confirm header.
func IsDeleteConfirmed(r *http.Request) bool {
	return IsConfirmed(r.URL.Query().Get("confirm"), r.Header.Get("X-Confirm"))
}
