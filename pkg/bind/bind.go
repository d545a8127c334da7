// Package bind decodes a JSON request body into a struct. Field rules are
// checked by the caller with pkg/validate.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/morehouse/pizzashack/config"
)

// JSON decodes r.Body into dest. It fails when the body is malformed or
// larger than MAX_BODY_BYTES. An empty body decodes as {}.
func JSON(r *http.Request, dest interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, config.MaxBodyBytes())

	err := json.NewDecoder(body).Decode(dest)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
	}
	return fmt.Errorf("invalid JSON: %w", err)
}
