// Package httpcall normalizes remote HTTP call outcomes. Every remote-backed
// repository method routes through Do so failure messages stay uniform.
package httpcall

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNilBody reports a 2xx response without a usable body. A success status
// with nothing to decode is a protocol violation, not an empty result.
var ErrNilBody = errors.New("Response body is null")

// StatusError carries a non-2xx response normalized into a diagnostic message.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// Do executes the request and decodes a JSON body into T.
//
//   - transport errors are returned wrapped;
//   - a non-2xx status yields a StatusError whose message is the error body
//     text when non-empty, otherwise "Error Code: <status>";
//   - a 2xx status with an empty or null body yields ErrNilBody;
//   - a 2xx status with a body yields the decoded value.
func Do[T any](ctx context.Context, client *http.Client, req *http.Request) (*T, error) {
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("remote call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := string(bytes.TrimSpace(body))
		if message == "" {
			message = fmt.Sprintf("Error Code: %d", resp.StatusCode)
		}
		return nil, &StatusError{Code: resp.StatusCode, Message: message}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrNilBody
	}

	var value T
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return &value, nil
}
