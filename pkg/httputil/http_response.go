package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

const maxBodySize = 1 << 20

var ErrEmptyBody = errors.New("empty request body")

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// DecodeJSON reads at most 1 MiB of the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	return err
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
