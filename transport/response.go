package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/satriawidya/bloodlink/constant"
	"github.com/satriawidya/bloodlink/utils/errors"
)

type response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	var customErr errors.CustomError
	if !stderrors.As(err, &customErr) {
		customErr = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(customErr.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(response{
		Code:    customErr.ErrorCode(),
		Message: customErr.Error(),
	})
}
