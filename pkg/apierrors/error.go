package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"taskdesk/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr is the error envelope returned by the board API.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code and message.
type Err struct {
	Code    int    `json:"statusCode"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// FromResponse decodes an error body. When the body is not an envelope the
// status code and its text are used.
func FromResponse(status int, body []byte) JsonErr {
	var jsonErr JsonErr
	if err := json.Unmarshal(body, &jsonErr); err != nil {
		jsonErr = JsonErr{}
	}
	if jsonErr.ErrDetails.Code == 0 {
		jsonErr.ErrDetails.Code = status
	}
	if jsonErr.ErrDetails.Message == "" {
		jsonErr.ErrDetails.Message = http.StatusText(status)
	}
	return jsonErr
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var jsonErr JsonErr
	if errors.As(err, &jsonErr) {
		return jsonErr.ErrDetails.Code
	}
	return 0
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	message := GetTransErrorMsg(msgKey, lang)
	return JsonErr{ErrDetails: Err{code, message}}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	if translator.Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
