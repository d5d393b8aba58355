package cli

import (
	"errors"
	"net/http"
	"strings"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/validation"
	"taskdesk/pkg/apierrors"
	"taskdesk/pkg/translator"
)

// actionError tags a failure with the message key of the action that failed.
type actionError struct {
	msgKey string
	err    error
}

func (e *actionError) Error() string { return e.msgKey + ": " + e.err.Error() }
func (e *actionError) Unwrap() error { return e.err }

func failed(msgKey string, err error) error {
	if err == nil {
		return nil
	}
	return &actionError{msgKey: msgKey, err: err}
}

// describeError turns err into a message for the user in lang.
func describeError(err error, lang string) string {
	var fieldErrs []string
	for _, e := range flatten(err) {
		var fieldErr *validation.FieldError
		if errors.As(e, &fieldErr) {
			fieldErrs = append(fieldErrs, fieldErr.Field+": "+apierrors.GetTransErrorMsg(fieldErr.Message, lang))
		}
	}
	if len(fieldErrs) > 0 {
		return strings.Join(fieldErrs, "; ")
	}

	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return apierrors.GetTransErrorMsg(apierrors.MsgTaskNotFound, lang)
	case errors.Is(err, domain.ErrColumnNotFound):
		return apierrors.GetTransErrorMsg(apierrors.MsgColumnNotFound, lang)
	case errors.Is(err, domain.ErrUnauthorized):
		return apierrors.GetTransErrorMsg(apierrors.MsgUnauthorized, lang)
	case errors.Is(err, domain.ErrForbidden):
		return apierrors.GetTransErrorMsg(apierrors.MsgForbidden, lang)
	case errors.Is(err, validation.ErrInvalidTaskPayload):
		return apierrors.GetTransErrorMsg(apierrors.MsgInvalidTaskPayload, lang)
	}

	switch apierrors.StatusCode(err) {
	case http.StatusUnauthorized:
		return apierrors.GetTransErrorMsg(apierrors.MsgUnauthorized, lang)
	case http.StatusForbidden:
		return apierrors.GetTransErrorMsg(apierrors.MsgForbidden, lang)
	}

	var action *actionError
	if errors.As(err, &action) {
		msg := apierrors.GetTransErrorMsg(action.msgKey, lang)
		var jsonErr apierrors.JsonErr
		if errors.As(err, &jsonErr) {
			return msg + ": " + jsonErr.ErrDetails.Message
		}
		return msg
	}
	return err.Error()
}

func flatten(err error) []error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			return joined.Unwrap()
		}
	}
	return []error{err}
}

func batchSummary(updated, skipped, failedCount int, lang string) string {
	return translator.Localize(lang, apierrors.MsgBatchPartial, map[string]any{
		"Updated": updated,
		"Skipped": skipped,
		"Failed":  failedCount,
	})
}
