// Package response writes the JSON envelopes every handler answers with:
// {"data": ...} on success, {"error": "..."} on failure, {"message": "..."} otherwise.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
)

const internalErrorMessage = "internal server error"

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError answers with the failure's status and message. Errors that are not
// failures become a 500 whose cause is logged rather than sent.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	message := err.Error()

	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)

		message = internalErrorMessage
	}

	write(writer, code, Error{Error: &message})
}

// WithTracedError marks the handler span as failed, logs msg and answers like WithError.
// Client errors log at warn level.
func WithTracedError(writer http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)

	event := log.Warn()
	if failure.GetCode(err) >= http.StatusInternalServerError {
		event = log.Error()
	}

	event.Err(err).Msg(msg)

	WithError(writer, err)
}

// WithFile streams content as a download named fileName.
func WithFile(writer http.ResponseWriter, contentType, fileName string, content []byte) {
	header := writer.Header()
	header.Set(constant.RequestHeaderContentType, contentType)
	header.Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	header.Set(constant.RequestHeaderContentLength, strconv.Itoa(len(content)))

	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(content); err != nil {
		logger.ErrorWithStack(err)
	}
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
