package middleware

import (
	"errors"

	"laborlink/internal/pkg/logging"
	"laborlink/internal/pkg/response"

	goerrors "github.com/go-errors/errors"
	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
	Stack      []byte
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewAppError records the call stack for server errors so the error
// middleware can log where they surfaced.
func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	e := &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
	if statusCode >= 500 {
		if cause != nil {
			e.Stack = goerrors.Wrap(cause, 1).Stack()
		} else {
			e.Stack = goerrors.New(message).Stack()
		}
	}
	return e
}

type ErrorMiddleware struct {
	logger *logging.Logger
}

func NewErrorMiddleware(logger *logging.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				perr := goerrors.Wrap(r, 2)
				m.logger.Error("panic recovered",
					"method", c.Method(),
					"path", c.Path(),
					"panic", perr.Error(),
					"stack", string(perr.Stack()),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= 500 {
			m.logServerError(c, err)
		}
		return response.Error(c, status, msg, data)
	}
}

func (m *ErrorMiddleware) logServerError(c fiber.Ctx, err error) {
	kv := []any{"method", c.Method(), "path", c.Path(), "err", err.Error()}
	var appErr *AppError
	if errors.As(err, &appErr) && len(appErr.Stack) > 0 {
		kv = append(kv, "stack", string(appErr.Stack))
	}
	m.logger.Error("request failed", kv...)
}

// normalizeError hides the detail of every 5xx response.
func normalizeError(err error) (int, string, any) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		return status, msg, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			if status == fiber.StatusServiceUnavailable {
				return status, response.MessageServiceUnavailable, nil
			}
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		return status, msg, nil
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}
