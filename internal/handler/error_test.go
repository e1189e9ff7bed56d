package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name              string
		build             func() error
		expectedErrorCode string
		expectedMessage   string
	}{
		{
			name:              "request error wraps binding failure",
			build:             func() error { return GetRequestError(errors.New("invalid request format")) },
			expectedErrorCode: "E101",
			expectedMessage:   "invalid request format",
		},
		{
			name:              "request error keeps empty message",
			build:             func() error { return GetRequestError(errors.New("")) },
			expectedErrorCode: "E101",
			expectedMessage:   "",
		},
		{
			name:              "internal error wraps transport failure",
			build:             func() error { return GetInternalError(errors.New("dial tcp: connection refused")) },
			expectedErrorCode: "E102",
			expectedMessage:   "dial tcp: connection refused",
		},
		{
			name:              "channel error wraps lookup failure",
			build:             func() error { return GetChannelError(errors.New("not supported notification channel: telegram")) },
			expectedErrorCode: "E103",
			expectedMessage:   "not supported notification channel: telegram",
		},
		{
			name:              "delivery error names the channel",
			build:             func() error { return GetDeliveryError("serverchan") },
			expectedErrorCode: "E104",
			expectedMessage:   "notification was not accepted by serverchan",
		},
		{
			name:              "preserves special characters",
			build:             func() error { return GetInternalError(errors.New("special characters: !@#$%^&*()")) },
			expectedErrorCode: "E102",
			expectedMessage:   "special characters: !@#$%^&*()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.build()

			errorHandler, ok := result.(*ErrorHandler)
			require.True(t, ok, "Expected result to be *ErrorHandler")

			assert.Equal(t, tt.expectedErrorCode, errorHandler.ErrorCode)
			assert.Equal(t, tt.expectedMessage, errorHandler.Message)
		})
	}
}

func TestErrorHandler_Error(t *testing.T) {
	tests := []struct {
		name           string
		errorCode      string
		message        string
		expectedString string
	}{
		{
			name:           "formats E101 error correctly",
			errorCode:      "E101",
			message:        "invalid request",
			expectedString: "error code: E101, message: invalid request",
		},
		{
			name:           "formats E104 error correctly",
			errorCode:      "E104",
			message:        "notification was not accepted by serverchan",
			expectedString: "error code: E104, message: notification was not accepted by serverchan",
		},
		{
			name:           "formats error with empty message",
			errorCode:      "E102",
			message:        "",
			expectedString: "error code: E102, message: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error = &ErrorHandler{
				ErrorCode: tt.errorCode,
				Message:   tt.message,
			}

			assert.Equal(t, tt.expectedString, err.Error())
		})
	}
}
