package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"ai-studio-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			"validation maps to 400",
			apperror.NewValidation("instruction must not be empty"),
			fiber.StatusBadRequest,
			"instruction must not be empty",
		},
		{
			"service maps to 502",
			apperror.NewService("generate", "transform failed", errors.New("quota exceeded")),
			fiber.StatusBadGateway,
			"generate: transform failed: quota exceeded",
		},
		{
			"fiber error keeps its code",
			fiber.NewError(fiber.StatusNotFound, "unknown or released handle"),
			fiber.StatusNotFound,
			"unknown or released handle",
		},
		{
			"anything else maps to 500",
			errors.New("boom"),
			fiber.StatusInternalServerError,
			"internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/boom", func(*fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ResponseEnvelope[any]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantStatus, body.Code)
		})
	}
}
