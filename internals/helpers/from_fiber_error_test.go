// file: internals/helpers/from_fiber_error_test.go
package helper

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFiberErrorAsErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: FromFiberError})
	app.Get("/fiber-err", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid signature")
	})
	app.Get("/plain-err", func(c *fiber.Ctx) error {
		return errors.New("koneksi putus")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fiber-err", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"error"`)
	assert.Contains(t, string(body), "invalid signature")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/plain-err", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "koneksi putus")
}
