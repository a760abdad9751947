package rayid_test

import (
	"net/http/httptest"
	"testing"

	"line-checker/core/logger"
	"line-checker/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(logger.RayIDKey).(string))
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		rid := resp.Header.Get(rayid.HeaderName)
		_, err = uuid.Parse(rid)
		assert.NoError(t, err)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.HeaderName, "client-supplied")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "client-supplied", resp.Header.Get(rayid.HeaderName))
	})
}
