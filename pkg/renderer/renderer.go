package renderer

import (
	"net/http"

	"dreach.in/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Render renders view inside layout. status defaults to 200 when omitted.
func Render(c *fiber.Ctx, view string, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	if err := c.Status(code).Render(view, data, layout); err != nil {
		configslog.Log.Error("Template render failed", zap.String("view", view), zap.String("layout", layout), zap.Error(err))
		return c.Status(http.StatusInternalServerError).SendString("page could not be rendered")
	}
	return nil
}
