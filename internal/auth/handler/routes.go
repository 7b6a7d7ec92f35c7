package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("api/v1/register", h.Register)
	app.Post("api/v1/login", h.Login)
	app.Post("api/v1/refresh", h.Refresh)
	app.Get("api/v1/me", h.Me)
	app.Patch("api/v1/profile", h.UpdateProfile)
	app.Post("api/v1/change-password", h.ChangePassword)
	app.Post("api/v1/password-reset/request", h.RequestPasswordReset)
	app.Post("api/v1/password-reset/confirm", h.ConfirmPasswordReset)
}
