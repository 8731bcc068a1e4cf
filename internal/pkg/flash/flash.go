package flash

import (
	"github.com/gofiber/fiber/v2"
	cookieflash "github.com/sujit-baniya/flash"
)

// Flash message key in request locals
const FlashKey = "flash"

// Set sets a flash message for the current request only
func Set(c *fiber.Ctx, message fiber.Map) {
	c.Locals(FlashKey, message)
}

// Get returns the flash message of the current request, falling back to one
// carried over a redirect in the flash cookie
func Get(c *fiber.Ctx) fiber.Map {
	if msg, ok := c.Locals(FlashKey).(fiber.Map); ok {
		return msg
	}
	if msg := cookieflash.Get(c); len(msg) > 0 {
		return msg
	}
	return nil
}

// RedirectWithError stores an error notice in the flash cookie and redirects
func RedirectWithError(c *fiber.Ctx, location, message string) error {
	return cookieflash.WithError(c, fiber.Map{
		"type":    "error",
		"message": message,
	}).Redirect(location)
}

// RedirectWithSuccess stores a success notice in the flash cookie and redirects
func RedirectWithSuccess(c *fiber.Ctx, location, message string) error {
	return cookieflash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": message,
	}).Redirect(location)
}
