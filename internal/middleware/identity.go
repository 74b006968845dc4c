package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// contextUserID returns a printable identifier for the authenticated user,
// or "anon" for guests. JWTAuth stores the raw "sub" claim, whose concrete
// type depends on the JSON decoder, so this stringifies whatever is there.
func contextUserID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "anon"
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return "anon"
		}
		return s
	}
	return fmt.Sprint(v)
}
