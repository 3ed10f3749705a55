package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CartSessionCookie = "me_cart_session"
	CartSessionHeader = "X-Cart-Session"
	CtxCartSessionKey = "cart_session"

	cartSessionMaxAge = 365 * 24 * 60 * 60
)

// CartSession gives every visitor a stable cart id. The X-Cart-Session header
// wins over the cookie; a missing or malformed id gets a fresh cookie.
func CartSession(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//ヘッダ優先(クッキーを送れないクライアント向け)
			if id, ok := validSessionID(c.Request().Header.Get(CartSessionHeader)); ok {
				c.Set(CtxCartSessionKey, id)
				return next(c)
			}

			//次にクッキー
			if ck, err := c.Cookie(CartSessionCookie); err == nil {
				if id, ok := validSessionID(ck.Value); ok {
					c.Set(CtxCartSessionKey, id)
					return next(c)
				}
			}

			//無い、または壊れている場合は新しいidを発行する
			id := uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     CartSessionCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   cartSessionMaxAge,
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(CtxCartSessionKey, id)
			return next(c)
		}
	}
}

func CartSessionID(c echo.Context) string {
	id, _ := c.Get(CtxCartSessionKey).(string)
	return id
}

func validSessionID(s string) (string, bool) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return u.String(), true
}
