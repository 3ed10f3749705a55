package handler

import (
	"errors"
	"net/http"

	"storefront/internal/middleware"
	auth "storefront/internal/usecase/auth_usecase"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	loginUC   *auth.LoginUsecase
	sessionUC *auth.SessionUsecase
}

// DI
func NewAuthHandler(loginUC *auth.LoginUsecase, sessionUC *auth.SessionUsecase) *AuthHandler {
	return &AuthHandler{loginUC: loginUC, sessionUC: sessionUC}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRoutes puts login on e and the signed-in routes on the guarded admin group.
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, admin *echo.Group) {
	e.POST("/admin/login", h.login)
	admin.POST("/logout", h.logout)
	admin.GET("/session", h.session)
}

func (h *AuthHandler) login(c echo.Context) error {
	//リクエストをbindして入力チェック
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := validator.ValidateLogin(req.Email, req.Password); err != nil {
		return writeError(c, err)
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	//usecaseのエラーをHTTPステータスに変換
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, out)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, auth.ErrUserInactive):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "user is inactive"})
	default:
		return writeError(c, err)
	}
}

// logout bumps the token version; the token used for this call stops working too.
func (h *AuthHandler) logout(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	//token_versionを上げて全トークンを失効させる
	if err := h.sessionUC.Logout(c.Request().Context(), userID); err != nil {
		if errors.Is(err, auth.ErrSessionGone) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "logged out"})
}

func (h *AuthHandler) session(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	user, err := h.sessionUC.Me(c.Request().Context(), userID)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, user)
	case errors.Is(err, auth.ErrSessionGone):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, auth.ErrUserInactive):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "user is inactive"})
	default:
		return writeError(c, err)
	}
}
