package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/LuizaMunis/HealthCare-sub000/users"
)

// RegisterUser is the only unauthenticated route besides the readiness probe.
// (POST /api/usuarios/registrar)
func (h *Handler) RegisterUser(c echo.Context) error {
	create := &users.NewUser{}
	if err := bindBody(c, create); err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), create)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// (GET /api/usuarios/me)
func (h *Handler) GetCurrentUser(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	user, err := h.users.Get(c.Request().Context(), userId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}
