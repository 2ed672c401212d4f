package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/LuizaMunis/HealthCare-sub000/profiles"
)

// (POST /api/perfil)
func (h *Handler) CreateProfile(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	create := &profiles.NewProfile{}
	if err := bindBody(c, create); err != nil {
		return err
	}

	profile, err := h.profiles.Create(c.Request().Context(), userId, create)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, profile)
}

// (GET /api/perfil)
func (h *Handler) GetProfile(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.GetByUserId(c.Request().Context(), userId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// (PUT /api/perfil)
func (h *Handler) UpdateProfile(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	patch := &profiles.ProfileUpdate{}
	if err := bindBody(c, patch); err != nil {
		return err
	}

	profile, err := h.profiles.Update(c.Request().Context(), userId, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// (DELETE /api/perfil)
func (h *Handler) DeleteProfile(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	if err := h.profiles.Delete(c.Request().Context(), userId); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// (GET /api/perfil/imc)
func (h *Handler) GetBodyMassIndex(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	report, err := h.profiles.BodyMassIndex(c.Request().Context(), userId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}
