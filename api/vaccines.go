package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/LuizaMunis/HealthCare-sub000/vaccines"
)

// (POST /api/vacinas)
func (h *Handler) CreateVaccine(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	create := &vaccines.VaccinePayload{}
	if err := bindBody(c, create); err != nil {
		return err
	}

	vaccine, err := h.vaccines.Create(c.Request().Context(), userId, create)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, vaccine)
}

// (GET /api/vacinas)
func (h *Handler) ListVaccines(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	list, err := h.vaccines.List(c.Request().Context(), userId, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// (GET /api/vacinas/:id)
func (h *Handler) GetVaccine(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	vaccine, err := h.vaccines.Get(c.Request().Context(), userId, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vaccine)
}

// (PUT /api/vacinas/:id)
func (h *Handler) UpdateVaccine(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	patch := &vaccines.VaccinePayload{}
	if err := bindBody(c, patch); err != nil {
		return err
	}

	vaccine, err := h.vaccines.Update(c.Request().Context(), userId, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vaccine)
}

// (DELETE /api/vacinas/:id)
func (h *Handler) DeleteVaccine(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	if err := h.vaccines.Delete(c.Request().Context(), userId, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
