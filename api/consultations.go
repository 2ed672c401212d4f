package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/LuizaMunis/HealthCare-sub000/consultations"
)

// (POST /api/consultas)
func (h *Handler) CreateConsultation(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	create := &consultations.ConsultationPayload{}
	if err := bindBody(c, create); err != nil {
		return err
	}

	consultation, err := h.consultations.Create(c.Request().Context(), userId, create)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, consultation)
}

// (GET /api/consultas)
func (h *Handler) ListConsultations(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	list, err := h.consultations.List(c.Request().Context(), userId, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// (GET /api/consultas/:id)
func (h *Handler) GetConsultation(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	consultation, err := h.consultations.Get(c.Request().Context(), userId, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, consultation)
}

// (PUT /api/consultas/:id)
func (h *Handler) UpdateConsultation(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	patch := &consultations.ConsultationPayload{}
	if err := bindBody(c, patch); err != nil {
		return err
	}

	consultation, err := h.consultations.Update(c.Request().Context(), userId, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, consultation)
}

// (DELETE /api/consultas/:id)
func (h *Handler) DeleteConsultation(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	if err := h.consultations.Delete(c.Request().Context(), userId, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
