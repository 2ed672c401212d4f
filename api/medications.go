package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/LuizaMunis/HealthCare-sub000/medications"
)

// (POST /api/medicamentos)
func (h *Handler) CreateMedication(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	create := &medications.MedicationPayload{}
	if err := bindBody(c, create); err != nil {
		return err
	}

	medication, err := h.medications.CreateMedication(c.Request().Context(), userId, create)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, medication)
}

// (GET /api/medicamentos)
func (h *Handler) ListMedications(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	list, err := h.medications.ListMedications(c.Request().Context(), userId, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// (GET /api/medicamentos/:id)
func (h *Handler) GetMedication(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	medication, err := h.medications.GetMedication(c.Request().Context(), userId, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, medication)
}

// (PUT /api/medicamentos/:id)
func (h *Handler) UpdateMedication(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	patch := &medications.MedicationPayload{}
	if err := bindBody(c, patch); err != nil {
		return err
	}

	medication, err := h.medications.UpdateMedication(c.Request().Context(), userId, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, medication)
}

// (DELETE /api/medicamentos/:id)
func (h *Handler) DeleteMedication(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	if err := h.medications.DeleteMedication(c.Request().Context(), userId, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// (POST /api/medicamentos/:id/registros)
func (h *Handler) CreateUseLog(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	medicationId, err := pathId(c, "id")
	if err != nil {
		return err
	}

	create := &medications.UseLogPayload{}
	if err := bindBody(c, create); err != nil {
		return err
	}

	log, err := h.medications.CreateUseLog(c.Request().Context(), userId, medicationId, create)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, log)
}

// (GET /api/medicamentos/:id/registros)
func (h *Handler) ListUseLogs(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	medicationId, err := pathId(c, "id")
	if err != nil {
		return err
	}

	list, err := h.medications.ListUseLogs(c.Request().Context(), userId, medicationId, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// (GET /api/registros-uso/:id)
func (h *Handler) GetUseLog(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	log, err := h.medications.GetUseLog(c.Request().Context(), userId, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, log)
}

// (PUT /api/registros-uso/:id)
func (h *Handler) UpdateUseLog(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	patch := &medications.UseLogPayload{}
	if err := bindBody(c, patch); err != nil {
		return err
	}

	log, err := h.medications.UpdateUseLog(c.Request().Context(), userId, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, log)
}

// (DELETE /api/registros-uso/:id)
func (h *Handler) DeleteUseLog(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	if err := h.medications.DeleteUseLog(c.Request().Context(), userId, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
