package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/LuizaMunis/HealthCare-sub000/conditions"
)

// (POST /api/doencas)
func (h *Handler) CreateCondition(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	create := &conditions.ConditionPayload{}
	if err := bindBody(c, create); err != nil {
		return err
	}

	condition, err := h.conditions.CreateCondition(c.Request().Context(), userId, create)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, condition)
}

// (GET /api/doencas)
func (h *Handler) ListConditions(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	list, err := h.conditions.ListConditions(c.Request().Context(), userId, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// (GET /api/doencas/:id)
func (h *Handler) GetCondition(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	condition, err := h.conditions.GetCondition(c.Request().Context(), userId, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, condition)
}

// (PUT /api/doencas/:id)
func (h *Handler) UpdateCondition(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	patch := &conditions.ConditionPayload{}
	if err := bindBody(c, patch); err != nil {
		return err
	}

	condition, err := h.conditions.UpdateCondition(c.Request().Context(), userId, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, condition)
}

// (DELETE /api/doencas/:id)
func (h *Handler) DeleteCondition(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	if err := h.conditions.DeleteCondition(c.Request().Context(), userId, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// (POST /api/doencas/:id/sintomas)
func (h *Handler) CreateSymptom(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	conditionId, err := pathId(c, "id")
	if err != nil {
		return err
	}

	create := &conditions.SymptomPayload{}
	if err := bindBody(c, create); err != nil {
		return err
	}

	symptom, err := h.conditions.CreateSymptom(c.Request().Context(), userId, conditionId, create)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, symptom)
}

// (GET /api/doencas/:id/sintomas)
func (h *Handler) ListSymptoms(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	conditionId, err := pathId(c, "id")
	if err != nil {
		return err
	}

	list, err := h.conditions.ListSymptoms(c.Request().Context(), userId, conditionId, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// (GET /api/sintomas/:id)
func (h *Handler) GetSymptom(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	symptom, err := h.conditions.GetSymptom(c.Request().Context(), userId, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, symptom)
}

// (PUT /api/sintomas/:id)
func (h *Handler) UpdateSymptom(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	patch := &conditions.SymptomPayload{}
	if err := bindBody(c, patch); err != nil {
		return err
	}

	symptom, err := h.conditions.UpdateSymptom(c.Request().Context(), userId, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, symptom)
}

// (DELETE /api/sintomas/:id)
func (h *Handler) DeleteSymptom(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	if err := h.conditions.DeleteSymptom(c.Request().Context(), userId, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
