package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/LuizaMunis/HealthCare-sub000/measurements"
)

// (POST /api/pressao-arterial)
func (h *Handler) CreateBloodPressure(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	create := &measurements.BloodPressurePayload{}
	if err := bindBody(c, create); err != nil {
		return err
	}

	reading, err := h.measurements.CreateBloodPressure(c.Request().Context(), userId, create)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reading)
}

// (GET /api/pressao-arterial)
func (h *Handler) ListBloodPressure(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	list, err := h.measurements.ListBloodPressure(c.Request().Context(), userId, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// (GET /api/pressao-arterial/relatorio)
func (h *Handler) GetBloodPressureReport(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	report, err := h.measurements.BloodPressureReport(c.Request().Context(), userId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}

// (GET /api/pressao-arterial/:id)
func (h *Handler) GetBloodPressure(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	reading, err := h.measurements.GetBloodPressure(c.Request().Context(), userId, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reading)
}

// (PUT /api/pressao-arterial/:id)
func (h *Handler) UpdateBloodPressure(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	patch := &measurements.BloodPressurePayload{}
	if err := bindBody(c, patch); err != nil {
		return err
	}

	reading, err := h.measurements.UpdateBloodPressure(c.Request().Context(), userId, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reading)
}

// (DELETE /api/pressao-arterial/:id)
func (h *Handler) DeleteBloodPressure(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	if err := h.measurements.DeleteBloodPressure(c.Request().Context(), userId, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// (POST /api/frequencia-cardiaca)
func (h *Handler) CreateHeartRate(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	create := &measurements.HeartRatePayload{}
	if err := bindBody(c, create); err != nil {
		return err
	}

	reading, err := h.measurements.CreateHeartRate(c.Request().Context(), userId, create)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reading)
}

// (GET /api/frequencia-cardiaca)
func (h *Handler) ListHeartRate(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	list, err := h.measurements.ListHeartRate(c.Request().Context(), userId, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// (GET /api/frequencia-cardiaca/:id)
func (h *Handler) GetHeartRate(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	reading, err := h.measurements.GetHeartRate(c.Request().Context(), userId, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reading)
}

// (PUT /api/frequencia-cardiaca/:id)
func (h *Handler) UpdateHeartRate(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	patch := &measurements.HeartRatePayload{}
	if err := bindBody(c, patch); err != nil {
		return err
	}

	reading, err := h.measurements.UpdateHeartRate(c.Request().Context(), userId, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reading)
}

// (DELETE /api/frequencia-cardiaca/:id)
func (h *Handler) DeleteHeartRate(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	if err := h.measurements.DeleteHeartRate(c.Request().Context(), userId, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// (POST /api/temperatura)
func (h *Handler) CreateTemperature(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	create := &measurements.TemperaturePayload{}
	if err := bindBody(c, create); err != nil {
		return err
	}

	reading, err := h.measurements.CreateTemperature(c.Request().Context(), userId, create)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reading)
}

// (GET /api/temperatura)
func (h *Handler) ListTemperature(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}

	list, err := h.measurements.ListTemperature(c.Request().Context(), userId, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// (GET /api/temperatura/:id)
func (h *Handler) GetTemperature(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	reading, err := h.measurements.GetTemperature(c.Request().Context(), userId, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reading)
}

// (PUT /api/temperatura/:id)
func (h *Handler) UpdateTemperature(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	patch := &measurements.TemperaturePayload{}
	if err := bindBody(c, patch); err != nil {
		return err
	}

	reading, err := h.measurements.UpdateTemperature(c.Request().Context(), userId, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reading)
}

// (DELETE /api/temperatura/:id)
func (h *Handler) DeleteTemperature(c echo.Context) error {
	userId, err := authUserId(c)
	if err != nil {
		return err
	}
	id, err := pathId(c, "id")
	if err != nil {
		return err
	}

	if err := h.measurements.DeleteTemperature(c.Request().Context(), userId, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
