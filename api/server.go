package api

import (
	"github.com/brpaz/echozap"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/LuizaMunis/HealthCare-sub000/auth"
	"github.com/LuizaMunis/HealthCare-sub000/errors"
)

func NewServer(handler *Handler, healthCheck *HealthCheck, authenticator auth.Authenticator, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Skip auth for the readiness probe; registration is the only domain
	// route reachable without a token.
	authSkipper := RouteSkipper([]string{"/ready", "/api/usuarios/registrar"})

	loggerMiddleware := echozap.ZapLogger(logger)
	authMiddleware := auth.NewAuthMiddleware(authenticator, auth.AuthMiddlewareOpts{
		Skipper: authSkipper,
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(loggerMiddleware)
	e.Use(authMiddleware)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}

func RegisterHandlers(e *echo.Echo, h *Handler) {
	e.POST("/api/usuarios/registrar", h.RegisterUser)
	e.GET("/api/usuarios/me", h.GetCurrentUser)

	e.POST("/api/perfil", h.CreateProfile)
	e.GET("/api/perfil", h.GetProfile)
	e.PUT("/api/perfil", h.UpdateProfile)
	e.DELETE("/api/perfil", h.DeleteProfile)
	e.GET("/api/perfil/imc", h.GetBodyMassIndex)

	e.POST("/api/doencas", h.CreateCondition)
	e.GET("/api/doencas", h.ListConditions)
	e.GET("/api/doencas/:id", h.GetCondition)
	e.PUT("/api/doencas/:id", h.UpdateCondition)
	e.DELETE("/api/doencas/:id", h.DeleteCondition)
	e.POST("/api/doencas/:id/sintomas", h.CreateSymptom)
	e.GET("/api/doencas/:id/sintomas", h.ListSymptoms)
	e.GET("/api/sintomas/:id", h.GetSymptom)
	e.PUT("/api/sintomas/:id", h.UpdateSymptom)
	e.DELETE("/api/sintomas/:id", h.DeleteSymptom)

	e.POST("/api/medicamentos", h.CreateMedication)
	e.GET("/api/medicamentos", h.ListMedications)
	e.GET("/api/medicamentos/:id", h.GetMedication)
	e.PUT("/api/medicamentos/:id", h.UpdateMedication)
	e.DELETE("/api/medicamentos/:id", h.DeleteMedication)
	e.POST("/api/medicamentos/:id/registros", h.CreateUseLog)
	e.GET("/api/medicamentos/:id/registros", h.ListUseLogs)
	e.GET("/api/registros-uso/:id", h.GetUseLog)
	e.PUT("/api/registros-uso/:id", h.UpdateUseLog)
	e.DELETE("/api/registros-uso/:id", h.DeleteUseLog)

	e.POST("/api/vacinas", h.CreateVaccine)
	e.GET("/api/vacinas", h.ListVaccines)
	e.GET("/api/vacinas/:id", h.GetVaccine)
	e.PUT("/api/vacinas/:id", h.UpdateVaccine)
	e.DELETE("/api/vacinas/:id", h.DeleteVaccine)

	e.POST("/api/consultas", h.CreateConsultation)
	e.GET("/api/consultas", h.ListConsultations)
	e.GET("/api/consultas/:id", h.GetConsultation)
	e.PUT("/api/consultas/:id", h.UpdateConsultation)
	e.DELETE("/api/consultas/:id", h.DeleteConsultation)

	e.POST("/api/pressao-arterial", h.CreateBloodPressure)
	e.GET("/api/pressao-arterial", h.ListBloodPressure)
	e.GET("/api/pressao-arterial/relatorio", h.GetBloodPressureReport)
	e.GET("/api/pressao-arterial/:id", h.GetBloodPressure)
	e.PUT("/api/pressao-arterial/:id", h.UpdateBloodPressure)
	e.DELETE("/api/pressao-arterial/:id", h.DeleteBloodPressure)

	e.POST("/api/frequencia-cardiaca", h.CreateHeartRate)
	e.GET("/api/frequencia-cardiaca", h.ListHeartRate)
	e.GET("/api/frequencia-cardiaca/:id", h.GetHeartRate)
	e.PUT("/api/frequencia-cardiaca/:id", h.UpdateHeartRate)
	e.DELETE("/api/frequencia-cardiaca/:id", h.DeleteHeartRate)

	e.POST("/api/temperatura", h.CreateTemperature)
	e.GET("/api/temperatura", h.ListTemperature)
	e.GET("/api/temperatura/:id", h.GetTemperature)
	e.PUT("/api/temperatura/:id", h.UpdateTemperature)
	e.DELETE("/api/temperatura/:id", h.DeleteTemperature)
}
