package api

import (
	"encoding/json"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/LuizaMunis/HealthCare-sub000/auth"
	"github.com/LuizaMunis/HealthCare-sub000/conditions"
	"github.com/LuizaMunis/HealthCare-sub000/consultations"
	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/measurements"
	"github.com/LuizaMunis/HealthCare-sub000/medications"
	"github.com/LuizaMunis/HealthCare-sub000/profiles"
	"github.com/LuizaMunis/HealthCare-sub000/store"
	"github.com/LuizaMunis/HealthCare-sub000/users"
	"github.com/LuizaMunis/HealthCare-sub000/vaccines"
)

type Handler struct {
	users         users.Service
	profiles      profiles.Service
	conditions    conditions.Service
	medications   medications.Service
	vaccines      vaccines.Service
	consultations consultations.Service
	measurements  measurements.Service
}

type Params struct {
	fx.In

	Users         users.Service
	Profiles      profiles.Service
	Conditions    conditions.Service
	Medications   medications.Service
	Vaccines      vaccines.Service
	Consultations consultations.Service
	Measurements  measurements.Service
}

func NewHandler(p Params) *Handler {
	return &Handler{
		users:         p.Users,
		profiles:      p.Profiles,
		conditions:    p.Conditions,
		medications:   p.Medications,
		vaccines:      p.Vaccines,
		consultations: p.Consultations,
		measurements:  p.Measurements,
	}
}

// authUserId extracts the authenticated user set by the auth middleware.
func authUserId(c echo.Context) (int64, error) {
	authData := auth.GetAuthData(c.Request().Context())
	if authData == nil {
		return 0, errors.Unauthorized
	}
	return authData.UserId, nil
}

// bindBody decodes a JSON payload strictly. Unknown fields are rejected so
// clients cannot smuggle identifier or ownership fields through a payload.
func bindBody(c echo.Context, v interface{}) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return errors.BadRequest
	}
	return nil
}

func pathId(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequest
	}
	return id, nil
}

func pagination(c echo.Context) store.Pagination {
	page := store.DefaultPagination()
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil && offset >= 0 {
		page.Offset = offset
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 && limit <= store.DefaultPaginationLimit {
		page.Limit = limit
	}
	return page
}
