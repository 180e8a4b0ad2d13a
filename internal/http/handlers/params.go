package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/professionals-backend/internal/platform/apierr"
	"github.com/yungbote/professionals-backend/internal/platform/pagination"
	"github.com/yungbote/professionals-backend/internal/services"
)

func pathID(c *gin.Context, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierr.New(http.StatusBadRequest, apierr.CodeInvalidParam, fmt.Errorf("invalid %s %q", name, raw))
	}
	return id, nil
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apierr.New(http.StatusBadRequest, apierr.CodeInvalidJSON, err)
	}
	return nil
}

// pageQuery reads pageNumber, pageSize and search. Missing values default to
// page 1 of pagination.DefaultPageSize; range checks are left to the service.
func pageQuery(c *gin.Context) (services.PageQuery, error) {
	q := services.PageQuery{
		PageNumber: 1,
		PageSize:   pagination.DefaultPageSize,
		Search:     strings.TrimSpace(c.Query("search")),
	}
	var err error
	if q.PageNumber, err = intQuery(c, "pageNumber", q.PageNumber); err != nil {
		return q, err
	}
	if q.PageSize, err = intQuery(c, "pageSize", q.PageSize); err != nil {
		return q, err
	}
	return q, nil
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierr.New(http.StatusBadRequest, apierr.CodeInvalidParam, errors.New(name+" must be an integer"))
	}
	return v, nil
}
