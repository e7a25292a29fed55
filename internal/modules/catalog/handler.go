package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"malaeb/internal/domain"
	"malaeb/internal/pkg/response"
	"malaeb/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// requestLocale negotiates the response language for public pages:
// explicit ?locale= wins, then the Accept-Language header, then English.
func requestLocale(c *gin.Context) domain.Locale {
	if q := c.Query("locale"); q != "" {
		return domain.ParseLocale(q)
	}
	if al := c.GetHeader("Accept-Language"); al != "" {
		primary := strings.TrimSpace(strings.Split(al, ",")[0])
		if i := strings.Index(primary, "-"); i > 0 {
			primary = primary[:i]
		}
		return domain.ParseLocale(strings.ToLower(primary))
	}
	return domain.LocaleEN
}

func (h *Handler) ListStadiums(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	offset := 0
	if s := c.Query("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}

	f := repository.StadiumFilter{
		City:    c.Query("city"),
		Surface: domain.SurfaceType(c.Query("surface")),
	}

	res, err := h.service.List(c.Request.Context(), f, requestLocale(c), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list stadiums")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetStadium(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid stadium ID")
		return
	}

	res, err := h.service.Get(c.Request.Context(), id, requestLocale(c))
	if err != nil {
		if errors.Is(err, repository.ErrStadiumNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Stadium not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get stadium")
		return
	}

	response.Success(c, http.StatusOK, res)
}
