package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/recreation-search/internal/pkg/errors"
	"github.com/recreation-search/internal/pkg/utils"
	"github.com/recreation-search/internal/usecase"
	"github.com/recreation-search/internal/usecase/dto"
	"go.uber.org/zap"
)

// SearchHandler - обработчик поиска объектов отдыха
type SearchHandler struct {
	searchUC   *usecase.SearchUseCase
	resourceUC *usecase.RecreationResourceUseCase
	logger     *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(
	searchUC *usecase.SearchUseCase,
	resourceUC *usecase.RecreationResourceUseCase,
	logger *zap.Logger,
) *SearchHandler {
	return &SearchHandler{
		searchUC:   searchUC,
		resourceUC: resourceUC,
		logger:     logger,
	}
}

// Search godoc
// @Summary Поиск объектов отдыха
// @Description Страница объектов (сайты, тропы, леса) и меню фильтров со счетчиками, согласованными со страницей. Без limit страница - накопительное окно page*10, page не больше 10.
// @Tags Search
// @Produce json
// @Param page query int false "Номер страницы (с 1)" default(1)
// @Param filter query string false "Текст: название или ближайший населенный пункт"
// @Param limit query int false "Размер страницы, не больше 10"
// @Param activities query string false "Коды активностей через _ (все должны присутствовать)"
// @Param type query string false "Коды типов через _"
// @Param district query string false "Коды районов через _"
// @Param access query string false "Коды доступа через _"
// @Param facilities query string false "toilet, table через _"
// @Param lat query number false "Широта (вместе с lon)"
// @Param lon query number false "Долгота (вместе с lat)"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/recreation-resource/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	req, err := parseSearchRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}

// GetResource godoc
// @Summary Объект отдыха по идентификатору
// @Tags Search
// @Produce json
// @Param id path string true "rec_resource_id"
// @Success 200 {object} utils.SuccessResponse{data=dto.RecreationResourceSummary}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/recreation-resource/{id} [get]
func (h *SearchHandler) GetResource(c *fiber.Ctx) error {
	result, err := h.resourceUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// parseSearchRequest разбирает query-параметры. Нечисловые значения - ErrInvalidRequest
func parseSearchRequest(c *fiber.Ctx) (dto.SearchRequest, error) {
	req := dto.SearchRequest{
		Page:       1,
		Filter:     strings.TrimSpace(c.Query("filter")),
		Type:       utils.SplitParam(c.Query("type")),
		District:   utils.SplitParam(c.Query("district")),
		Access:     utils.SplitParam(c.Query("access")),
		Facilities: utils.SplitParam(c.Query("facilities")),
	}
	invalid := make(map[string]interface{})

	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			invalid["page"] = "int"
		}
		req.Page = page
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			invalid["limit"] = "int"
		} else {
			req.Limit = &limit
		}
	}

	activities, err := utils.SplitIntParam(c.Query("activities"))
	if err != nil {
		invalid["activities"] = "int"
	}
	req.Activities = activities

	req.Lat = parseFloatParam(c, "lat", invalid)
	req.Lon = parseFloatParam(c, "lon", invalid)

	if len(invalid) > 0 {
		return req, errors.ErrInvalidRequest.WithDetails(invalid)
	}
	return req, nil
}

func parseFloatParam(c *fiber.Ctx, name string, invalid map[string]interface{}) *float64 {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		invalid[name] = "number"
		return nil
	}
	return &f
}
