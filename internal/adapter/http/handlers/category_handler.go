package handlers

import (
	"net/http"

	request "agency_ops/internal/adapter/http/dto/request"
	response "agency_ops/internal/adapter/http/dto/response"
	"agency_ops/internal/usecase"
	"agency_ops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCategoryPayload = pkg.NewDomainErrorSimple(pkg.KindValidation, "name is required", http.StatusBadRequest)

type CategoryHandler struct {
	usecase usecase.ICategoryUseCase
}

func NewCategoryHandler(uc usecase.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{usecase: uc}
}

// CreateCategory godoc
// @Summary      Create a service category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateCategoryRequest  true  "category"
// @Success      201      {object}  response.CategoryResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCategoryPayload.HTTPStatus, errInvalidCategoryPayload.ToHTTPError())
		return
	}

	category, err := h.usecase.CreateCategory(c.Request.Context(), p, payload.Name, payload.Description)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCategory(category))
}

// ListCategories godoc
// @Summary      List service categories by name
// @Tags         admin
// @Produce      json
// @Success      200  {array}  response.CategoryResponse
// @Security     Bearer
// @Router       /admin/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	list, err := h.usecase.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(list))
}
