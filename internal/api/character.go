package api

import (
	"net/http"
	"strconv"
	"strings"

	"rpg-api/backend/internal/models"
	"rpg-api/backend/internal/service"
	apperrors "rpg-api/backend/pkg/errors"
	"rpg-api/backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// SortParam opts GetByClass into strength-descending order when set to "forca" or "strength"
const SortParam = "ordenar"

type CharacterHandler struct {
	service   *service.CharacterService
	localizer *i18n.Localizer
}

func NewCharacterHandler(service *service.CharacterService, localizer *i18n.Localizer) *CharacterHandler {
	return &CharacterHandler{service: service, localizer: localizer}
}

// RegisterRoutes mounts the catalog routes on the given group
func (h *CharacterHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/nome/:nome", h.GetByName)
	group.GET("/GetClerigoMago", h.GetClericOrMage)
	group.GET("/GetEstatisticas", h.GetStatistics)
	group.POST("/PostValidacao", h.PostWithValidation)
	group.POST("/PostValidacaoMago", h.PostWithMageValidation)
	group.GET("/GetByClasse/:idClasse", h.GetByClass)
}

func (h *CharacterHandler) GetByName(c *gin.Context) {
	character, err := h.service.FindByName(c.Request.Context(), c.Param("nome"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, character)
}

func (h *CharacterHandler) GetClericOrMage(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.FilterClericOrMage(c.Request.Context()))
}

func (h *CharacterHandler) GetStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ComputeStatistics(c.Request.Context()))
}

func (h *CharacterHandler) PostWithValidation(c *gin.Context) {
	var candidate models.Character
	if !h.bind(c, &candidate) {
		return
	}

	characters, err := h.service.AppendWithBasicValidation(c.Request.Context(), candidate)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, characters)
}

func (h *CharacterHandler) PostWithMageValidation(c *gin.Context) {
	var candidate models.Character
	if !h.bind(c, &candidate) {
		return
	}

	characters, err := h.service.AppendWithMageValidation(c.Request.Context(), candidate)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, characters)
}

func (h *CharacterHandler) GetByClass(c *gin.Context) {
	ordinal, err := strconv.Atoi(c.Param("idClasse"))
	if err != nil {
		h.fail(c, apperrors.NewBadRequestError(apperrors.CodeInvalidRequest, "invalid class ordinal").
			WithParams("idClasse"))
		return
	}

	sortByStrength := false
	switch strings.ToLower(c.Query(SortParam)) {
	case "forca", "força", "strength":
		sortByStrength = true
	}

	c.JSON(http.StatusOK, h.service.FilterByClassOrdinal(c.Request.Context(), ordinal, sortByStrength))
}

// bind decodes the JSON body; a malformed body is reported as INVALID_REQUEST
func (h *CharacterHandler) bind(c *gin.Context, candidate *models.Character) bool {
	if err := c.ShouldBindJSON(candidate); err != nil {
		h.fail(c, apperrors.BadRequestWithDetails(apperrors.CodeInvalidRequest, "malformed body", err.Error()).
			WithParams(err.Error()))
		return false
	}
	return true
}

// fail localizes the error message and hands it to the error middleware
func (h *CharacterHandler) fail(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	if appErr.Code != apperrors.CodeInternal {
		appErr.Message = h.localizer.Localize(c, appErr.Code, appErr.Params...)
	}
	_ = c.Error(appErr)
	c.Abort()
}
