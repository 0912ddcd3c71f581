package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mealpicker/backend/internal/model"
	"github.com/mealpicker/backend/internal/service"
)

// DishHandler handles dish CRUD and the random draw. Payloads are
// form-encoded; repeated `ingredients` entries form the ingredient list.
type DishHandler struct {
	dishService service.IDishService
	logger      zerolog.Logger
}

// NewDishHandler creates a new dish handler
func NewDishHandler(dishService service.IDishService, logger zerolog.Logger) *DishHandler {
	return &DishHandler{
		dishService: dishService,
		logger:      logger.With().Str("handler", "dish").Logger(),
	}
}

// RegisterRoutes registers the dish routes
func (h *DishHandler) RegisterRoutes(router *gin.RouterGroup) {
	dishes := router.Group("/dishes")
	{
		dishes.GET("", h.ListDishes)
		dishes.GET("/:id", h.GetDish)
		dishes.POST("", h.CreateDish)
		dishes.PUT("/:id", h.UpdateDish)
		dishes.DELETE("/:id", h.DeleteDish)
		dishes.POST("/random", h.RandomDish)
	}
}

// CreateDish persists a new dish from a form submission
func (h *DishHandler) CreateDish(c *gin.Context) {
	dish := &model.Dish{
		Title:       c.PostForm("title"),
		ImgURL:      c.PostForm("imgUrl"),
		Category:    c.PostForm("category"),
		Calories:    c.PostForm("calories"),
		Difficulty:  c.PostForm("difficulty"),
		Ingredients: model.JSONBStringArray(service.TrimSearchTerms(c.PostFormArray("ingredients"))),
	}

	created, err := h.dishService.Create(c.Request.Context(), dish)
	if err != nil {
		if model.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error().Err(err).Msg("failed to create dish")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create dish"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": created.ID})
}

// UpdateDish overwrites the supplied fields of an existing dish. Form keys
// that were not submitted leave the stored values untouched.
func (h *DishHandler) UpdateDish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	update := &model.DishUpdate{}
	if v, ok := c.GetPostForm("title"); ok {
		update.Title = &v
	}
	if v, ok := c.GetPostForm("imgUrl"); ok {
		update.ImgURL = &v
	}
	if v, ok := c.GetPostForm("category"); ok {
		update.Category = &v
	}
	if v, ok := c.GetPostForm("calories"); ok {
		update.Calories = &v
	}
	if v, ok := c.GetPostForm("difficulty"); ok {
		update.Difficulty = &v
	}
	if terms, ok := c.GetPostFormArray("ingredients"); ok {
		update.Ingredients = service.TrimSearchTerms(terms)
	}

	updated, err := h.dishService.Update(c.Request.Context(), id, update)
	if err != nil {
		switch {
		case model.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, model.ErrDishNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		default:
			h.logger.Error().Err(err).Str("id", id.String()).Msg("failed to update dish")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update dish"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": updated.ID})
}

// DeleteDish removes a dish. Failures are logged, never surfaced; deleting
// an absent identity is not an error for the caller.
func (h *DishHandler) DeleteDish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	if err := h.dishService.Delete(c.Request.Context(), id); err != nil && !errors.Is(err, model.ErrDishNotFound) {
		h.logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete dish")
	}

	c.Status(http.StatusNoContent)
}

// GetDish retrieves a dish by ID
func (h *DishHandler) GetDish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	dish, err := h.dishService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrDishNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		h.logger.Error().Err(err).Str("id", id.String()).Msg("failed to fetch dish")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dish"})
		return
	}

	c.JSON(http.StatusOK, dish)
}

// ListDishes returns all dishes
func (h *DishHandler) ListDishes(c *gin.Context) {
	dishes, err := h.dishService.List(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list dishes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dishes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dishes": dishes})
}

// RandomDish draws one dish at random from those matching the submitted
// filter. An empty matching subset is a distinct non-error outcome.
func (h *DishHandler) RandomDish(c *gin.Context) {
	filter := service.DishFilter{
		Category:    c.PostForm("category"),
		Calories:    c.PostForm("calories"),
		Difficulty:  c.PostForm("difficulty"),
		Ingredients: c.PostFormArray("ingredients"),
	}

	dish, err := h.dishService.Random(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, model.ErrDishNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "no dish found matching the given filter"})
			return
		}
		h.logger.Error().Err(err).Msg("random dish query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch a random dish"})
		return
	}

	c.JSON(http.StatusOK, dish)
}
