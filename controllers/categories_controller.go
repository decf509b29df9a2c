package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/princinho/ecomapi/database"
	"github.com/princinho/ecomapi/dto"
	"github.com/princinho/ecomapi/models"
	"github.com/princinho/ecomapi/utils"
)

const (
	categoryCollection = "category"
	productCollection  = "product"

	defaultLimit = 50
	minLimit     = 1
	maxLimit     = 200
)

func GetCategories(db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		limit, err := utils.ParseLimit(c.Query("limit"), defaultLimit, minLimit, maxLimit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items := make([]models.Category, 0)
		if err := db.FindMany(ctx, categoryCollection, database.Where(), int64(limit), &items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func AddCategory(db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateCategoryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Slug = strings.TrimSpace(body.Slug)
		if body.Slug == "" {
			body.Slug = utils.GenerateSlug(body.Name)
		}
		if body.Slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
			return
		}

		// Uniqueness on slug. Check-then-insert is not atomic; two
		// concurrent creates for the same slug can both pass the check.
		var existing models.Category
		err := db.FindOne(ctx, categoryCollection, database.Where().Eq("slug", body.Slug), &existing)
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug already exists", "field": "slug"})
			return
		}
		if !errors.Is(err, database.ErrNoDocument) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		doc := models.Category{
			Name:  body.Name,
			Slug:  body.Slug,
			Image: strings.TrimSpace(body.Image),
		}

		id, err := db.Insert(ctx, categoryCollection, doc)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "slug already exists", "field": "slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Re-read by id so the response carries the canonical stored form.
		var created models.Category
		if err := db.FindOne(ctx, categoryCollection, database.ByID(id), &created); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"item": created})
	}
}
