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

func GetProducts(db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		limit, err := utils.ParseLimit(c.Query("limit"), defaultLimit, minLimit, maxLimit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		query := database.Where()
		if category := strings.TrimSpace(c.Query("category")); category != "" {
			query = query.Eq("category", category)
		}
		if q := strings.TrimSpace(c.Query("q")); q != "" {
			query = query.ContainsFold("title", q)
		}

		items := make([]models.Product, 0)
		if err := db.FindMany(ctx, productCollection, query, int64(limit), &items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func AddProduct(db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		body.Title = strings.TrimSpace(body.Title)
		body.Category = strings.TrimSpace(body.Category)
		if body.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}

		// The referenced category must exist. Same non-atomic caveat as the
		// slug check: there is no transaction around check and insert.
		var cat models.Category
		err := db.FindOne(ctx, categoryCollection, database.Where().Eq("slug", body.Category), &cat)
		if errors.Is(err, database.ErrNoDocument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category does not exist", "field": "category"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		inStock := true
		if body.InStock != nil {
			inStock = *body.InStock
		}

		doc := models.Product{
			Title:       body.Title,
			Description: body.Description,
			Price:       *body.Price,
			Category:    body.Category,
			Image:       strings.TrimSpace(body.Image),
			InStock:     inStock,
		}

		id, err := db.Insert(ctx, productCollection, doc)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var created models.Product
		if err := db.FindOne(ctx, productCollection, database.ByID(id), &created); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"item": created})
	}
}
