package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princinho/ecomapi/schema"
)

// GetSchema exposes the resource shapes for client-side form generation.
func GetSchema() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"category": schema.Category.JSONSchema(),
			"product":  schema.Product.JSONSchema(),
		})
	}
}
