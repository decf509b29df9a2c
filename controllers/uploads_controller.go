package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princinho/ecomapi/config"
	"github.com/princinho/ecomapi/utils"
)

// UploadImages stores 1-4 multipart "images" files in R2 and returns their
// public URLs, for use in category/product image fields.
func UploadImages(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		r2, err := utils.NewR2Client(ctx, cfg)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads not configured"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		files := form.File["images"]

		prefix := utils.GenerateSlug(c.PostForm("slug"))
		if prefix == "" {
			prefix = "misc"
		}

		urls, err := utils.UploadImagesToR2(ctx, r2, prefix, files)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"urls": urls})
	}
}
