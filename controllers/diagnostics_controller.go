package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princinho/ecomapi/config"
	"github.com/princinho/ecomapi/database"
	"github.com/princinho/ecomapi/utils"
)

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Ecommerce API running"})
	}
}

// TestDatabase reports process and storage health. Every failure mode
// degrades to a status string; this endpoint never returns an error code.
func TestDatabase(db database.Gateway, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		resp := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"mongodb_uri":       presenceFlag(cfg.MongoURI != ""),
			"database_name":     presenceFlag(cfg.DatabaseName != ""),
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		switch err := db.Ping(ctx); {
		case errors.Is(err, database.ErrNotConnected):
			resp["database"] = "⚠️  Available but not initialized"
		case err != nil:
			resp["database"] = "❌ Error: " + utils.Truncate(err.Error(), 50)
		default:
			resp["database"] = "✅ Available"
			resp["connection_status"] = "Connected"
			if name := db.Name(); name != "" {
				resp["store_name"] = name
			}
			if collections, err := db.ListCollectionNames(ctx); err != nil {
				resp["database"] = "⚠️  Connected but Error: " + utils.Truncate(err.Error(), 50)
			} else {
				if len(collections) > 10 {
					collections = collections[:10]
				}
				resp["collections"] = collections
				resp["database"] = "✅ Connected & Working"
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

func presenceFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}
