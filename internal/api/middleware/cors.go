package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	corsgin "github.com/rs/cors/wrapper/gin"
)

// CORS allows browser clients on any origin to call the calculation API.
func CORS() gin.HandlerFunc {
	return corsgin.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
}
