package api

import (
	"github.com/gorilla/handlers"
)

func setupCorsOptions(origin string) []handlers.CORSOption {
	methods := handlers.AllowedMethods([]string{"GET", "OPTIONS"})
	origins := handlers.AllowedOrigins([]string{origin})
	headers := handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader})
	exposed := handlers.ExposedHeaders([]string{requestIDHeader})

	options := []handlers.CORSOption{methods, origins, headers, exposed}
	return options
}
