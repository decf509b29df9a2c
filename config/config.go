// Package config collects runtime configuration from the environment.
package config

import "os"

type Config struct {
	MongoURI       string
	DatabaseName   string
	Port           string
	AllowedOrigins string

	// Object storage for image uploads (Cloudflare R2, S3 API).
	R2Bucket       string
	R2AccessKeyID  string
	R2SecretKey    string
	R2Endpoint     string
	R2PublicDomain string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		MongoURI:       os.Getenv("MONGODB_URI"),
		DatabaseName:   os.Getenv("DATABASE_NAME"),
		Port:           getenv("PORT", "8080"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		R2Bucket:       os.Getenv("R2_BUCKET"),
		R2AccessKeyID:  os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretKey:    os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2Endpoint:     os.Getenv("R2_ENDPOINT"),
		R2PublicDomain: os.Getenv("R2_PUBLIC_DOMAIN"),
	}
}
