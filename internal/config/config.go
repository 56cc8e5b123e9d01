package config

import "os"

// Config is derived from the environment once at startup. The defaults are
// development values; JWT_SECRET and ADMIN_PASSWORD must be overridden in any
// real deployment.
type Config struct {
	Addr        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	AdminEmail  string
	AdminPass   string
	StudioEmail string
	GelfAddr    string
}

func Load() *Config {
	return &Config{
		Addr:        getEnv("ADDR", ":8000"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:     getEnv("MONGO_DB", "arstudios"),
		JWTSecret:   getEnv("JWT_SECRET", "super-secret-key-change"),
		AdminEmail:  getEnv("ADMIN_EMAIL", "admin@arstudios.com"),
		AdminPass:   getEnv("ADMIN_PASSWORD", "admin1234"),
		StudioEmail: getEnv("STUDIO_EMAIL", "studio@arstudios.com"),
		GelfAddr:    getEnv("GELF_ADDR", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
