package config

import "os"

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	RedisURL    string
	// InquiryNotifyAddr receives a copy of every contact/quote inquiry.
	InquiryNotifyAddr string
	// AdminSeedEmail/AdminSeedPassword bootstrap the first admin account
	// when the user table is empty, so a fresh deployment can sign in.
	AdminSeedEmail    string
	AdminSeedPassword string
}

func Load() Config {
	addr := os.Getenv("CATALOG_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	notify := os.Getenv("INQUIRY_NOTIFY_ADDR")
	if notify == "" {
		notify = "sales@placid.asia"
	}

	return Config{
		Addr:              addr,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RedisURL:          os.Getenv("REDIS_URL"),
		InquiryNotifyAddr: notify,
		AdminSeedEmail:    os.Getenv("ADMIN_SEED_EMAIL"),
		AdminSeedPassword: os.Getenv("ADMIN_SEED_PASSWORD"),
	}
}
