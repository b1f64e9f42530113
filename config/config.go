package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	APP struct {
		Name      string
		Host      string
		Port      string
		Env       string
		BaseURL   string
		JWTSecret string
		JWTTTL    time.Duration
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	// Storage selects where resource attachments live. "cloudinary" uploads
	// to the remote media store, "local" keeps files under UploadsDir and
	// serves them from /uploads.
	Storage struct {
		Backend       string
		UploadsDir    string
		CloudName     string
		APIKey        string
		APISecret     string
		UploadFolder  string
		MaxFileSize   int64
		MaxFilesPerRq int
	}
	Mail struct {
		Host      string
		Port      string
		Username  string
		Password  string
		From      string
		ContactTo string
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
		ListTTL  time.Duration
	}
	Pay struct {
		Endpoint    string
		APIKey      string
		CallbackURL string
	}
	CORS struct {
		AllowedOrigins []string
	}

	Config struct {
		App     APP
		DB      DB
		Storage Storage
		Mail    Mail
		MQ      MQ
		Redis   Redis
		Pay     Pay
		CORS    CORS
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return def
}

func Load() Config {
	app := APP{
		Name:      getEnv("SERVICE_NAME", "contentapi"),
		Host:      getEnv("SERVICE_HOST", ""),
		Port:      getEnv("SERVICE_PORT", "5000"),
		Env:       getEnv("SERVICE_ENV", ""),
		BaseURL:   getEnv("SERVICE_BASE_URL", "http://localhost:5000"),
		JWTSecret: getEnv("SERVICE_JWT_SECRET", ""),
		JWTTTL:    getEnvDuration("SERVICE_JWT_TTL", time.Hour),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	storage := Storage{
		Backend:       getEnv("STORAGE_BACKEND", "local"),
		UploadsDir:    getEnv("STORAGE_UPLOADS_DIR", "uploads"),
		CloudName:     getEnv("CLOUDINARY_CLOUD_NAME", ""),
		APIKey:        getEnv("CLOUDINARY_API_KEY", ""),
		APISecret:     getEnv("CLOUDINARY_API_SECRET", ""),
		UploadFolder:  getEnv("CLOUDINARY_FOLDER", "content"),
		MaxFileSize:   int64(getEnvInt("UPLOAD_MAX_FILE_SIZE", 50<<20)),
		MaxFilesPerRq: getEnvInt("UPLOAD_MAX_FILES", 3),
	}
	mail := Mail{
		Host:      getEnv("SMTP_HOST", ""),
		Port:      getEnv("SMTP_PORT", "587"),
		Username:  getEnv("SMTP_USERNAME", ""),
		Password:  getEnv("SMTP_PASSWORD", ""),
		From:      getEnv("MAIL_FROM", "Website Team <noreply@example.org>"),
		ContactTo: getEnv("CONTACT_FORM_RECIPIENT", ""),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", "content-events"),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", "content-audit"),
	}
	redis := Redis{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
		ListTTL:  getEnvDuration("REDIS_LIST_TTL", 30*time.Second),
	}
	pay := Pay{
		Endpoint:    getEnv("IREMBO_ENDPOINT", "https://api.irembopay.com"),
		APIKey:      getEnv("IREMBO_API_KEY", ""),
		CallbackURL: getEnv("IREMBO_CALLBACK_URL", ""),
	}
	cors := CORS{
		AllowedOrigins: splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}

	return Config{
		App:     app,
		DB:      db,
		Storage: storage,
		Mail:    mail,
		MQ:      mq,
		Redis:   redis,
		Pay:     pay,
		CORS:    cors,
	}
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
