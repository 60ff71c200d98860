package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Mongo   MongoConfig
	JWT     JWTConfig
	Stripe  StripeConfig
	Portal  PortalConfig
	Metrics MetricsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MongoConfig configuración de MongoDB.
type MongoConfig struct {
	URI      string
	Database string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StripeConfig configuración de la plataforma de facturación. PriceBasic y
// PricePremium son los price ids externos que mapean a los planes locales.
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PriceBasic    string
	PricePremium  string
}

// PortalConfig configuración del portal público de empresas.
type PortalConfig struct {
	BaseURL string // base para derivar company_url, ej. https://hubber.app
}

// MetricsConfig configuración de métricas Prometheus.
type MetricsConfig struct {
	Prefix string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// MONGO_URI, JWT_SECRET, STRIPE_WEBHOOK_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "hubber-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database: getString(v, "MONGO_DATABASE", "hubber"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "hubber-api"),
		},
		Stripe: StripeConfig{
			SecretKey:     getString(v, "STRIPE_SECRET_KEY", ""),
			WebhookSecret: getString(v, "STRIPE_WEBHOOK_SECRET", ""),
			PriceBasic:    getString(v, "STRIPE_PRICE_BASIC", ""),
			PricePremium:  getString(v, "STRIPE_PRICE_PREMIUM", ""),
		},
		Portal: PortalConfig{
			BaseURL: getString(v, "PORTAL_BASE_URL", "http://localhost:3000"),
		},
		Metrics: MetricsConfig{
			Prefix: getString(v, "METRICS_PREFIX", "hubber"),
		},
	}

	return cfg, nil
}

// PriceTiers arma el mapa estático price id → plan local a partir de la
// configuración. Los price ids vacíos no se registran.
func (c StripeConfig) PriceTiers() map[string]string {
	m := make(map[string]string, 2)
	if c.PriceBasic != "" {
		m[c.PriceBasic] = "basic"
	}
	if c.PricePremium != "" {
		m[c.PricePremium] = "premium"
	}
	return m
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
