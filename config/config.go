package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server reads from the environment at start.
type Config struct {
	Port            string `envconfig:"PORT" default:"5000"`
	MongoURI        string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	DBName          string `envconfig:"DB_NAME" default:"carHut"`
	JWTSecret       string `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	SendgridAPIKey  string `envconfig:"SENDGRID_API_KEY"`
	EmailSender     string `envconfig:"EMAIL_SENDER"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
