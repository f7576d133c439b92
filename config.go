package comgate

import (
	"os"
	"strings"
	"sync"
	"time"
)

// DefaultBaseURL is the production gateway endpoint.
const DefaultBaseURL = "https://payments.comgate.cz"

const (
	defaultTimeout     = 60 * time.Second
	defaultOpenTimeout = 20 * time.Second
	defaultMethods     = "ALL"
)

// Config holds credentials and per-request defaults for a Client.
//
// Methods is the default payment method filter substituted into a
// create-payment request whose own method is blank. TestMode, when true,
// marks requests as test unless the caller said otherwise.
type Config struct {
	MerchantID  string
	Secret      string
	BaseURL     string
	Timeout     time.Duration
	OpenTimeout time.Duration
	TestMode    bool
	Methods     string
}

// NewConfig loads a Config from the environment, falling back to the
// documented defaults.
func NewConfig() *Config {
	return &Config{
		MerchantID:  os.Getenv("COMGATE_MERCHANT_ID"),
		Secret:      os.Getenv("COMGATE_SECRET"),
		BaseURL:     getEnvString("COMGATE_BASE_URL", DefaultBaseURL),
		Timeout:     defaultTimeout,
		OpenTimeout: defaultOpenTimeout,
		TestMode:    getEnvBool("COMGATE_TEST", false),
		Methods:     getEnvString("COMGATE_METHODS", defaultMethods),
	}
}

var (
	configOnce   sync.Once
	globalConfig *Config
)

// Configuration returns the process-wide default configuration, initialized
// from the environment on first access. Every Client that is not given an
// explicit override reads from it. Mutation is expected during startup only;
// no locking is provided.
func Configuration() *Config {
	configOnce.Do(func() { globalConfig = NewConfig() })
	return globalConfig
}

// Configure mutates the process-wide default configuration.
func Configure(fn func(*Config)) {
	fn(Configuration())
}

func getEnvString(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return strings.EqualFold(value, "true")
}
