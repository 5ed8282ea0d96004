package config

import (
	"bufio"
	"log"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Storage
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	DBHost        string `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string `envconfig:"DB_PORT" default:"5432"`
	DBUser        string `envconfig:"DB_USER" default:"postgres"`
	DBPassword    string `envconfig:"DB_PASSWORD"`
	DBName        string `envconfig:"DB_NAME" default:"scalable_parking"`
	DBMaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMigrate     bool   `envconfig:"DB_MIGRATE" default:"true"`

	// Cache
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	SlotsCacheTTL time.Duration `envconfig:"SLOTS_CACHE_TTL" default:"30s"`

	// Payments
	PaymentMode     string        `envconfig:"PAYMENT_MODE" default:"simulate"`
	SimulatedDelay  time.Duration `envconfig:"SIMULATED_CONFIRM_DELAY" default:"5s"`
	DarajaBaseURL   string        `envconfig:"DARAJA_BASE_URL" default:"https://sandbox.safaricom.co.ke"`
	DarajaKey       string        `envconfig:"DARAJA_CONSUMER_KEY"`
	DarajaSecret    string        `envconfig:"DARAJA_CONSUMER_SECRET"`
	DarajaShortcode string        `envconfig:"DARAJA_SHORTCODE"`
	DarajaPasskey   string        `envconfig:"DARAJA_PASSKEY"`
	DarajaCallback  string        `envconfig:"DARAJA_CALLBACK_URL"`
	DarajaTimeout   time.Duration `envconfig:"DARAJA_TIMEOUT" default:"15s"`
	CallbackSecret  string        `envconfig:"MPESA_CALLBACK_SECRET"`

	// Identity
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Ledger
	PendingWindow     time.Duration `envconfig:"PENDING_WINDOW" default:"15m"`
	GraceWindow       time.Duration `envconfig:"START_GRACE_WINDOW" default:"5m"`
	UndoWindow        time.Duration `envconfig:"UNDO_WINDOW" default:"5m"`
	SweeperEnabled    bool          `envconfig:"SWEEPER_ENABLED" default:"true"`
	SweepInterval     time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
	StalePendingAfter time.Duration `envconfig:"STALE_PENDING_AFTER" default:"1h"`

	// Notifications
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"parking.events"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// LoadEnv copies KEY=VALUE lines from a dotenv file into the process
// environment. Variables already set in the environment win.
func LoadEnv(path string) {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("%s not found, using OS environment", path)
		return
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if _, set := os.LookupEnv(key); set {
			continue
		}
		os.Setenv(key, strings.Trim(strings.TrimSpace(value), `"`))
	}

	if err := scanner.Err(); err != nil {
		log.Printf("failed to read %s: %v", path, err)
	}
}
