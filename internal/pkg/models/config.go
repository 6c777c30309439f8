package models

// Config is the root configuration for the service
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	JWT         JWTConfig
	OTP         OTPConfig
	Withdrawal  WithdrawalConfig
	Flutterwave FlutterwaveConfig
	Infobip     InfobipConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// OTPConfig controls OTP issuance and verification
type OTPConfig struct {
	ExpiryMinutes  int
	MaxAttempts    int
	LockoutMinutes int
}

// WithdrawalConfig contains withdrawal policy configuration
type WithdrawalConfig struct {
	Currency string
}

// FlutterwaveConfig contains disbursement gateway configuration
type FlutterwaveConfig struct {
	BaseURL   string
	SecretKey string
	Timeout   int // seconds
}

// InfobipConfig contains notification gateway configuration
type InfobipConfig struct {
	BaseURL     string
	APIKey      string
	SMSSender   string
	WASender    string
	EmailSender string
	Timeout     int // seconds
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}
