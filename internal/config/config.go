package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/siamsupply/shop-api/internal/secrets"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Storage   StorageConfig
	Secrets   SecretsConfig
	Logging   LoggingConfig
	Server    ServerConfig
	CORS      CORSConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	WMS       WMSConfig
	PDF       PDFConfig
	Shop      ShopConfig
	Jobs      JobsConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// AuthConfig holds the bearer token and API key settings.
// Tokens are issued by the storefront's identity provider and signed with JWTSecret (HS256).
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	APIKey    string
}

type StorageConfig struct {
	Mode                  string
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
}

type SecretsConfig struct {
	// Source determines where secrets are loaded from: "environment", "vault", or "auto"
	Source       string
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	EnableSwagger  bool
	EnableMetrics  bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	HSTSPreload           bool
	ContentSecurityPolicy string
	FrameOptions          string
	ContentTypeNosniff    bool
	XSSProtection         string
	ReferrerPolicy        string
	PermissionsPolicy     string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled               bool
	RequestsPerMinute     int
	RequestsPerMinuteAuth int
	// CheckoutPerMinute limits order placement per client
	CheckoutPerMinute int
	WhitelistIPs      []string
	WhitelistPaths    []string
}

// WMSConfig configures the warehouse stock lookup.
// Mode is one of "disabled", "http" or "sqlserver".
type WMSConfig struct {
	Mode    string
	BaseURL string
	APIKey  string
	// Timeout for a single stock lookup (seconds)
	Timeout int

	// SQL Server read-only view, used when Mode is "sqlserver".
	// URL format: host:port/database
	URL             string
	User            string
	Password        string
	StockView       string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// PDFConfig configures the headless Chrome used to rasterize quotations
type PDFConfig struct {
	// ChromeBin is the browser binary; empty lets the launcher download/locate one
	ChromeBin    string
	Timeout      int // seconds
	ItemsPerPage int
	NoSandbox    bool
}

// ShopConfig holds business defaults for pricing and customer segmentation
type ShopConfig struct {
	CompanyName           string
	CompanyAddress        string
	CompanyTaxID          string
	CompanyPhone          string
	VATRate               float64
	QuotationValidityDays int
	InactiveAfterDays     int
	TargetSpendThreshold  float64
	RegularOrderThreshold int
	// Shipping defaults apply until an admin saves the shipping setting
	DefaultShippingFee    float64
	FreeShippingThreshold float64
}

// JobsConfig holds cron expressions for background jobs (with seconds field)
type JobsConfig struct {
	Enabled             bool
	SegmentationCron    string
	QuotationExpiryCron string
	TimeoutSeconds      int
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// RequestTimeoutDuration returns request timeout as duration
func (s *ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// TimeoutDuration returns the stock lookup timeout
func (w *WMSConfig) TimeoutDuration() time.Duration {
	return time.Duration(w.Timeout) * time.Second
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (w *WMSConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(w.ConnMaxLifetime) * time.Second
}

// TimeoutDuration returns the render timeout
func (p *PDFConfig) TimeoutDuration() time.Duration {
	return time.Duration(p.Timeout) * time.Second
}

// InactiveAfter returns the segmentation inactivity window
func (s *ShopConfig) InactiveAfter() time.Duration {
	return time.Duration(s.InactiveAfterDays) * 24 * time.Hour
}

// TimeoutDuration returns the per-run job timeout
func (j *JobsConfig) TimeoutDuration() time.Duration {
	return time.Duration(j.TimeoutSeconds) * time.Second
}

// Load loads configuration from file and environment variables.
// It does not contact the vault; use LoadWithSecrets for that.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.APIKey == "" {
		cfg.Auth.APIKey = v.GetString("ADMIN_API_KEY")
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = v.GetString("JWT_SECRET")
	}
	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}

	return &cfg, nil
}

// LoadWithSecrets loads configuration and resolves secrets from Azure Key Vault
// when USE_AZURE_KEY_VAULT=true and the environment is staging or production.
// Otherwise the values from Load are returned unchanged.
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	useKeyVault := strings.ToLower(os.Getenv("USE_AZURE_KEY_VAULT")) == "true"
	isValidEnv := cfg.App.Environment == "staging" || cfg.App.Environment == "production"

	if !useKeyVault {
		logger.Info("USE_AZURE_KEY_VAULT not enabled, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if !isValidEnv {
		logger.Warn("USE_AZURE_KEY_VAULT is enabled but environment is not staging or production, using environment variables",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if cfg.Secrets.KeyVaultName == "" {
		return nil, fmt.Errorf("AZURE_KEY_VAULT_NAME is required when USE_AZURE_KEY_VAULT=true")
	}

	provider, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:       secrets.SourceVault,
		VaultName:    cfg.Secrets.KeyVaultName,
		Environment:  cfg.App.Environment,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     time.Duration(cfg.Secrets.CacheTTL) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider: %w", err)
	}

	logger.Info("Loading secrets from Azure Key Vault",
		zap.String("key_vault_name", cfg.Secrets.KeyVaultName),
	)

	if host, err := provider.GetSecretOrEnv(ctx, "SHOP-DB-HOST", "DATABASE_HOST"); err == nil && host != "" {
		cfg.Database.Host = host
	}
	if user, err := provider.GetSecretOrEnv(ctx, "SHOP-DB-USER", "DATABASE_USER"); err == nil && user != "" {
		cfg.Database.User = user
	}
	if password, err := provider.GetSecretOrEnv(ctx, "SHOP-DB-PASSWORD", "DATABASE_PASSWORD"); err == nil && password != "" {
		cfg.Database.Password = password
	}
	if sslMode := os.Getenv("DATABASE_SSLMODE"); sslMode != "" {
		cfg.Database.SSLMode = sslMode
	}
	if secret, err := provider.GetSecretOrEnv(ctx, "jwt-secret", "JWT_SECRET"); err == nil && secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if apiKey, err := provider.GetSecretOrEnv(ctx, "admin-api-key", "ADMIN_API_KEY"); err == nil && apiKey != "" {
		cfg.Auth.APIKey = apiKey
	}
	if connStr, err := provider.GetSecretOrEnv(ctx, "storage-connection-string", "STORAGE_CLOUDCONNECTIONSTRING"); err == nil && connStr != "" {
		cfg.Storage.CloudConnectionString = connStr
	}
	if wmsKey, err := provider.GetSecretOrEnv(ctx, "wms-api-key", "WMS_APIKEY"); err == nil && wmsKey != "" {
		cfg.WMS.APIKey = wmsKey
	}
	if cfg.WMS.Mode == "sqlserver" {
		cfg.WMS.User = provider.GetSecretWithDefault(ctx, "WMS-SQL-USERNAME", cfg.WMS.User)
		cfg.WMS.Password = provider.GetSecretWithDefault(ctx, "WMS-SQL-PASSWORD", cfg.WMS.Password)
	}

	logger.Info("Secrets loaded from vault successfully")
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Siam Supply Shop API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "shop")
	v.SetDefault("database.user", "shop_user")
	v.SetDefault("database.password", "shop_password")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 300)

	v.SetDefault("auth.issuer", "siamsupply")

	v.SetDefault("secrets.source", "auto")
	v.SetDefault("secrets.cacheEnabled", true)
	v.SetDefault("secrets.cacheTTL", 300)

	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localBasePath", "./storage")
	v.SetDefault("storage.cloudContainer", "quotations")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 60) // PDF rendering can be slow
	v.SetDefault("server.requestTimeout", 60)
	v.SetDefault("server.enableSwagger", true)
	v.SetDefault("server.enableMetrics", true)

	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"Content-Disposition", "Location", "X-Request-ID"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.maxAge", 300)

	v.SetDefault("security.enableHSTS", false)
	v.SetDefault("security.hstsMaxAge", 31536000)
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.hstsPreload", false)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.xssProtection", "1; mode=block")
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")
	v.SetDefault("security.permissionsPolicy", "geolocation=(), microphone=(), camera=()")

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 120)
	v.SetDefault("rateLimit.requestsPerMinuteAuth", 300)
	v.SetDefault("rateLimit.checkoutPerMinute", 10)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/db", "/health/ready", "/metrics"})

	v.SetDefault("wms.mode", "disabled")
	v.SetDefault("wms.timeout", 10)
	v.SetDefault("wms.stockView", "dbo.v_stock_on_hand")
	v.SetDefault("wms.maxOpenConns", 5)
	v.SetDefault("wms.maxIdleConns", 1)
	v.SetDefault("wms.connMaxLifetime", 300)

	v.SetDefault("pdf.timeout", 30)
	v.SetDefault("pdf.itemsPerPage", 15)
	v.SetDefault("pdf.noSandbox", true)

	v.SetDefault("shop.companyName", "บริษัท สยามซัพพลาย จำกัด")
	v.SetDefault("shop.vatRate", 7.0)
	v.SetDefault("shop.quotationValidityDays", 30)
	v.SetDefault("shop.inactiveAfterDays", 90)
	v.SetDefault("shop.targetSpendThreshold", 50000.0)
	v.SetDefault("shop.regularOrderThreshold", 2)
	v.SetDefault("shop.defaultShippingFee", 50.0)
	v.SetDefault("shop.freeShippingThreshold", 1000.0)

	v.SetDefault("jobs.enabled", true)
	v.SetDefault("jobs.segmentationCron", "0 0 2 * * *")   // 02:00 every day
	v.SetDefault("jobs.quotationExpiryCron", "0 5 * * * *") // minute 5 of every hour
	v.SetDefault("jobs.timeoutSeconds", 300)
}
