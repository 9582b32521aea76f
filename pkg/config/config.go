package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola y del backend stub (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	API     APIConfig
	Session SessionConfig
	UI      UIConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Stub    StubConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig destino y nivel del logger. La consola escribe a archivo porque la terminal es de la UI.
type LogConfig struct {
	Level string
	File  string
}

// APIConfig selección de backend.
// Si BaseURL está vacío se resuelve por hostname (ver api.ResolveBaseURL).
type APIConfig struct {
	BaseURL     string
	ConsoleHost string
	Timeout     time.Duration // 0 = sin timeout
}

// SessionConfig almacenamiento durable del token.
type SessionConfig struct {
	File string
}

// UIConfig tiempos de la interfaz.
type UIConfig struct {
	ToastDuration  time.Duration
	SearchDebounce time.Duration
	ExportDir      string
}

// HTTPConfig configuración del servidor HTTP del backend stub.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT del backend stub.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StubConfig credenciales sembradas en el backend stub.
type StubConfig struct {
	AdminEmail    string
	AdminPassword string
	SwaggerFile   string // swagger.json servido en /docs; vacío = sin Swagger UI
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, SESSION_FILE, JWT_SECRET, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	home := homeDir()
	hostname, _ := os.Hostname()

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "sultan-console"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", filepath.Join(home, ".sultan", "console.log")),
		},
		API: APIConfig{
			BaseURL:     strings.TrimRight(getString(v, "API_BASE_URL", ""), "/"),
			ConsoleHost: getString(v, "CONSOLE_HOST", hostname),
			Timeout:     time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Session: SessionConfig{
			File: getString(v, "SESSION_FILE", filepath.Join(home, ".sultan", "session.json")),
		},
		UI: UIConfig{
			ToastDuration:  time.Duration(getInt(v, "TOAST_DURATION_MS", 3000)) * time.Millisecond,
			SearchDebounce: time.Duration(getInt(v, "SEARCH_DEBOUNCE_MS", 300)) * time.Millisecond,
			ExportDir:      getString(v, "EXPORT_DIR", "."),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "sultan-stub"),
		},
		Stub: StubConfig{
			AdminEmail:    getString(v, "STUB_ADMIN_EMAIL", "admin@sultan.com"),
			AdminPassword: getString(v, "STUB_ADMIN_PASSWORD", "password"),
			SwaggerFile:   getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.API.Timeout < 0 {
		return nil, fmt.Errorf("config: API_TIMEOUT_SECONDS no puede ser negativo")
	}
	if cfg.UI.ToastDuration <= 0 {
		return nil, fmt.Errorf("config: TOAST_DURATION_MS debe ser positivo")
	}
	if cfg.UI.SearchDebounce < 0 {
		return nil, fmt.Errorf("config: SEARCH_DEBOUNCE_MS no puede ser negativo")
	}
	return cfg, nil
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "."
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
