package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	Queue      QueueConfig      `toml:"queue"`
	Backoffice BackofficeConfig `toml:"backoffice"`
	Reservas   ReservasConfig   `toml:"reservas"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

// RedisConfig настройки подключения к Redis
// Redis хранит счетчики занятости слотов и черновики карритос
type RedisConfig struct {
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	CarritoTTL int    `toml:"carrito_ttl"` // секунды жизни неподтвержденного каррито
}

// QueueConfig настройки RabbitMQ
// Очередь ausencias приносит события no-show от внешнего джоба
type QueueConfig struct {
	Enabled       bool   `toml:"enabled"`
	URL           string `toml:"url"`
	AusenciaQueue string `toml:"ausencia_queue"`
}

// BackofficeConfig настройки клиента backoffice (справочник пользователей)
type BackofficeConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// ReservasConfig бизнес-параметры резервирования
type ReservasConfig struct {
	CostoReserva     float64 `toml:"costo_reserva"`     // сенья, удерживаемая при создании
	DiasAnticipacion int     `toml:"dias_anticipacion"` // максимум дней вперед для брони
	DuracionSlotMin  int     `toml:"duracion_slot_min"` // длительность слота в минутах
}

// Load читает и парсит конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "comedor-service"
	}
	if c.Redis.CarritoTTL == 0 {
		c.Redis.CarritoTTL = 4 * 60 * 60
	}
	if c.Queue.AusenciaQueue == "" {
		c.Queue.AusenciaQueue = "reservas.ausencias"
	}
	if c.Reservas.CostoReserva == 0 {
		c.Reservas.CostoReserva = 500
	}
	if c.Reservas.DiasAnticipacion == 0 {
		c.Reservas.DiasAnticipacion = 14
	}
	if c.Reservas.DuracionSlotMin == 0 {
		c.Reservas.DuracionSlotMin = 60
	}
}
