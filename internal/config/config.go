package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ExecutionMode controla a chave global de execução automática. Mesmo com a
// regra marcada como auto_execute, só executa sozinho em auto_low_risk.
const (
	ExecutionModeManual      = "manual"
	ExecutionModeAutoLowRisk = "auto_low_risk"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Worker    Worker    `mapstructure:",squash"`
	Guardrail Guardrail `mapstructure:",squash"`
	Telegram  Telegram  `mapstructure:",squash"`
	Meta      Meta      `mapstructure:",squash"`
	Naver     Naver     `mapstructure:",squash"`
	Cafe24    Cafe24    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Worker configura o orquestrador de ticks. O intervalo conta a partir do fim
// de um tick: ticks lentos se auto-regulam em vez de sobrepor.
type Worker struct {
	Enabled             bool `mapstructure:"worker_enabled"`
	TickIntervalSeconds int  `mapstructure:"worker_tick_interval_seconds"`
}

type Guardrail struct {
	ExecutionMode         string `mapstructure:"guardrail_execution_mode"`
	DedupWindowHours      int    `mapstructure:"guardrail_dedup_window_hours"`
	MinRefreshIntervalMin int    `mapstructure:"guardrail_min_refresh_interval_minutes"`
}

type Telegram struct {
	BotToken      string `mapstructure:"telegram_bot_token"`
	AllowedChatID int64  `mapstructure:"telegram_allowed_chat_id"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
}

type Naver struct {
	BaseURL    string `mapstructure:"naver_base_url"`
	APIKey     string `mapstructure:"naver_api_key"`
	APISecret  string `mapstructure:"naver_api_secret"`
	CustomerID string `mapstructure:"naver_customer_id"`
}

type Cafe24 struct {
	BaseURL     string `mapstructure:"cafe24_base_url"`
	MallID      string `mapstructure:"cafe24_mall_id"`
	AccessToken string `mapstructure:"cafe24_access_token"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8010)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsguardrail")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "Asia/Seoul") // Dia-calendário local das plataformas

	viper.SetDefault("WORKER_ENABLED", false)
	viper.SetDefault("WORKER_TICK_INTERVAL_SECONDS", 300) // 5 minutos entre ticks

	viper.SetDefault("GUARDRAIL_EXECUTION_MODE", ExecutionModeManual)
	viper.SetDefault("GUARDRAIL_DEDUP_WINDOW_HOURS", 24)
	viper.SetDefault("GUARDRAIL_MIN_REFRESH_INTERVAL_MINUTES", 10)

	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_ALLOWED_CHAT_ID", 0)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "") // ONLY LOCAL

	viper.SetDefault("NAVER_BASE_URL", "https://api.searchad.naver.com")
	viper.SetDefault("NAVER_API_KEY", "")
	viper.SetDefault("NAVER_API_SECRET", "")
	viper.SetDefault("NAVER_CUSTOMER_ID", "")

	viper.SetDefault("CAFE24_BASE_URL", "")
	viper.SetDefault("CAFE24_MALL_ID", "")
	viper.SetDefault("CAFE24_ACCESS_TOKEN", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Guardrail.ExecutionMode != ExecutionModeManual &&
		config.Guardrail.ExecutionMode != ExecutionModeAutoLowRisk {
		return nil, fmt.Errorf("modo de execução inválido: %q", config.Guardrail.ExecutionMode)
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
