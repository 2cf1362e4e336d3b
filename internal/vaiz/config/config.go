// Управление конфигурацией MCP сервера Vaiz из переменных окружения.
// Содержит структуру Config и функцию ReadConfig для загрузки параметров.
//
// Основные возможности:
//   - Загрузка конфигурации из переменных окружения по тегам struct.
//   - Проверка обязательных переменных.
//   - Маскировка ключей и токенов в логах.
//   - Значения по умолчанию для адреса API, TTL кеша и адреса метрик.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"reflect"
	"strings"
	"time"
)

const (
	DefaultBaseURL     = "https://api.vaiz.com/v4"
	DefaultCacheTTL    = 300
	DefaultMetricsAddr = ":2112"
)

var ErrMissingEnv = errors.New("required environment variable is not set")

type Config struct {
	APIKey    string `env:"VAIZ_API_KEY" desc:"API ключ Vaiz (обязательно)"`
	SpaceID   string `env:"VAIZ_SPACE_ID" desc:"ID пространства (обязательно)"`
	BaseURL   string `env:"VAIZ_BASE_URL" desc:"Адрес API"`
	VerifySSL bool   `env:"VAIZ_VERIFY_SSL" desc:"Проверка TLS сертификата API"`
	Verbose   bool   `env:"VAIZ_VERBOSE" desc:"Логирование тел запросов и ответов"`

	// CacheTTLSeconds время жизни кеша getTasks в секундах
	CacheTTLSeconds int `env:"VAIZ_CACHE_TTL" desc:"Время жизни кеша задач в секундах"`

	MCPHTTPAddr string `env:"MCP_HTTP_ADDR" desc:"Адрес HTTP транспорта MCP, пустой означает stdio"`
	MetricsAddr string `env:"METRICS_ADDR" desc:"Адрес сервера метрик prometheus"`
}

// Variable переменная окружения для справочных материалов
type Variable struct {
	Name        string
	Default     string
	Description string
}

func defaultConfig() *Config {
	return &Config{
		BaseURL:         DefaultBaseURL,
		VerifySSL:       true,
		CacheTTLSeconds: DefaultCacheTTL,
		MetricsAddr:     DefaultMetricsAddr,
	}
}

// Variables перечисляет переменные окружения в порядке полей Config вместе со значениями по умолчанию
func Variables() []Variable {
	v := reflect.ValueOf(defaultConfig()).Elem()
	t := v.Type()
	var vars []Variable
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		def := ""
		if !v.Field(i).IsZero() {
			def = fmt.Sprint(v.Field(i).Interface())
		}
		vars = append(vars, Variable{Name: name, Default: def, Description: t.Field(i).Tag.Get("desc")})
	}
	return vars
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// ReadConfig загружает конфигурацию из окружения. Ошибка возвращается, если не задан ключ API
// или пространство, либо адрес API некорректен. Решение о завершении принимает вызывающий.
func ReadConfig() (*Config, error) {
	config := defaultConfig()

	envConfig("env", config)

	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: VAIZ_API_KEY", ErrMissingEnv)
	}
	if config.SpaceID == "" {
		return nil, fmt.Errorf("%w: VAIZ_SPACE_ID", ErrMissingEnv)
	}

	u, err := url.Parse(config.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("VAIZ_BASE_URL incorrect: %q", config.BaseURL)
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	if config.CacheTTLSeconds <= 0 {
		config.CacheTTLSeconds = DefaultCacheTTL
	}

	return config, nil
}

// Присваивает полям в переданной структуре значения переменных. Название переменной для каждого поля лежит в теге этого поля.
func envConfig(key string, s any) {
	v := reflect.ValueOf(s).Elem()
	typeParam := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fName := typeParam.Field(i).Name
		fEnvTag := typeParam.Field(i).Tag.Get(key)

		if fEnvTag == "" || !Exist(fEnvTag) {
			continue
		}

		value := GetEnv(fEnvTag)
		if value == "" {
			continue
		}

		logValue := value
		if isSecret(fName) {
			logValue = mask(value)
		}
		slog.Info("Set config value",
			slog.String("key", typeParam.Name()+"."+fName),
			slog.String("value", logValue),
			slog.String("source", "ENVIRONMENT"),
		)

		switch v.Field(i).Interface().(type) {
		case string:
			v.Field(i).SetString(value)
		case int:
			v.Field(i).SetInt(int64(GetIntEnv(fEnvTag)))
		case bool:
			v.Field(i).SetBool(GetBoolEnv(fEnvTag))
		}
	}
}

func isSecret(name string) bool {
	name = strings.ToLower(name)
	for _, s := range []string{"pass", "secret", "token", "key"} {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

// mask оставляет первый и последний символ
func mask(s string) string {
	r := []rune(s)
	if len(r) <= 2 {
		return strings.Repeat("*", len(r))
	}
	return string(r[0]) + strings.Repeat("*", len(r)-2) + string(r[len(r)-1])
}
