package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// ChatConfig configures the assistant chat integration.
type ChatConfig struct {
	Endpoint string `yaml:"endpoint" json:"endpoint"`
	ApiKey   string `yaml:"api_key" json:"api_key"`
	Model    string `yaml:"model" json:"model"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system" json:"system"`
	Web      WebConfig    `yaml:"web" json:"web"`
	Database DBConfig     `yaml:"database" json:"database"`
	Logger   LoggerConfig `yaml:"logger" json:"logger"`
	Chat     ChatConfig   `yaml:"chat" json:"chat"`
}

func (c *AppConfig) GetLogDir() string {
	return filepath.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return filepath.Join(c.System.Workdir, "data")
}

// GetUploadDir returns the directory where product and profile images are stored.
func (c *AppConfig) GetUploadDir() string {
	return filepath.Join(c.System.Workdir, "uploads")
}

func (c *AppConfig) initDirs() {
	_ = os.MkdirAll(c.System.Workdir, 0755)
	_ = os.MkdirAll(c.GetLogDir(), 0755)
	_ = os.MkdirAll(c.GetDataDir(), 0755)
	_ = os.MkdirAll(c.GetUploadDir(), 0755)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "GreenMarket",
		Location: "Asia/Kolkata",
		Workdir:  "/var/greenmarket",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 3000,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "greenmarket",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/greenmarket/greenmarket.log",
	},
	Chat: ChatConfig{
		Endpoint: "https://api.openai.com/v1/chat/completions",
		Model:    "gpt-3.5-turbo",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

// LoadConfig reads configuration from the given file, falling back to
// defaults, then applies GREENMARKET_* environment overrides.
func LoadConfig(cfile string) *AppConfig {
	if cfile == "" {
		cfile = "greenmarket.yml"
	}
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if data, err := os.ReadFile(cfile); err == nil {
		_ = yaml.Unmarshal(data, cfg)
	}

	setEnvValue("GREENMARKET_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvBoolValue("GREENMARKET_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })
	setEnvValue("GREENMARKET_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("GREENMARKET_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("GREENMARKET_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvValue("GREENMARKET_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("GREENMARKET_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("GREENMARKET_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("GREENMARKET_CHAT_ENDPOINT", func(v string) { cfg.Chat.Endpoint = v })
	setEnvValue("GREENMARKET_CHAT_APIKEY", func(v string) { cfg.Chat.ApiKey = v })
	setEnvValue("GREENMARKET_CHAT_MODEL", func(v string) { cfg.Chat.Model = v })

	cfg.initDirs()
	return cfg
}
