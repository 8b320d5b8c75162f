package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// SysConfig holds process-wide settings.
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// WebConfig holds the HTTP listener settings.
type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// DBConfig holds relational database settings. Type selects the
// driver: "sqlite" (file under workdir/data) or "postgres".
type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetDataDir() string {
	return filepath.Join(c.System.Workdir, "data")
}

func (c *AppConfig) GetImagesDir() string {
	return filepath.Join(c.System.Workdir, "images")
}

func (c *AppConfig) GetExportsDir() string {
	return filepath.Join(c.System.Workdir, "exports")
}

func (c *AppConfig) GetUploadsDir() string {
	return filepath.Join(c.System.Workdir, "uploads")
}

// initDirs creates the workdir layout if absent.
func (c *AppConfig) initDirs() {
	for _, dir := range []string{
		c.System.Workdir,
		c.GetDataDir(),
		c.GetImagesDir(),
		c.GetExportsDir(),
		c.GetUploadsDir(),
	} {
		_ = os.MkdirAll(dir, 0755)
	}
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "Stockroom",
		Location: "Europe/Kyiv",
		Workdir:  "/var/stockroom",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 3000,
	},
	Database: DBConfig{
		Type:   "sqlite",
		Host:   "127.0.0.1",
		Port:   5432,
		Name:   "stockroom",
		User:   "postgres",
		Passwd: "",
		Debug:  false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/stockroom/stockroom.log",
	},
}

func setEnvValue(name string, val *string) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = evalue
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = evalue == "true" || evalue == "1" || evalue == "on"
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue, ok := os.LookupEnv(name); ok {
		var ivalue int
		if _, err := fmt.Sscanf(evalue, "%d", &ivalue); err == nil {
			*val = ivalue
		}
	}
}

// LoadConfig reads the YAML config file and applies environment
// overrides. A missing or unreadable file falls back to defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			fcfg := new(AppConfig)
			if err := yaml.Unmarshal(data, fcfg); err == nil {
				cfg = fcfg
			}
		}
	}

	setEnvValue("STOCKROOM_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvBoolValue("STOCKROOM_SYSTEM_DEBUG", &cfg.System.Debug)
	setEnvValue("STOCKROOM_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("STOCKROOM_WEB_PORT", &cfg.Web.Port)
	setEnvValue("STOCKROOM_DB_TYPE", &cfg.Database.Type)
	setEnvValue("STOCKROOM_DB_HOST", &cfg.Database.Host)
	setEnvIntValue("STOCKROOM_DB_PORT", &cfg.Database.Port)
	setEnvValue("STOCKROOM_DB_NAME", &cfg.Database.Name)
	setEnvValue("STOCKROOM_DB_USER", &cfg.Database.User)
	setEnvValue("STOCKROOM_DB_PWD", &cfg.Database.Passwd)
	setEnvBoolValue("STOCKROOM_DB_DEBUG", &cfg.Database.Debug)

	cfg.initDirs()
	return cfg
}
