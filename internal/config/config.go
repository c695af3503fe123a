package config

import (
	"os"
	"strings"
)

// Configはアプリ全体の設定
type Config struct {
	Port      string // サーバーポート（3000）
	GoEnv     string // dev/prod
	FEURL     string // フロントURL（CORSで使う）
	StaticDir string // 静的ファイルの置き場所
}

// Loadは環境変数。未設定はデフォルトで埋める。
func Load() Config {
	cfg := Config{
		Port:      os.Getenv("PORT"),
		GoEnv:     os.Getenv("GO_ENV"),
		FEURL:     os.Getenv("FE_URL"),
		StaticDir: os.Getenv("STATIC_DIR"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.GoEnv == "" {
		cfg.GoEnv = "dev"
	}
	if cfg.FEURL == "" {
		cfg.FEURL = "*"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "public"
	}

	return cfg
}

func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
