package services

import (
	"os"
	"testing"

	"github.com/Facu14carrizo/StuntProAR/internal/config"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.News.HomeLimit = 10
	config.AppConfig = cfg

	os.Exit(m.Run())
}
