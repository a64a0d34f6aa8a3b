package handlers

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Facu14carrizo/StuntProAR/internal/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.News.HomeLimit = 10
	config.AppConfig = cfg

	os.Exit(m.Run())
}
