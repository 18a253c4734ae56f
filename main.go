// @title Cybersecurity Training Game API
// @version 1.0
// @description 网络安全意识训练问答游戏后端服务。
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"cyber_quiz_backend/internal/app"
	"cyber_quiz_backend/internal/config"
	"cyber_quiz_backend/pkg/configwatcher"
	"cyber_quiz_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置热更新：JWT密钥在线生效，其余项需重启
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		cfg.SetJWT(newCfg.JWT)
		logger.Log.Info("Config reloaded, JWT settings applied; other changes require restart")
	})

	application.Run()
}
