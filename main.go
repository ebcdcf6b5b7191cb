package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/market-lens/market-lens/internal/repo"
	"github.com/market-lens/market-lens/internal/service/alert"
	"github.com/market-lens/market-lens/internal/service/market/alphavantage"
	"github.com/market-lens/market-lens/internal/service/monitor"
	"github.com/market-lens/market-lens/internal/service/notification"
	"github.com/market-lens/market-lens/internal/web"
	"github.com/market-lens/market-lens/ioc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func initViper() {

	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.dev.yaml", "specify config file")
	pflag.Parse()

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}

}

func main() {
	initViper()

	db := ioc.InitDB()
	if err := repo.InitTables(db); err != nil {
		panic(err)
	}

	avCli := ioc.InitAlphaVantageCli()
	marketSvc := alphavantage.NewService(avCli)

	alertRepo := repo.NewAlertRepo(db)
	alertSvc := alert.NewService(alertRepo, marketSvc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if viper.GetBool("monitor.enabled") {
		interval := viper.GetInt("monitor.interval_sec")
		if interval <= 0 {
			interval = 60
		}
		var notifier notification.Notifier = notification.NewConsoleNotifier()
		if url := viper.GetString("monitor.webhook_url"); url != "" {
			notifier = notification.NewWebhookNotifier(url)
		}
		task := monitor.NewCheckTask(alertSvc, time.Duration(interval)*time.Second, monitor.WithNotifier(notifier))
		go func() {
			slog.Info("starting background task", "task", task.Name())
			if err := task.Run(ctx); err != nil && ctx.Err() == nil {
				slog.Error("background task stopped", "task", task.Name(), "error", err)
			}
		}()
	}

	port := viper.GetString("server.port")
	if port == "" {
		port = "5000"
	}
	srv := web.NewServer(marketSvc, alertSvc, web.WithStaticDir(viper.GetString("server.static_dir")))
	if err := srv.Run(ctx, ":"+port); err != nil {
		panic(err)
	}
}
