package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/changhyeonkim/jpashop/go-api-server/internal/bootstrap"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/config"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/router"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/validator"
)

func main() {
	env := flag.String("env", "local", "Environment (local|dev|production)")
	flag.Parse()

	logger.Setup(*env)

	// SIGINT/SIGTERM cancel ctx, Server.Run drains and returns
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *env); err != nil {
		slog.Error("서버 실행 실패", "env", *env, "error", err)
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", *env)
}

func run(ctx context.Context, env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	slog.Info("환경 변수 로드 성공",
		"app", cfg.App.Name,
		"driver", cfg.Database.Driver,
		"auto_migrate", cfg.Database.IsAutoMigrate,
	)

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	if err := validator.RegisterAll(); err != nil {
		return fmt.Errorf("validator 등록 실패: %w", err)
	}

	engine := bootstrap.NewBootstrap(cfg).SetupEngine()
	router.Setup(engine, cfg, db)

	return bootstrap.New(cfg, engine).Run(ctx)
}
