package database

import (
	"fmt"
	"log/slog"

	"github.com/changhyeonkim/jpashop/go-api-server/internal/config"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("⏭️  데이터베이스 마이그레이션 비활성화됨",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	// Safety check: prevent accidental data loss in production
	if cfg.IsProduction() {
		return fmt.Errorf("🚨 PRODUCTION 환경에서는 DB_AUTO_MIGRATE=true를 사용할 수 없습니다! 데이터 손실 방지를 위해 차단됨")
	}

	slog.Warn("🔧 데이터베이스 마이그레이션 시작 - 모든 테이블이 삭제되고 재생성됩니다!",
		"auto_migrate", true, "env", cfg.App.Env, "driver", cfg.Database.Driver,
	)

	return Recreate(db, model.Models()...)
}

// Recreate drops the given tables and creates them again from the model definitions.
// models must be listed in dependency order; they are dropped in reverse order.
func Recreate(db *gorm.DB, models ...any) error {
	slog.Info("🗑️  기존 테이블 삭제 중...")

	migrator := db.Migrator()
	for i := len(models) - 1; i >= 0; i-- {
		m := models[i]
		if !migrator.HasTable(m) {
			continue
		}
		if err := migrator.DropTable(m); err != nil {
			return fmt.Errorf("%T 테이블 삭제 실패: %w", m, err)
		}
		slog.Debug("테이블 삭제 성공", "model", fmt.Sprintf("%T", m))
	}

	slog.Info("📦 새 테이블 생성 중...")
	if err := runAutoMigrate(db, models); err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	slog.Info("✅ 마이그레이션 완료!")
	return nil
}

// runAutoMigrate creates tables based on model definitions
func runAutoMigrate(db *gorm.DB, models []any) error {
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("%T 마이그레이션 실패: %w", m, err)
		}
		slog.Debug("테이블 생성됨", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
