package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/changhyeonkim/jpashop/go-api-server/internal/config"
	"github.com/sourcegraph/conc/pool"
)

const maxHeaderBytes = 1 << 20 // 1 MB

// Server owns the http.Server lifecycle: listen, then drain on shutdown
type Server struct {
	cfg    *config.Config
	server *http.Server
}

func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.App.Port),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
		},
	}
}

// Run serves until ctx is cancelled or the listener fails.
// On cancellation in-flight requests get GracefulTimeout to finish.
func (s *Server) Run(ctx context.Context) error {
	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		slog.Info("서버 시작 중",
			"addr", s.server.Addr,
			"env", s.cfg.App.Env,
			"request_timeout", s.cfg.Server.RequestTimeout.String(),
		)

		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("서버 오류: %w", err)
		}
		return nil
	})

	p.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return s.shutdown()
	})

	return p.Wait()
}

func (s *Server) shutdown() error {
	// 부모 ctx는 이미 취소된 상태이므로 새 ctx로 drain
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.GracefulTimeout)
	defer cancel()

	slog.Info("서버 종료 중...", "graceful_timeout", s.cfg.Server.GracefulTimeout.String())
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("서버 강제 종료: %w", err)
	}
	return nil
}
