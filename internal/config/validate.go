package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate reports every configuration problem at once
func (c *Config) Validate() error {
	if problems := c.problems(); len(problems) > 0 {
		return joinProblems(problems)
	}
	return nil
}

func (c *Config) problems() []string {
	var problems []string

	if c.App.Port < 1 || c.App.Port > 65535 {
		problems = append(problems, "유효하지 않은 포트 번호")
	}

	problems = append(problems, c.Database.problems()...)
	problems = append(problems, c.JWT.problems()...)

	if c.Server.RequestTimeout < 0 {
		problems = append(problems, "SERVER_REQUEST_TIMEOUT은 음수일 수 없습니다")
	}

	return problems
}

func (d DatabaseConfig) problems() []string {
	var problems []string

	switch d.Driver {
	case DriverOracle, DriverPostgres:
		required := []struct{ name, value string }{
			{"Host", d.Host},
			{"Service", d.Service},
			{"User", d.User},
			{"Password", d.Password},
		}
		for _, field := range required {
			if field.value == "" {
				problems = append(problems, fmt.Sprintf("데이터베이스 %s가 필요합니다", field.name))
			}
		}
		if d.Port < 1 || d.Port > 65535 {
			problems = append(problems, "유효하지 않은 데이터베이스 포트 번호")
		}
	case DriverSQLite:
		if d.Service == "" {
			problems = append(problems, "SQLite 파일 경로(DB_SERVICE)가 필요합니다")
		}
	default:
		problems = append(problems, fmt.Sprintf("지원하지 않는 데이터베이스 드라이버: %q", d.Driver))
	}

	if d.MaxOpenConns > 0 && d.MaxIdleConns > d.MaxOpenConns {
		problems = append(problems, "DB_MAX_IDLE_CONNS는 DB_MAX_OPEN_CONNS보다 클 수 없습니다")
	}

	return problems
}

func (j JWTConfig) problems() []string {
	var problems []string

	if j.Secret == "" {
		problems = append(problems, "JWT Secret Key가 필요합니다")
	} else if len(j.Secret) < 32 {
		problems = append(problems, "JWT Secret Key는 32자 이상이어야 합니다")
	}
	if j.Expiry <= 0 || j.RefreshExpiry < j.Expiry {
		problems = append(problems, fmt.Sprintf("JWT 만료 시간이 올바르지 않습니다 (access=%s, refresh=%s)",
			j.Expiry.Round(time.Second), j.RefreshExpiry.Round(time.Second)))
	}

	return problems
}

func joinProblems(problems []string) error {
	return errors.New("유효성 검사 오류: " + strings.Join(problems, ", "))
}
