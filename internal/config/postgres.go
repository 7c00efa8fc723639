package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/membot/pkg/log"
)

type PostgresConfig struct {
	Host     string `env:"PGHOST" envDefault:"127.0.0.1"`
	Port     string `env:"PGPORT" envDefault:"5432"`
	User     string `env:"PGUSER,required,notEmpty"`
	Password string `env:"PGPASSWORD,required,notEmpty"`
	Database string `env:"PGDATABASE,required,notEmpty"`
}

func NewPostgresConfig(ctx context.Context) *PostgresConfig {
	c := &PostgresConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Postgres config")
	}
	return c
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", c.User, c.Password, c.Host, c.Port, c.Database)
}
