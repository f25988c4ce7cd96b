package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/quickstep/internal/clock"
	"github.com/smallbiznis/quickstep/internal/config"
	"github.com/smallbiznis/quickstep/internal/migration"
	"github.com/smallbiznis/quickstep/internal/observability"
	"github.com/smallbiznis/quickstep/internal/seed"
	"github.com/smallbiznis/quickstep/internal/server"
	"github.com/smallbiznis/quickstep/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		seed.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
