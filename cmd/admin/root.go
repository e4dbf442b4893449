package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"curriculo-api/internal/core/config"
	"curriculo-api/internal/core/database"
	"curriculo-api/internal/core/logger"
)

// env 运维命令共享的配置与日志
type env struct {
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	cleanup func()
}

func newRootCmd() *cobra.Command {
	e := &env{cleanup: func() {}}
	cmd := &cobra.Command{
		Use:           "admin",
		Short:         "Operator commands for curriculo-api (migrations, tokens, connectivity)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read(e.cfgFile)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log, e.cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) { e.cleanup() },
	}
	cmd.PersistentFlags().StringVar(&e.cfgFile, "config", "", "config file (default is $CONFIG_PATH or "+config.DefaultPath+")")

	cmd.AddCommand(
		newMigrateCmd(e),
		newTokenCmd(e),
		newPingCmd(e),
	)
	return cmd
}

func (e *env) openDB() (*gorm.DB, error) {
	w, err := logger.ToStdLogger(e.log.Named("gorm"), zapcore.WarnLevel)
	if err != nil {
		return nil, err
	}
	db, err := database.NewGorm(database.FromConfig(e.cfg.DB, w))
	if err != nil {
		return nil, err
	}
	e.log.Info("database connected",
		zap.String("driver", e.cfg.DB.Driver),
		zap.String("dsn", database.MaskDSN(e.cfg.DB.Driver, e.cfg.DB.DSN)),
	)
	return db, nil
}
