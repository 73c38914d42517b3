package main

import (
	"context"
	"os"
	"strings"

	"github.com/desertthunder/gigs/internal/repositories"
	"github.com/desertthunder/gigs/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates the config file when missing, initializes the database, runs migrations
// and seeds the collection on first run.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}
	config.ApplyEnv()

	if r.store != nil {
		r.Close()
	}
	r.config = config

	r.logger.Info("initializing database", "path", config.Database.Path)
	st, err := r.openStore()
	if err != nil {
		return err
	}

	if cmd.Bool("reset") {
		if err := st.Reset(); err != nil {
			return err
		}
	}

	keys, err := repositories.NewBlobRepository(r.db).Keys()
	if err != nil {
		return err
	}

	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	r.writePlain("✓ Database ready at %s with %d concerts\n", config.Database.Path, st.Len())
	return r.writePlain("  stored keys: %s\n", strings.Join(keys, ", "))
}
