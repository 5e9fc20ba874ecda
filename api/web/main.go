package main

import (
	"context"
	"log"

	"hrmslite.com/hrms/api/model"
	"hrmslite.com/hrms/api/web/handlers"
	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/infrastructure/communication"
	"hrmslite.com/hrms/infrastructure/devops"
)

func main() {
	var cfg config.API
	if err := config.Load(&cfg); err != nil {
		log.Fatal(err)
	}

	databaseURL := cfg.DatabaseURL
	if cfg.SSMDatabases != "" {
		ctx := context.Background()
		client, err := devops.NewSSMClient(ctx)
		if err != nil {
			log.Fatal(err)
		}
		entries, err := devops.LoadDBConfig(ctx, client, cfg.SSMDatabases)
		if err != nil {
			log.Fatal(err)
		}
		if databaseURL, err = devops.SelectDatabase(entries, cfg.Database); err != nil {
			log.Fatal(err)
		}
		log.Printf("using database %q from SSM parameter %s", cfg.Database, cfg.SSMDatabases)
	}

	dm, err := core.Open(databaseURL, core.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()
	log.Printf("using %s database", dm.Dialect)

	if err := dm.Migrate(model.All()...); err != nil {
		log.Fatal(err)
	}

	r := handlers.NewRouter(dm, communication.ConnectSlack(cfg.Slack))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
