package main

import (
	"encoding/base64"
	"errors"
	"log"
	"time"

	v1 "hrmslite.com/hrms/hrms/v1"
	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/roster"
	"hrmslite.com/hrms/security"
	"hrmslite.com/hrms/web/handlers"
)

func main() {
	var cfg config.Web
	if err := config.Load(&cfg); err != nil {
		log.Fatal(err)
	}

	secret, err := cfg.Secret()
	if errors.Is(err, config.ErrNoSessionSecret) {
		generated, genErr := security.NewSecret(32)
		if genErr != nil {
			log.Fatal(genErr)
		}
		secret, _ = base64.StdEncoding.DecodeString(generated)
		log.Print("HRMS_SESSION_SECRET not set, sessions will not survive a restart")
	} else if err != nil {
		log.Fatal("Failed to decode session secret:", err)
	}

	log.Printf("using API: %s", cfg.BaseURL())
	client := v1.NewHrmsClient(cfg.BaseURL(), cfg.APIToken)

	store := handlers.NewStore(handlers.SessionTTL)
	go func() {
		for range time.Tick(time.Minute) {
			if n := store.Sweep(); n > 0 {
				log.Printf("dropped %d idle sessions", n)
			}
		}
	}()

	r := handlers.NewRouter(store, roster.NewClientService(client), secret)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
