package main

import (
	"log"
	"os"

	"hrmslite.com/hrms/config"
)

func main() {
	var cfg config.Client
	if err := config.Load(&cfg); err != nil {
		log.Fatal(err)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
