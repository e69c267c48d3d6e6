package main

import (
	"github.com/thoth-station/thoth-ocp/cmd"
	"github.com/thoth-station/thoth-ocp/pkg/env"
	"github.com/thoth-station/thoth-ocp/pkg/log"
)

func main() {
	if err := env.Process(); err != nil {
		log.Fatal("environment failure", "error", err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal("thoth-ocp failure", "error", err)
	}
}
