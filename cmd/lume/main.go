package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lumeaddon/lume/internal/assemble"
	"github.com/lumeaddon/lume/internal/config"
	"github.com/lumeaddon/lume/internal/hass"
	"github.com/lumeaddon/lume/internal/models"
)

// one-shot generator: profile json in, package yaml out
func main() {

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
	})

	if len(os.Args) < 2 {
		logger.Fatal("usage: lume <profile.json> [output.yaml]")
	}

	fileBytes, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Fatal(err)
	}

	var p models.Profile
	if err := json.Unmarshal(fileBytes, &p); err != nil {
		logger.Fatalf("could not parse profile: %s", err)
	}

	assembler := assemble.NewAssembler(logger, hass.NewNames(config.EntityPrefix))
	doc, err := assembler.Assemble(p)
	if err != nil {
		logger.Fatal(err)
	}

	if len(os.Args) > 2 {
		if err := os.WriteFile(os.Args[2], doc, 0o644); err != nil {
			logger.Fatal(err)
		}
		logger.Info("wrote package document", "path", os.Args[2])
		return
	}

	fmt.Print(string(doc))
}
