package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/feedreader/pkg/config"
)

func main() {
	// generate schema for Config
	schema := config.GenerateSchema()

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}

	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write schema file: %v", err)
	}

	fmt.Printf("Schema generated for %s at %s\n", "feedreader config", outputPath)
}
