package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
	"github.com/DjordjeVuckovic/logicka/pkg/schema"
)

func main() {
	var (
		outputDir = flag.String("output", "api", "Output directory for generated schemas")
		baseID    = flag.String("base-id", schema.DefaultBaseID, "Prefix of the generated $id")
	)
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	generator := schema.NewGenerator(schema.WithBaseID(*baseID))

	schemaJSON, err := generator.GenerateJSONSchema(truthtable.Row{})
	if err != nil {
		log.Fatalf("Failed to generate schema for truth table row: %v", err)
	}

	jsonFile := filepath.Join(*outputDir, "truth-table-row.json")
	if err := os.WriteFile(jsonFile, []byte(schemaJSON+"\n"), 0644); err != nil {
		log.Fatalf("Failed to write JSON schema: %v", err)
	}

	fmt.Printf("Generated JSON schema: %s\n", jsonFile)
}
