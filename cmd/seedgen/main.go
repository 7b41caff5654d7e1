// Command seedgen writes sample gzipped JSON-lines seed files for the
// catalogue bootstrap (SEED_FILES).
package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type seedRecord struct {
	Sabor  string `json:"sabor"`
	Precio string `json:"precio"`
}

func main() {
	dataDir := "data/seeds"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	seeds := map[string][]seedRecord{
		"clasicos.jsonl.gz": {
			{Sabor: "vainilla", Precio: "3.50"},
			{Sabor: "chocolate", Precio: "3.50"},
			{Sabor: "fresa", Precio: "3.25"},
			{Sabor: "dulce de leche", Precio: "3.75"},
		},
		"temporada.jsonl.gz": {
			{Sabor: "mango", Precio: "4.00"},
			{Sabor: "maracuya", Precio: "4.25"},
			{Sabor: "limon", Precio: "3.00"},
		},
	}

	for filename, records := range seeds {
		filePath := filepath.Join(dataDir, filename)

		if err := createSeedFile(filePath, records); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d helados\n", filePath, len(records))
	}

	fmt.Println("\nLoad them at startup with:")
	fmt.Printf("  SEED_FILES=%s,%s\n",
		filepath.Join(dataDir, "clasicos.jsonl.gz"),
		filepath.Join(dataDir, "temporada.jsonl.gz"))
}

func createSeedFile(filePath string, records []seedRecord) (err error) {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	gzipWriter := gzip.NewWriter(file)
	encoder := json.NewEncoder(gzipWriter)

	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	return gzipWriter.Close()
}
