package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"heladeria/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped seed files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a gzipped seed file with one {"sabor","precio"} object per line.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Helado, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	helados, err := readGzipRecords(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read seed file")
		return nil, fmt.Errorf("failed to read seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("helados_loaded", len(helados)).
		Msg("seed file loaded successfully")

	return helados, nil
}

// readGzipRecords decodes gzipped JSON lines. Blank lines are skipped; a
// line missing sabor or precio fails the whole file.
func readGzipRecords(ctx context.Context, r io.Reader) ([]model.Helado, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	var helados []model.Helado

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		if lineNo%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req model.HeladoRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if req.Sabor == nil || req.Precio == nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, model.ErrMissingField)
		}

		helados = append(helados, model.Helado{Sabor: *req.Sabor, Precio: *req.Precio})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning records: %w", err)
	}

	return helados, nil
}
