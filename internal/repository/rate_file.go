package repository

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"investr/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed rates.yaml
var defaultRatesYAML []byte

type rateFile struct {
	Bands map[int]map[int]float64 `yaml:"bands"`
}

// FileRateSource reads the rate table from a YAML file, or from the table
// compiled into the binary when path is empty.
type FileRateSource struct {
	path string
}

func NewFileRateSource(path string) *FileRateSource {
	return &FileRateSource{path: path}
}

func (s *FileRateSource) Name() string {
	if s.path == "" {
		return "embedded"
	}
	return "file:" + s.path
}

func (s *FileRateSource) LoadRates(_ context.Context) (models.RateTable, error) {
	data := defaultRatesYAML
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read rate file: %w", err)
		}
	}
	return ParseRateTable(data)
}

// ParseRateTable decodes a rates YAML document and rejects unknown bands and
// non-positive terms or rates.
func ParseRateTable(data []byte) (models.RateTable, error) {
	var file rateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rate file: %w", err)
	}

	table := make(models.RateTable, len(file.Bands))
	for rawBand, terms := range file.Bands {
		band := models.Band(rawBand)
		if !band.Valid() {
			return nil, fmt.Errorf("unknown LTV band %d", rawBand)
		}
		table[band] = make(map[int]float64, len(terms))
		for term, rate := range terms {
			if term <= 0 || rate <= 0 {
				return nil, fmt.Errorf("band %d: invalid term %d or rate %.2f", rawBand, term, rate)
			}
			table[band][term] = rate
		}
	}
	return table, nil
}
