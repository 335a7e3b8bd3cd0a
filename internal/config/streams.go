package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/finlens/finance-calculator/internal/domain"
)

// streamsFile is the YAML shape for a household's income streams.
type streamsFile struct {
	Streams []domain.IncomeStream `yaml:"streams"`
}

// LoadStreamsFromFile loads and validates a household's income streams. Each
// load replaces any previously loaded collection wholesale; there are no
// partial updates.
func (rp *RulesParser) LoadStreamsFromFile(filename string) ([]domain.IncomeStream, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file streamsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rp.ValidateStreams(file.Streams); err != nil {
		return nil, fmt.Errorf("streams validation failed: %w", err)
	}

	return file.Streams, nil
}

// ValidateStreams checks each stream's fields and ID uniqueness.
func (rp *RulesParser) ValidateStreams(streams []domain.IncomeStream) error {
	seen := make(map[string]bool, len(streams))
	for i, stream := range streams {
		if stream.ID == "" {
			return fmt.Errorf("%w: stream %d has no id", domain.ErrInvalidConfiguration, i)
		}
		if seen[stream.ID] {
			return fmt.Errorf("%w: duplicate stream id %q", domain.ErrInvalidConfiguration, stream.ID)
		}
		seen[stream.ID] = true
		if stream.Amount.IsNegative() {
			return fmt.Errorf("%w: stream %q amount cannot be negative", domain.ErrInvalidConfiguration, stream.ID)
		}
		if _, ok := stream.Frequency.PeriodsPerYear(); !ok {
			return fmt.Errorf("%w: stream %q has unknown frequency %q", domain.ErrInvalidConfiguration, stream.ID, stream.Frequency)
		}
		if !stream.Type.IsValid() {
			return fmt.Errorf("%w: stream %q has unknown type %q", domain.ErrInvalidConfiguration, stream.ID, stream.Type)
		}
		if stream.StabilityRating < 1 || stream.StabilityRating > 5 {
			return fmt.Errorf("%w: stream %q stability rating must be 1..5", domain.ErrInvalidConfiguration, stream.ID)
		}
	}
	return nil
}
