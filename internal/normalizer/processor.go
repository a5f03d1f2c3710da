package normalizer

import (
	"fmt"

	"zexplorer/internal/config"
	"zexplorer/internal/filter"
	"zexplorer/internal/jsonval"
	"zexplorer/internal/logger"
	"zexplorer/internal/transform"
)

// Processor runs the full pipeline: normalize, filter, project, clean.
type Processor struct {
	settings   *config.Settings
	log        *logger.Logger
	validator  *Validator
	normalizer *Normalizer
	filters    *filter.Engine
	mapper     *transform.Mapper
	cleanser   *transform.Cleanser
}

// NewProcessor creates a processor for the given settings. Each stage logs
// through its own component logger derived from log.
func NewProcessor(settings *config.Settings, log *logger.Logger) *Processor {
	return &Processor{
		settings:   settings,
		log:        log.Component("pipeline"),
		validator:  NewValidator(),
		normalizer: NewNormalizer(log.Component("normalizer")),
		filters:    filter.NewEngine(log.Component("filters")),
		mapper:     transform.NewMapper(log.Component("field_mapper")),
		cleanser:   transform.NewCleanser(log.Component("data_cleanser")),
	}
}

// Process transforms a decoded input document into output records.
func (p *Processor) Process(input jsonval.Value) ([]*jsonval.Object, error) {
	// 1. Validate the input shape
	raw, err := p.validator.Validate(input)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	p.log.Info("Starting pipeline", "raw_listings", len(raw))

	// 2. Normalize
	normalized := p.normalizer.Normalize(raw)
	for i, rec := range normalized {
		if err := p.validator.ValidateListing(rec); err != nil {
			return nil, fmt.Errorf("normalized listing %d: %w", i, err)
		}
	}

	p.log.Info("Parsed normalized listings", "count", len(normalized))

	// 3. Filter, sort, limit
	f := p.settings.Filters
	filtered := p.filters.Apply(normalized, filter.Options{
		MinPrice:    f.MinPrice,
		MaxPrice:    f.MaxPrice,
		MinBedrooms: f.MinBedrooms,
		SortBy:      f.SortBy,
		Order:       f.Order,
		Limit:       f.Limit,
	})
	p.log.Info("After filtering, listings remain", "count", len(filtered))

	// 4. Project and rename
	t := p.settings.Transform
	mapped := p.mapper.MapFields(filtered, t.FieldMapping, t.IncludeFields)

	// 5. Clean
	cleaned := p.cleanser.CleanAll(mapped, t.StripEmpty)
	p.log.Info("Cleaned listings", "count", len(cleaned))

	return cleaned, nil
}
