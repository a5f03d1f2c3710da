// Package normalizer turns loosely-shaped listing records into canonical
// listings and runs them through the filter, projection and cleansing stages.
package normalizer

import (
	"errors"
	"fmt"

	"zexplorer/internal/jsonval"
	"zexplorer/internal/logger"
	"zexplorer/internal/models"
)

// ErrRecordPanic wraps a panic recovered while normalizing one record.
var ErrRecordPanic = errors.New("unexpected failure normalizing listing")

// transformFunc converts one raw record into a listing.
type transformFunc func(raw *jsonval.Object) (*models.Listing, error)

// Normalizer converts batches of raw records.
type Normalizer struct {
	transform transformFunc
	log       *logger.Logger
}

// NewNormalizer creates a normalizer logging through log.
func NewNormalizer(log *logger.Logger) *Normalizer {
	return &Normalizer{
		transform: NewTransformer().Transform,
		log:       log,
	}
}

// Normalize converts raw records into canonical listing records, in input
// order. Entries that are not objects, lack an identifier or fail
// unexpectedly are logged and skipped; the batch always completes.
func (n *Normalizer) Normalize(raw []jsonval.Value) []*jsonval.Object {
	out := make([]*jsonval.Object, 0, len(raw))

	for idx, item := range raw {
		obj, ok := item.AsObject()
		if !ok {
			n.log.Warn("Skipping non-object listing", "index", idx, "kind", item.Kind().String())
			continue
		}

		listing, err := n.normalizeOne(obj)

		switch {
		case errors.Is(err, ErrMissingIdentifier):
			n.log.Warn("Listing missing zpid, skipping", "index", idx)
			continue
		case err != nil:
			n.log.Error("Failed to normalize listing", "index", idx, "error", err)
			continue
		}

		n.log.Debug("Normalized listing", "zpid", listing.ZPID)
		out = append(out, listing.Record())
	}

	return out
}

// normalizeOne isolates a single record so a panic in its field handling
// cannot abort the batch.
func (n *Normalizer) normalizeOne(raw *jsonval.Object) (listing *models.Listing, err error) {
	defer func() {
		if r := recover(); r != nil {
			listing = nil
			err = fmt.Errorf("%w: %v", ErrRecordPanic, r)
		}
	}()

	return n.transform(raw)
}
