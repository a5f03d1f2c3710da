package transform

import (
	"zexplorer/internal/jsonval"
	"zexplorer/internal/logger"
	"zexplorer/pkg/utils"
)

// Cleanser strips empty values from records.
type Cleanser struct {
	log *logger.Logger
}

// NewCleanser creates a cleanser.
func NewCleanser(log *logger.Logger) *Cleanser {
	return &Cleanser{log: log}
}

// Clean removes null, blank-string, empty-array and empty-object values at
// every depth. Containers emptied by the removal are removed too. With
// stripEmpty false the record is returned unchanged. The result is never nil
// when stripping.
func (c *Cleanser) Clean(record *jsonval.Object, stripEmpty bool) *jsonval.Object {
	if !stripEmpty {
		return record
	}

	cleaned := cleanValue(jsonval.ObjectOf(record))

	obj, ok := cleaned.AsObject()
	if !ok || obj.Len() == 0 {
		c.log.Debug("Record became empty after cleansing")
		return jsonval.NewObject()
	}

	return obj
}

// CleanAll cleans every record and drops those left with no fields.
func (c *Cleanser) CleanAll(records []*jsonval.Object, stripEmpty bool) []*jsonval.Object {
	out := make([]*jsonval.Object, 0, len(records))

	for _, rec := range records {
		cleaned := c.Clean(rec, stripEmpty)
		if cleaned.Len() == 0 {
			continue
		}

		out = append(out, cleaned)
	}

	if dropped := len(records) - len(out); dropped > 0 {
		c.log.Debug("Dropped records left empty by cleansing", "count", dropped)
	}

	return out
}

func cleanValue(v jsonval.Value) jsonval.Value {
	switch v.Kind() {
	case jsonval.KindObject:
		obj, _ := v.AsObject()
		out := jsonval.NewObject()

		obj.Range(func(key string, child jsonval.Value) bool {
			if cleaned := cleanValue(child); !isEmpty(cleaned) {
				out.Set(key, cleaned)
			}

			return true
		})

		return jsonval.ObjectOf(out)
	case jsonval.KindArray:
		items, _ := v.AsArray()
		out := make([]jsonval.Value, 0, len(items))

		for _, item := range items {
			if cleaned := cleanValue(item); !isEmpty(cleaned) {
				out = append(out, cleaned)
			}
		}

		return jsonval.ArrayOf(out)
	default:
		return v
	}
}

func isEmpty(v jsonval.Value) bool {
	switch v.Kind() {
	case jsonval.KindNull:
		return true
	case jsonval.KindString:
		s, _ := v.AsString()
		return utils.IsBlank(s)
	case jsonval.KindArray:
		items, _ := v.AsArray()
		return len(items) == 0
	case jsonval.KindObject:
		obj, _ := v.AsObject()
		return obj.Len() == 0
	default:
		return false
	}
}
