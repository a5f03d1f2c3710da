// Package transform reshapes filtered listings: field projection and renaming,
// then recursive removal of empty values.
package transform

import (
	"zexplorer/internal/jsonval"
	"zexplorer/internal/logger"
)

// Rename moves a top-level field from one key to another.
type Rename struct {
	From string
	To   string
}

// Mapper projects and renames record fields.
type Mapper struct {
	log *logger.Logger
}

// NewMapper creates a field mapper.
func NewMapper(log *logger.Logger) *Mapper {
	return &Mapper{log: log}
}

// MapFields projects each record onto includeFields (all fields when empty)
// and then applies renames in order. Input records are never modified.
func (m *Mapper) MapFields(records []*jsonval.Object, renames []Rename, includeFields []string) []*jsonval.Object {
	out := make([]*jsonval.Object, 0, len(records))

	for _, rec := range records {
		base := m.project(rec, includeFields)
		rename(base, renames)
		out = append(out, base)
	}

	included := any("all")
	if len(includeFields) > 0 {
		included = includeFields
	}

	m.log.Info("Mapped records", "count", len(out), "include_fields", included, "renames", len(renames))

	return out
}

// project copies the requested fields. A field present as a literal key is
// copied as-is; otherwise it is read as a dotted path and, when non-null,
// rebuilt under the same nested path.
func (m *Mapper) project(rec *jsonval.Object, includeFields []string) *jsonval.Object {
	if len(includeFields) == 0 {
		return rec.Clone()
	}

	result := jsonval.NewObject()

	for _, field := range includeFields {
		if v, ok := rec.Get(field); ok {
			result.Set(field, v)
			continue
		}

		v := jsonval.Lookup(rec, field)
		if v.IsNull() {
			continue
		}

		setPath(result, jsonval.SplitPath(field), v)
	}

	return result
}

// setPath stores v at the nested path inside dst, creating objects along the
// way. Existing intermediate objects are cloned before being written to,
// since they may be shared with the source record.
func setPath(dst *jsonval.Object, parts []string, v jsonval.Value) {
	target := dst

	for _, part := range parts[:len(parts)-1] {
		child, ok := target.At(part).AsObject()
		if ok {
			child = child.Clone()
		} else {
			child = jsonval.NewObject()
		}

		target.Set(part, jsonval.ObjectOf(child))
		target = child
	}

	target.Set(parts[len(parts)-1], v)
}

// rename applies top-level renames in order; nested keys are not renamed.
func rename(rec *jsonval.Object, renames []Rename) {
	for _, r := range renames {
		v, ok := rec.Get(r.From)
		if !ok {
			continue
		}

		rec.Delete(r.From)
		rec.Set(r.To, v)
	}
}
