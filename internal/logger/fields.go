package logger

// Field names used in structured log lines.
const (
	FieldStep     = "step"
	FieldQuery    = "query"
	FieldCategory = "category"
	FieldValue    = "value"
	FieldTags     = "tags"
	FieldBefore   = "before"
	FieldAfter    = "after"
	FieldCount    = "count"
	FieldPath     = "path"
	FieldFormat   = "format"
	FieldLocale   = "locale"
)
