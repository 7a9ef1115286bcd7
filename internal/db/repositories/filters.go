package repositories

import "strings"

// filter is one optional equality predicate against a qualified column.
// Absent values never reach this type; callers append a filter only when the
// operator supplied the field.
type filter struct {
	column string
	value  any
}

// appendFilter adds an equality predicate when value is present.
func appendFilter(filters []filter, column, value string) []filter {
	if value == "" {
		return filters
	}
	return append(filters, filter{column: column, value: value})
}

// whereClause folds the present filters into a conjunction of equality
// predicates plus the matching positional parameter sequence. Values are
// bound, never interpolated into the query text.
func whereClause(filters []filter) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}

	predicates := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for _, f := range filters {
		predicates = append(predicates, f.column+" = ?")
		args = append(args, f.value)
	}

	return " WHERE " + strings.Join(predicates, " AND "), args
}
