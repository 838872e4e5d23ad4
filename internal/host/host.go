// Package host defines the contracts the play axis consumes from the visual host.
package host

// SelectionID is an opaque handle the host hands out for one category value.
// The play axis holds it and passes it back to the host, never inspecting it.
type SelectionID interface {
	// Key returns a stable identity, used for logging and comparison.
	Key() string
}

// SelectionManager applies cross-filtering in the host.
type SelectionManager interface {
	// Select applies the filter for one value, replacing any prior filter.
	Select(id SelectionID)
	// Clear removes the filter.
	Clear()
}

// SelectionIDBuilder is the host's selection token factory.
type SelectionIDBuilder interface {
	CreateSelectionID(column *CategoryColumn, index int) SelectionID
}

// Objects is the host property bag: group name -> property name -> value.
type Objects map[string]map[string]any

// UpdateOptions is the payload of a host update notification.
type UpdateOptions struct {
	DataViews []DataView
}

// DataView is one query result delivered by the host.
type DataView struct {
	Metadata    Metadata
	Categorical *Categorical
}

// Metadata carries the persisted format-pane objects of the visual.
type Metadata struct {
	Objects Objects
}

// Categorical holds the category columns of a data view.
type Categorical struct {
	Categories []CategoryColumn
}

// CategoryColumn is an ordered, named sequence of category values.
type CategoryColumn struct {
	Source *ColumnSource
	Values []any
}

// ColumnSource describes the field bound to a column.
type ColumnSource struct {
	DisplayName string
	QueryName   string
}
