// Package demohost is a stand-alone visual host: it feeds configured
// categories to the visual and logs the cross-filter it receives.
package demohost

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playaxis/internal/host"
)

// SelectionID identifies one category value by a name-based UUID.
type SelectionID struct {
	ID    uuid.UUID
	Field string
	Value any
}

// Key returns the UUID string.
func (s SelectionID) Key() string {
	return s.ID.String()
}

// String returns a human-readable form for logs.
func (s SelectionID) String() string {
	return fmt.Sprintf("%s=%v", s.Field, s.Value)
}

// IDBuilder creates selection IDs that are stable for a field, index and value.
type IDBuilder struct{}

// NewIDBuilder creates a selection ID builder.
func NewIDBuilder() *IDBuilder {
	return &IDBuilder{}
}

// CreateSelectionID implements host.SelectionIDBuilder.
func (b *IDBuilder) CreateSelectionID(column *host.CategoryColumn, index int) host.SelectionID {
	field := ""
	if column.Source != nil {
		field = column.Source.QueryName
	}
	var value any
	if index >= 0 && index < len(column.Values) {
		value = column.Values[index]
	}
	name := fmt.Sprintf("%s/%d/%v", field, index, value)
	return SelectionID{
		ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		Field: field,
		Value: value,
	}
}

// Selection records the current cross-filter and logs every change.
type Selection struct {
	mu       sync.Mutex
	instance string
	current  host.SelectionID
	count    int
}

// NewSelection creates an empty selection manager.
func NewSelection() *Selection {
	return &Selection{instance: uuid.New().String()}
}

// Select implements host.SelectionManager.
func (s *Selection) Select(id host.SelectionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = id
	s.count++

	zlog.Info().
		Str("instance", s.instance).
		Str("id", id.Key()).
		Str("value", fmt.Sprint(id)).
		Msg("selection: filter applied")
}

// Clear implements host.SelectionManager.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil

	zlog.Info().Str("instance", s.instance).Msg("selection: filter cleared")
}

// Current returns the active filter, or nil.
func (s *Selection) Current() host.SelectionID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Count returns how many filters were applied.
func (s *Selection) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// UpdateOptions builds a host update carrying one category column.
func UpdateOptions(field string, values []any, objects host.Objects) host.UpdateOptions {
	return host.UpdateOptions{
		DataViews: []host.DataView{
			{
				Metadata: host.Metadata{Objects: objects},
				Categorical: &host.Categorical{
					Categories: []host.CategoryColumn{
						{
							Source: &host.ColumnSource{DisplayName: field, QueryName: "Table." + field},
							Values: values,
						},
					},
				},
			},
		},
	}
}
