package visual

import (
	"fmt"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playaxis/internal/domain/item"
	"github.com/osa030/playaxis/internal/domain/settings"
	"github.com/osa030/playaxis/internal/host"
)

// isDataReady checks that the update carries a category column with a source.
func isDataReady(opts host.UpdateOptions) bool {
	if len(opts.DataViews) == 0 {
		return false
	}
	categorical := opts.DataViews[0].Categorical
	if categorical == nil || len(categorical.Categories) == 0 {
		return false
	}
	return categorical.Categories[0].Source != nil
}

// transform converts a ready update into a view model.
func transform(opts host.UpdateOptions, builder host.SelectionIDBuilder) ViewModel {
	view := opts.DataViews[0]
	column := &view.Categorical.Categories[0]

	items := make([]item.Item, len(column.Values))
	for i, value := range column.Values {
		items[i] = item.Item{
			Label: categoryLabel(value),
			Token: builder.CreateSelectionID(column, i),
		}
	}

	return ViewModel{
		Items:    item.NewSequence(items),
		Settings: parseSettings(view.Metadata.Objects),
	}
}

// parseSettings reads settings from the property bag. Undecodable
// properties fall back to their defaults one by one; out-of-range values
// are clamped.
func parseSettings(objects host.Objects) settings.Settings {
	s, err := settings.FromObjects(objects)
	if err != nil {
		zlog.Warn().Err(err).Msg("visual: undecodable settings properties use defaults")
	}

	if err := s.Validate(); err != nil {
		zlog.Warn().Err(err).Msg("visual: settings out of range, clamping")
		return s.Normalize()
	}
	return s
}

func categoryLabel(value any) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprint(value)
}
