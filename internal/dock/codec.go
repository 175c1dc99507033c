package dock

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/geometry"
)

// ErrOptionsMismatch is returned by Deserialize when the persisted options
// differ from the window's. Configuration mismatches are not silently
// reconciled.
var ErrOptionsMismatch = errors.New("persisted window options differ")

// WindowState is the persisted main-window document. The overlay is
// deliberately absent: popups are perishable UI state, not durable
// configuration.
type WindowState struct {
	Options     WindowOptions       `json:"options"`
	Geometry    geometry.Rect       `json:"geometry"`
	Visible     bool                `json:"visible"`
	Name        string              `json:"uniqueName"`
	ScreenIndex int                 `json:"screenIndex"`
	ScreenSize  geometry.Size       `json:"screenSize"`
	Layout      json.RawMessage     `json:"layout,omitempty"`
	Affinities  []string            `json:"affinities,omitempty"`
	SideBars    map[string][]string `json:"sideBars,omitempty"`
}

// Serialize captures the window's durable state: options, geometry,
// identity, the drop area's own document and, per edge, the ordered panel
// names of each non-empty bar.
func (w *MainWindow) Serialize() WindowState {
	state := WindowState{
		Options:     w.options,
		Geometry:    w.geometry,
		Visible:     w.visible,
		Name:        w.name,
		ScreenIndex: w.screenIndex,
		ScreenSize:  w.screenSize,
		Layout:      w.dropArea.Serialize(),
	}
	if len(w.affinities) > 0 {
		state.Affinities = append([]string(nil), w.affinities...)
	}
	for _, edge := range geometry.Edges() {
		bar := w.SideBar(edge)
		if bar == nil || bar.IsEmpty() {
			continue
		}
		if state.SideBars == nil {
			state.SideBars = make(map[string][]string)
		}
		state.SideBars[edge.String()] = bar.Names()
	}
	return state
}

// Deserialize restores the window from a persisted document. An options
// mismatch fails outright before anything changes. Differing affinities are
// overwritten with a warning. The drop-area restore result is propagated as
// this call's result; the edge bars are repopulated either way, skipping
// names the registry cannot resolve. The overlay is never restored.
func (w *MainWindow) Deserialize(state WindowState) error {
	if state.Options != w.options {
		w.logger.Warn().
			Uint32("persisted", uint32(state.Options)).
			Uint32("current", uint32(w.options)).
			Msg("refusing to restore window with different options")
		return fmt.Errorf("restore %q: %w", w.name, ErrOptionsMismatch)
	}

	if !equalStrings(w.affinities, cleanAffinities(state.Affinities)) {
		w.logger.Warn().Strs("from", w.affinities).Strs("to", state.Affinities).
			Msg("affinities changed by restored layout")
		w.affinities = cleanAffinities(state.Affinities)
	}

	layoutErr := w.dropArea.Deserialize(state.Layout)

	// Repopulate the side bars. The overlay panel lives in a bar, so it is
	// cleared before the bars are.
	w.ClearSideBarOverlay()
	for _, edge := range geometry.Edges() {
		if bar := w.SideBar(edge); bar != nil {
			bar.clear()
		}
	}
	for _, edge := range geometry.Edges() {
		bar := w.SideBar(edge)
		if bar == nil {
			continue
		}
		for _, name := range state.SideBars[edge.String()] {
			p := w.registry.Lookup(name)
			if p == nil {
				w.logger.Warn().Str("panel", name).Str("edge", edge.String()).
					Msg("unknown panel in persisted side bar, skipping")
				continue
			}
			bar.add(p)
			p.setMode(PlacementInSideBar)
		}
	}

	return layoutErr
}
