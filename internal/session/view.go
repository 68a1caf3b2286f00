package session

import (
	"slices"

	"github.com/davetashner/saveactions/internal/action"
)

// ActionState is the presented state of one action.
type ActionState struct {
	Name     action.Action `json:"name"`
	Text     string        `json:"text"`
	Group    action.Group  `json:"group"`
	Selected bool          `json:"selected"`
	Enabled  bool          `json:"enabled"`
}

// View is a read-only rendering of a session's working copy.
type View struct {
	Scope             string        `json:"scope"`
	Path              string        `json:"path"`
	Status            string        `json:"status"`
	Actions           []ActionState `json:"actions"`
	Exclusions        []string      `json:"exclusions"`
	Inclusions        []string      `json:"inclusions"`
	QuickLists        []string      `json:"quick_lists"`
	ConfigurationPath string        `json:"configuration_path,omitempty"`
}

// View renders the session's working copy. Actions are listed by group in
// presentation order, limited to the session's scope.
func (s *Session) View() View {
	r := s.Reconciler
	w := r.Snapshot()
	v := View{
		Scope:             s.Scope.String(),
		Path:              s.Path,
		Status:            r.Status().String(),
		Exclusions:        nonNil(w.Exclusions()),
		Inclusions:        nonNil(w.Inclusions()),
		QuickLists:        nonNil(w.QuickLists()),
		ConfigurationPath: w.ConfigurationPath(),
	}
	inScope := r.Actions()
	for _, g := range action.Groups() {
		for _, a := range action.InGroup(g) {
			if !slices.Contains(inScope, a) {
				continue
			}
			v.Actions = append(v.Actions, ActionState{
				Name:     a,
				Text:     a.Text(),
				Group:    g,
				Selected: w.IsSelected(a),
				Enabled:  r.IsEnabled(a),
			})
		}
	}
	return v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
