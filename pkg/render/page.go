package render

import (
	"github.com/goliatone/go-notegen/pkg/catalog"
	"github.com/goliatone/go-notegen/pkg/form"
)

// Page is the renderer-agnostic snapshot of one form session.
type Page struct {
	Fields    []FieldView `json:"fields"`
	Valid     bool        `json:"valid"`
	Submitted bool        `json:"submitted"`
	Dirty     bool        `json:"dirty"`
	Narrative string      `json:"narrative,omitempty"`
}

// FieldView is one control as the page shows it. Error is empty until the
// field has been touched.
type FieldView struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Kind        string       `json:"kind"`
	Format      string       `json:"format"`
	Placeholder string       `json:"placeholder,omitempty"`
	Optional    bool         `json:"optional"`
	Multiline   bool         `json:"multiline"`
	Lines       int          `json:"lines"`
	Value       string       `json:"value"`
	Error       string       `json:"error,omitempty"`
	Options     []OptionView `json:"options,omitempty"`
}

// OptionView is a single select option.
type OptionView struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// NewPage snapshots state. narrative is shown as-is; callers pass an empty
// string while the form is invalid.
func NewPage(state *form.State, narrative string, submitted bool) Page {
	fields := state.Fields()
	page := Page{
		Fields:    make([]FieldView, 0, len(fields)),
		Valid:     state.Valid(),
		Submitted: submitted,
		Dirty:     state.Dirty(),
	}
	if page.Valid {
		page.Narrative = narrative
	}

	for _, field := range fields {
		page.Fields = append(page.Fields, newFieldView(field, state))
	}
	return page
}

func newFieldView(field catalog.FieldSpec, state *form.State) FieldView {
	value := state.Value(field.ID)
	view := FieldView{
		ID:          field.ID,
		Label:       field.Label,
		Kind:        string(field.EffectiveKind()),
		Format:      string(field.EffectiveFormat()),
		Placeholder: field.Placeholder,
		Optional:    field.Optional,
		Multiline:   field.Multiline(),
		Lines:       field.Lines,
		Value:       value,
		Error:       state.VisibleError(field.ID),
	}
	if field.EffectiveKind() == catalog.KindSelect {
		view.Options = make([]OptionView, 0, len(field.Options))
		for _, option := range field.Options {
			view.Options = append(view.Options, OptionView{
				Value:    option,
				Selected: option == value,
			})
		}
	}
	return view
}
