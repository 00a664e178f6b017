package catalog

// Default returns the discharge note catalog. A fresh slice is returned on
// every call so callers cannot mutate a shared copy.
func Default() []FieldSpec {
	return []FieldSpec{
		{
			ID:      "gender",
			Label:   "Patient Gender",
			Kind:    KindSelect,
			Options: []string{"Male", "Female"},
		},
		{
			ID:     "age",
			Label:  "Patient Age",
			Format: FormatInteger,
		},
		{
			ID:          "admit",
			Label:       "Admit Date",
			Placeholder: "mm/dd/yyyy",
			Format:      FormatShortDate,
		},
		{
			ID:          "discharge",
			Label:       "Discharge Date",
			Placeholder: "mm/dd/yyyy",
			Format:      FormatShortDate,
		},
		{
			ID:    "symptoms",
			Label: "Symptoms",
			Lines: 3,
		},
		{
			ID:    "history",
			Label: "Patient Health History Includes",
			Lines: 3,
		},
		{
			ID:    "labs",
			Label: "Labs Revealed",
		},
		{
			ID:       "physician_notes",
			Label:    "Physician Noted",
			Optional: true,
		},
		{
			ID:    "admission_hp",
			Label: "Admission H&P",
		},
		{
			ID:    "creatine",
			Label: "Creatine Range",
		},
	}
}
