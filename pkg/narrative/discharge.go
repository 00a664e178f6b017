package narrative

import _ "embed"

// Discharge is the discharge note template.
//
//go:embed templates/discharge.hbs
var Discharge string
