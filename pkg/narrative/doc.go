// Package narrative compiles the note template and renders it against field
// values. Templates are Handlebars, evaluated by raymond, restricted to:
//
//	{{name}}                 substitute a value (escaped under EscapeHTML)
//	{{{name}}}               substitute a value, never escaped
//	{{! comment }}           dropped from the output
//	{{#helper arg}}...{{/helper}}
//	                         block helper; arg is a field name or a quoted literal
//
// Block helpers are supplied to Compile explicitly and registered on that
// template alone. DefaultHelpers provides switch/case: a switch block binds
// its value in the block's private data frame and each nested case renders
// its body when its literal equals that value exactly. An unmatched switch
// renders nothing.
//
// Compile walks the parsed template once to reject anything outside that
// subset and to collect the field names it reads. A compiled Template is
// immutable, so one Template can be shared across goroutines.
package narrative
