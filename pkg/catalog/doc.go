// Package catalog holds the ordered field definitions that drive both the
// rendered inputs and the validation rules. A catalog is plain data: the
// default discharge catalog lives in Default, alternative catalogs can be
// loaded from YAML or JSON documents with a top-level `fields` list. Consumers
// must iterate the slice in order and build one rule or one input per entry.
package catalog
