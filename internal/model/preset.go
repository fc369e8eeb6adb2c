package model

// Preset is a named snapshot. The name is unique within the collection.
type Preset struct {
	Name string `json:"name" yaml:"name"`
	FormSnapshot `yaml:",inline"`
}
