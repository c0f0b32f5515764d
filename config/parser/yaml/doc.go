// Package yaml decodes configuration trees into typed Go values.
//
// Decoder renders a node tree loaded by config/loader/yaml back to YAML and lets
// github.com/goccy/go-yaml unmarshal the value found at a colon separated path.
// Scalars are kept as strings by the loader, so the target field types decide
// how "8080" or "true" are read.
//
//	loader := loaderyaml.NewLoader()
//	root, _ := loader.Parse(data)
//
//	var port int
//	err := yaml.NewDecoder(loader).Decode(root, &port, "servers:0:port")
//
// Paths map to goccy YAML paths: "" selects the whole document, "api:permissions"
// becomes "$.api.permissions" and numeric segments become indexes ("$.servers[0].port").
// Parser does the same on raw bytes.
package yaml
