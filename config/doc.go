// Package config assembles configuration values from commented documents.
//
// NodeProvider fetches a document and loads it into a node tree. Provider goes on
// to decode part of that tree into a struct, then applies defaults and validation:
//
//	fetch (DataFetcher) -> load (NodeLoader) -> decode (NodeDecoder) -> SetDefaults -> Validate
//
// Every stage is an interface so the pipeline can be wired by Fx:
//   - DataFetcher returns raw bytes, see config/fetcher/file.
//   - NodeLoader parses bytes into a *node.Node, see config/loader/yaml.
//   - NodeDecoder decodes the value at a path into the target, see config/parser/yaml.
//   - Defaulter and Validator are optional methods of the target.
//
// Paths are colon separated. "api:permissions" selects root["api"]["permissions"],
// "servers:0" the first item of a list and "" the whole document.
//
//	provider := config.Provider(&APIConfig{}, "services:api")
//	cfg, err := provider(loader, yamlparser.NewDecoder(loader), fetcher)
package config
