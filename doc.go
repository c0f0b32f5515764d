// Package yamlconf wires commented YAML documents into an Fx application.
//
// Documents are loaded into node trees by config/loader/yaml, which keeps the comment
// of every node and the document header. Named stores (see the store package) keep one
// document each, loading it on start and optionally saving it on stop:
//
//	app := yamlconf.NewApp(
//		yamlconf.WithLogLevel("debug"),
//		yamlconf.WithStore("settings", store.WithPath("settings.yml"), store.WithSaveOnStop()),
//	)
package yamlconf
