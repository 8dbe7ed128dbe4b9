// Procon converts configuration files between Java-style .properties, YAML,
// JSON and TOML.
//
// Dotted property keys such as reader.datasource.url become nested objects in
// YAML, JSON and TOML, and nested structures flatten back into dotted keys.
// Values are typed on the way in: booleans, numbers and comma separated lists
// are recognised.
//
// Usage:
//
//	procon yaml app.properties           # write app.yaml
//	procon json -n app.yaml              # print JSON to stdout
//	cat app.json | procon properties     # write stdin.properties
//	procon properties --diff app.yaml    # show changes to app.properties
//	procon config set delimiter colon    # persist a default
package main
