// Package jsonschema generates JSON Schema documents for the serialized
// file identity records.
package jsonschema
