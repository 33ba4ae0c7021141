package gen

import "text/template"

// templateData holds all data needed for the file template.
type templateData struct {
	Source      string
	PackageName string
	Imports     []importSpec
	Maps        []mapData
	Getters     []getterData
}

// importSpec is a single import of the generated file.
type importSpec struct {
	Alias string
	Path  string
}

// mapData describes one map constructor.
type mapData struct {
	Name      string
	KeyType   string
	ValueType string
	// Literal selects a composite literal over insertion.
	Literal bool
	// Size is the number of distinct keys.
	Size    int
	Entries []entryData
}

// entryData is one key/value pair as Go source text.
type entryData struct {
	Key   string
	Value string
}

// getterData describes one marker type.
type getterData struct {
	Name  string
	Type  string
	Value string
	// Getter is the possibly qualified interface name, e.g. "get.Getter".
	Getter string
	// Doc is the value quoted in comments; empty for multi-line literals.
	Doc string
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by litgen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{- range .Maps}}
// {{.Name}} returns a new map[{{.KeyType}}]{{.ValueType}} holding {{.Size}} {{if eq .Size 1}}entry{{else}}entries{{end}}.
func {{.Name}}() map[{{.KeyType}}]{{.ValueType}} {
{{- if not .Entries}}
	return map[{{.KeyType}}]{{.ValueType}}{}
{{- else if .Literal}}
	return map[{{.KeyType}}]{{.ValueType}}{
{{range .Entries}}		{{.Key}}: {{.Value}},
{{end}}	}
{{- else}}
	m := make(map[{{.KeyType}}]{{.ValueType}}, {{.Size}})
{{range .Entries}}	m[{{.Key}}] = {{.Value}}
{{end}}
	return m
{{- end}}
}
{{end}}
{{- range .Getters}}
// {{.Name}} is a zero-sized marker type{{if .Doc}}; its Get returns {{.Doc}}{{end}}.
type {{.Name}} struct{}

var _ {{.Getter}}[{{.Type}}] = {{.Name}}{}

// Get returns {{if .Doc}}{{.Doc}}{{else}}the declared value{{end}}.
func ({{.Name}}) Get() {{.Type}} {
	return {{.Value}}
}
{{end}}`))
