package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	ManifestFileName = "package.json"
	NodeModulesDir   = "node_modules"

	sectionDependencies    = "dependencies"
	sectionDevDependencies = "devDependencies"
	defaultIndent          = "  "
)

// Script is a named entry of the manifest's scripts section.
type Script struct {
	Name    string
	Command string
}

// Manifest is the subset of package.json used for detection and scanning.
// Dependencies and scripts keep their declaration order.
type Manifest struct {
	Name                string
	License             string
	PackageManagerField string
	HasYarnSection      bool
	HasPnpmSection      bool
	Dependencies        []DeclaredDependency
	DevDependencies     []DeclaredDependency
	Scripts             []Script
}

// ParseManifest reads a package.json document.
func ParseManifest(content []byte) (*Manifest, error) {
	if !gjson.ValidBytes(content) {
		return nil, errors.New("invalid JSON in package.json")
	}
	root := gjson.ParseBytes(content)
	if !root.IsObject() {
		return nil, errors.New("package.json is not a JSON object")
	}

	manifest := &Manifest{
		Name:                stringField(root, "name"),
		License:             stringField(root, "license"),
		PackageManagerField: stringField(root, "packageManager"),
		HasYarnSection:      isTruthy(root.Get("yarn")),
		HasPnpmSection:      isTruthy(root.Get("pnpm")),
		Dependencies:        declaredDependencies(root.Get(sectionDependencies), false),
		DevDependencies:     declaredDependencies(root.Get(sectionDevDependencies), true),
	}

	root.Get("scripts").ForEach(func(key, value gjson.Result) bool {
		manifest.Scripts = append(manifest.Scripts, Script{Name: key.String(), Command: value.String()})
		return true
	})

	return manifest, nil
}

// DeclaredPackageManager returns the manager named by the packageManager field
// ("<name>@<version>"). The boolean is false when the field is absent or unknown.
func (m *Manifest) DeclaredPackageManager() (PackageManager, bool) {
	if m.PackageManagerField == "" {
		return "", false
	}
	name, _, _ := strings.Cut(m.PackageManagerField, "@")
	pm, err := ParsePackageManager(name)
	if err != nil {
		return "", false
	}
	return pm, true
}

// Script returns the command of a named script.
func (m *Manifest) Script(name string) (string, bool) {
	for _, script := range m.Scripts {
		if script.Name == name {
			return script.Command, true
		}
	}
	return "", false
}

// ReadInstalledVersion extracts the version field of an installed package's package.json.
func ReadInstalledVersion(content []byte) string {
	if !gjson.ValidBytes(content) {
		return ""
	}
	return gjson.GetBytes(content, "version").String()
}

// SetDependencyVersion rewrites the version of a dependency inside a package.json document.
// An existing version is replaced in place and every other byte is kept. A dependency that
// is not declared yet, or a missing section, is added with the indentation the document
// already uses.
func SetDependencyVersion(content []byte, name, version string, dev bool) ([]byte, error) {
	if !gjson.ValidBytes(content) {
		return nil, errors.New("invalid JSON in package.json")
	}

	sectionName := sectionDependencies
	if dev {
		sectionName = sectionDevDependencies
	}

	section := gjson.GetBytes(content, sectionName)
	if section.Exists() {
		if !section.IsObject() || section.Index <= 0 {
			return nil, fmt.Errorf("%s in package.json is not an object", sectionName)
		}
		rewritten, err := rewriteSection(section, lineIndent(content, section.Index), documentIndent(content), name, version)
		if err != nil {
			return nil, err
		}
		result := make([]byte, 0, len(content)+len(rewritten))
		result = append(result, content[:section.Index]...)
		result = append(result, rewritten...)
		result = append(result, content[section.Index+len(section.Raw):]...)
		return result, nil
	}

	return appendSection(content, sectionName, name, version)
}

// rewriteSection sets one entry of a dependency object. keyIndent is the indentation of
// the line holding the section key and unit is one indentation level.
func rewriteSection(section gjson.Result, keyIndent, unit, name, version string) (string, error) {
	quotedVersion, err := quoteJSON(version)
	if err != nil {
		return "", err
	}

	raw := section.Raw
	cursor, firstKey, lastEnd := 0, -1, -1
	replaced := ""
	section.ForEach(func(key, value gjson.Result) bool {
		keyAt := cursor + strings.Index(raw[cursor:], key.Raw)
		if firstKey < 0 {
			firstKey = keyAt
		}
		valueAt := keyAt + len(key.Raw)
		for valueAt < len(raw) && strings.IndexByte(" \t\r\n:", raw[valueAt]) >= 0 {
			valueAt++
		}
		cursor = valueAt + len(value.Raw)
		lastEnd = cursor
		if key.String() == name {
			replaced = raw[:valueAt] + quotedVersion + raw[cursor:]
			return false
		}
		return true
	})
	if replaced != "" {
		return replaced, nil
	}

	quotedName, err := quoteJSON(name)
	if err != nil {
		return "", err
	}
	entry := quotedName + ": " + quotedVersion
	if firstKey < 0 {
		return "{\n" + keyIndent + unit + entry + "\n" + keyIndent + "}", nil
	}

	separator := ", "
	lead := raw[1:firstKey]
	if newline := strings.LastIndexByte(lead, '\n'); newline >= 0 {
		separator = ",\n" + lead[newline+1:]
	}
	return raw[:lastEnd] + separator + entry + raw[lastEnd:], nil
}

// appendSection adds a new top-level section holding a single dependency.
func appendSection(content []byte, sectionName, name, version string) ([]byte, error) {
	quotedName, err := quoteJSON(name)
	if err != nil {
		return nil, err
	}
	quotedVersion, err := quoteJSON(version)
	if err != nil {
		return nil, err
	}
	unit := documentIndent(content)
	var indented bytes.Buffer
	entry := []byte("{" + quotedName + ":" + quotedVersion + "}")
	if indentErr := json.Indent(&indented, entry, unit, unit); indentErr != nil {
		return nil, indentErr
	}

	trimmed := bytes.TrimRight(content, " \t\r\n")
	closing := bytes.LastIndexByte(trimmed, '}')
	if closing < 0 {
		return nil, errors.New("package.json is not a JSON object")
	}

	separator := ",\n"
	if isEmptyObject(gjson.ParseBytes(content)) {
		separator = "\n"
	}
	head := bytes.TrimRight(trimmed[:closing], " \t\r\n")

	result := make([]byte, 0, len(content)+indented.Len()+len(sectionName)+16)
	result = append(result, head...)
	result = append(result, separator...)
	result = append(result, unit+"\""+sectionName+"\": "...)
	result = append(result, indented.Bytes()...)
	result = append(result, "\n}\n"...)
	return result, nil
}

// documentIndent returns the indentation of the first top-level key, or two spaces for
// empty and single-line documents.
func documentIndent(content []byte) string {
	open := bytes.IndexByte(content, '{')
	if open < 0 {
		return defaultIndent
	}
	quote := bytes.IndexByte(content[open+1:], '"')
	if quote < 0 {
		return defaultIndent
	}
	lead := content[open+1 : open+1+quote]
	newline := bytes.LastIndexByte(lead, '\n')
	if newline < 0 || newline == len(lead)-1 {
		return defaultIndent
	}
	return string(lead[newline+1:])
}

// lineIndent returns the leading spaces and tabs of the line containing offset.
func lineIndent(content []byte, offset int) string {
	start := bytes.LastIndexByte(content[:offset], '\n') + 1
	end := start
	for end < offset && (content[end] == ' ' || content[end] == '\t') {
		end++
	}
	return string(content[start:end])
}

// quoteJSON renders a JSON string literal without escaping <, > and &, which are
// common in version ranges.
func quoteJSON(value string) (string, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buffer.String(), "\n"), nil
}

func declaredDependencies(section gjson.Result, dev bool) []DeclaredDependency {
	var deps []DeclaredDependency
	section.ForEach(func(key, value gjson.Result) bool {
		deps = append(deps, DeclaredDependency{Name: key.String(), VersionRange: value.String(), Dev: dev})
		return true
	})
	return deps
}

func stringField(root gjson.Result, path string) string {
	value := root.Get(path)
	if value.Type != gjson.String {
		return ""
	}
	return value.Str
}

// isTruthy mirrors JavaScript truthiness for a JSON value.
func isTruthy(value gjson.Result) bool {
	switch value.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return value.Str != ""
	case gjson.Number:
		return value.Num != 0
	default:
		return value.Exists()
	}
}

func isEmptyObject(value gjson.Result) bool {
	empty := true
	value.ForEach(func(_, _ gjson.Result) bool {
		empty = false
		return false
	})
	return empty
}
