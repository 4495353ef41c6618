package codes

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// loadOptions keeps section and key names exactly as written and keeps every
// duplicate visible so Parse can reject it. Every entry is a single line:
// leading indentation is insignificant and a trailing backslash stays in the
// value.
var loadOptions = ini.LoadOptions{
	IgnoreContinuation:         true,
	IgnoreInlineComment:        true,
	PreserveSurroundedQuote:    true,
	AllowShadows:               true,
	AllowDuplicateShadowValues: true,
	AllowNonUniqueSections:     true,
	KeyValueDelimiters:         "=:",
}

// Load reads the file at path and parses it. The source name recorded in the
// model and in errors is path as given.
func Load(path string) (*Model, error) {
	// #nosec G304 -- the input path is supplied by the operator.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{
			Kind:   KindSourceAccess,
			Source: path,
			Reason: "cannot read source",
			Err:    err,
		}
	}
	return Parse(path, data)
}

// Parse builds a Model from INI content. name is used for provenance in
// errors and Model.Source.
func Parse(name string, data []byte) (*Model, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, &ParseError{
			Kind:   KindMalformedStructure,
			Source: name,
			Reason: "invalid INI syntax",
			Err:    err,
		}
	}

	model := &Model{Source: name}
	seen := make(map[string]struct{})
	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection {
			if len(section.Keys()) > 0 {
				return nil, &ParseError{
					Kind:    KindMalformedStructure,
					Source:  name,
					Section: ini.DefaultSection,
					Key:     section.Keys()[0].Name(),
					Reason:  "key outside of any category",
				}
			}
			continue
		}
		if _, dup := seen[section.Name()]; dup {
			return nil, &ParseError{
				Kind:    KindMalformedStructure,
				Source:  name,
				Section: section.Name(),
				Reason:  "duplicate category",
			}
		}
		seen[section.Name()] = struct{}{}

		category, err := parseCategory(name, section)
		if err != nil {
			return nil, err
		}
		model.Categories = append(model.Categories, category)
	}
	return model, nil
}

func parseCategory(source string, section *ini.Section) (Category, error) {
	keys := section.Keys()
	category := Category{
		Name:    section.Name(),
		Entries: make([]Entry, 0, len(keys)),
	}
	for _, key := range keys {
		// ini names "-" keys "#1", "#2", ...; a real key cannot start with '#'.
		if strings.HasPrefix(key.Name(), "#") {
			return Category{}, &ParseError{
				Kind:    KindMalformedStructure,
				Source:  source,
				Section: category.Name,
				Key:     "-",
				Reason:  "entry name is required",
			}
		}
		if len(key.ValueWithShadows()) > 1 {
			return Category{}, &ParseError{
				Kind:    KindMalformedStructure,
				Source:  source,
				Section: category.Name,
				Key:     key.Name(),
				Reason:  "duplicate entry",
			}
		}
		entry, err := parseEntry(key.Name(), key.Value())
		if err != nil {
			err.Source = source
			err.Section = category.Name
			return Category{}, err
		}
		category.Entries = append(category.Entries, entry)
	}
	return category, nil
}

// parseEntry splits value on its first comma and parses the leading field.
func parseEntry(name, value string) (Entry, *ParseError) {
	field, message, hasMessage := strings.Cut(value, ",")
	field = strings.TrimSpace(field)
	code, ok := ParseCode(field)
	if !ok {
		return Entry{}, &ParseError{
			Kind:   KindMalformedValue,
			Key:    name,
			Reason: "code " + strconv.Quote(field) + " is not a base-10 integer",
		}
	}
	return Entry{
		Name:       name,
		Code:       code,
		Message:    message,
		HasMessage: hasMessage,
	}, nil
}
