package errx

// RegistryEntry describes a registered error code.
type RegistryEntry struct {
	Code        string
	Description string
}

// Error codes follow a stable 5-digit scheme where the first two digits are the
// domain and the last three digits are reserved for subcodes.
const (
	CodeCLI       = "70000"
	CodeSource    = "71000"
	CodeMalformed = "72000"
	CodeRender    = "73000"
	CodeOutput    = "74000"
	CodeFormatter = "75000"
	CodeSettings  = "79000"
)

const (
	DescCLI       = "CLI/argument validation error"
	DescSource    = "Source access error"
	DescMalformed = "Malformed config error"
	DescRender    = "Render error"
	DescOutput    = "Output error"
	DescFormatter = "Formatter error"
	DescSettings  = "Settings error"
)

var registryEntries = []RegistryEntry{
	{Code: CodeCLI, Description: DescCLI},
	{Code: CodeSource, Description: DescSource},
	{Code: CodeMalformed, Description: DescMalformed},
	{Code: CodeRender, Description: DescRender},
	{Code: CodeOutput, Description: DescOutput},
	{Code: CodeFormatter, Description: DescFormatter},
	{Code: CodeSettings, Description: DescSettings},
}

var registryMap = func() map[string]string {
	m := make(map[string]string, len(registryEntries))
	for _, entry := range registryEntries {
		m[entry.Code] = entry.Description
	}
	return m
}()

// ErrorRegistry returns the error registry in code order.
func ErrorRegistry() []RegistryEntry {
	entries := make([]RegistryEntry, len(registryEntries))
	copy(entries, registryEntries)
	return entries
}

// DescriptionFor returns the registry description for a code.
func DescriptionFor(code string) (string, bool) {
	desc, ok := registryMap[code]
	return desc, ok
}

// IsValidCode checks if the given error code is registered.
func IsValidCode(code string) bool {
	_, ok := registryMap[code]
	return ok
}
