package codes

import "math/big"

// Code is an arbitrary-precision integer error code.
// The zero value is 0.
type Code struct {
	v *big.Int
}

// CodeFromInt64 returns a Code holding n.
func CodeFromInt64(n int64) Code {
	return Code{v: big.NewInt(n)}
}

// ParseCode parses s as a base-10 integer with an optional sign.
func ParseCode(s string) (Code, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Code{}, false
	}
	return Code{v: v}, true
}

// String returns the canonical decimal form.
func (c Code) String() string {
	if c.v == nil {
		return "0"
	}
	return c.v.String()
}

// Int64 returns the code as an int64 and whether it fits.
func (c Code) Int64() (int64, bool) {
	if c.v == nil {
		return 0, true
	}
	if !c.v.IsInt64() {
		return 0, false
	}
	return c.v.Int64(), true
}

// Cmp compares c and other and returns -1, 0 or +1.
func (c Code) Cmp(other Code) int {
	return c.bigInt().Cmp(other.bigInt())
}

func (c Code) bigInt() *big.Int {
	if c.v == nil {
		return new(big.Int)
	}
	return c.v
}

// Entry is one named error code.
type Entry struct {
	Name string
	Code Code
	// Message is the text after the first comma of the value, untouched.
	Message string
	// HasMessage distinguishes "100," (empty message) from "100".
	HasMessage bool
}

// Category is a named, ordered group of entries.
type Category struct {
	Name    string
	Entries []Entry
}

// Model is the ordered set of categories loaded from one source.
// It is not modified after Load or Parse returns.
type Model struct {
	Source     string
	Categories []Category
}

// Len returns the number of categories.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Categories)
}

// EntryCount returns the number of entries across all categories.
func (m *Model) EntryCount() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, c := range m.Categories {
		n += len(c.Entries)
	}
	return n
}

// Category returns the category with the exact name.
func (m *Model) Category(name string) (Category, bool) {
	if m == nil {
		return Category{}, false
	}
	for _, c := range m.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Range returns the smallest and largest code in the category.
// ok is false for an empty category.
func (c Category) Range() (lo, hi Code, ok bool) {
	for i, e := range c.Entries {
		if i == 0 || e.Code.Cmp(lo) < 0 {
			lo = e.Code
		}
		if i == 0 || e.Code.Cmp(hi) > 0 {
			hi = e.Code
		}
	}
	return lo, hi, len(c.Entries) > 0
}
