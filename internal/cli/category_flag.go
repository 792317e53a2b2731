package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/spf13/pflag"
)

// categoryFlag is a --category value restricted to the known categories.
type categoryFlag struct {
	value domain.Category
}

var _ pflag.Value = (*categoryFlag)(nil)

func (f *categoryFlag) String() string { return string(f.value) }

func (f *categoryFlag) Set(s string) error {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm != string(domain.CategoryOther) && !domain.ValidCategories[norm] {
		return fmt.Errorf("unknown category %q (want one of %s)", s, categoryNames())
	}
	f.value = domain.Category(norm)
	return nil
}

func (f *categoryFlag) Type() string { return "category" }

func categoryNames() string {
	names := make([]string, 0, len(domain.Categories)+1)
	for _, c := range domain.Categories {
		names = append(names, string(c))
	}
	names = append(names, string(domain.CategoryOther))
	return strings.Join(names, ", ")
}
