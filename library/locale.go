package library

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// ResolveLocale returns the collation locale. An explicit setting wins,
// otherwise the POSIX locale variables are consulted in priority order.
func ResolveLocale(configured string) language.Tag {
	if configured != "" {
		if tag, err := language.Parse(configured); err == nil {
			return tag
		}
	}
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return posixLocaleTag(v)
		}
	}
	return language.Und
}

// posixLocaleTag converts values like "fr_FR.UTF-8@euro" to a BCP 47 tag.
func posixLocaleTag(v string) language.Tag {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
