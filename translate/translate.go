// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate renders user-visible messages for the detected locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ngpasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
//
// Integer arguments are formatted with locale digit grouping; callers
// that need a literal rendering, such as an index or a bit width, should
// pass it through strconv.Itoa.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
