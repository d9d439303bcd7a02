// Package translate renders user visible messages in the user's language.
package translate

import (
	"os"

	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LocaleEnv overrides the detected user locale when set.
const LocaleEnv = "SICXE_LOCALE"

var (
	tag     language.Tag
	printer *message.Printer
)

func init() {
	tag = Match(userLocales()...)
	printer = message.NewPrinter(tag)
}

// userLocales lists the preferred locales, most preferred first.
func userLocales() (locales []string) {
	if env := os.Getenv(LocaleEnv); len(env) != 0 {
		return []string{env}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		logrus.Debugf("locale: %v", err)
	}

	return
}

// Match picks the message language for a list of locales, defaulting to en-US.
func Match(locales ...string) language.Tag {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.MatchLanguage(locales...)
}

// Tag returns the language messages are rendered in.
func Tag() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
