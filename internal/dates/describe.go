package dates

import (
	"fmt"
	"sync"

	"github.com/klauspost/lctime"
)

const locale = "it_IT"

var setLocale sync.Once

// Describe renders a canonical date in long Italian form ("martedì 25 febbraio 2025").
// Values that are not canonical are returned verbatim.
func Describe(canonical string) string {
	t := ToSortableInstant(canonical)
	if t.Equal(MinInstant) {
		return canonical
	}

	// Falls back to lctime's default locale when it_IT is unavailable.
	setLocale.Do(func() { _ = lctime.SetLocale(locale) })
	return fmt.Sprintf("%s %d %s", lctime.Strftime("%A", t), t.Day(), lctime.Strftime("%B %Y", t))
}
