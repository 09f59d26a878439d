package mapping

import "fmt"

// Formatter renders a container mapping display name from the two
// container ref names. Formatting is purely presentational; localization
// is the collaborator's concern.
type Formatter func(cdmName, storageName string, localize bool) string

// DefaultFormatter is the fallback rendering used when no formatter is
// supplied.
func DefaultFormatter(cdmName, storageName string, localize bool) string {
	if localize {
		return fmt.Sprintf("Mapping between %s and %s", cdmName, storageName)
	}
	return fmt.Sprintf("%s <=> %s", cdmName, storageName)
}
