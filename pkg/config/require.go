package config

import "fmt"

// MissingVars returns the names of pairs whose value is empty.
// pairs is a flat list of name, value.
func MissingVars(pairs ...string) []string {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			missing = append(missing, pairs[i])
		}
	}
	return missing
}

func RequireNonEmpty(pairs ...string) error {
	if missing := MissingVars(pairs...); len(missing) > 0 {
		return fmt.Errorf("missing required env %v", missing)
	}
	return nil
}
