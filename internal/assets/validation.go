package assets

import (
	"fmt"
	"regexp"
)

// MaxNameLength bounds style and template names.
const MaxNameLength = 64

var assetName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateAssetName accepts names made of letters, digits, "-" and "_".
// Separators and dots are rejected, so a name can never leave its asset
// directory or pick another extension.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > MaxNameLength:
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, MaxNameLength)
	case !assetName.MatchString(name):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
