package location

import (
	"fmt"
	"regexp"
	"strings"

	"booking/internal/pkg/errs"
)

var codePattern = regexp.MustCompile(`^[a-zA-Z]{2}[a-zA-Z2-9]{3}$`)

// ErrUnLocodeIsNotConstructed is returned when validating a zero-value UnLocode.
var ErrUnLocodeIsNotConstructed = errs.NewValueIsRequiredError("UnLocode must be created via NewUnLocode")

// UnLocode is a five character United Nations location code: two letters for the
// country followed by three letters or digits 2-9 for the place, e.g. "SESTO".
//
// Input is accepted in any case and stored upper-cased, so codes that differ only in
// case are equal. UnLocode is comparable with ==.
type UnLocode struct {
	code string
}

// NewUnLocode validates code against the UN/LOCODE pattern and normalizes it to upper case.
//
// Returns:
//   - UnLocode: the normalized code
//   - error: ValueIsRequiredError for an empty code, ValueIsInvalidError on pattern mismatch
//
// Example:
//
//	code, _ := NewUnLocode("sesto")
//	fmt.Println(code) // SESTO
func NewUnLocode(code string) (UnLocode, error) {
	if code == "" {
		return UnLocode{}, errs.NewValueIsRequiredError("code")
	}
	if !codePattern.MatchString(code) {
		return UnLocode{}, errs.NewValueIsInvalidErrorWithCause(
			"code",
			fmt.Errorf("%q does not comply with the UnLocode pattern %s", code, codePattern),
		)
	}
	return UnLocode{code: strings.ToUpper(code)}, nil
}

// String returns the upper-cased code.
func (u UnLocode) String() string {
	return u.code
}

// IsEqual reports whether both codes are the same.
func (u UnLocode) IsEqual(other UnLocode) bool {
	return u.code == other.code
}

// Validate returns ErrUnLocodeIsNotConstructed for the zero value.
func (u UnLocode) Validate() error {
	if u.code == "" {
		return ErrUnLocodeIsNotConstructed
	}
	return nil
}
