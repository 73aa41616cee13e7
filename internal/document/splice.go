// Package document replaces named regions of a text document. A region is
// everything between <!-- PREFIX_NAME_START --> and <!-- PREFIX_NAME_END -->.
package document

import (
	stderrors "errors"
	"fmt"
	"os"
	"regexp"

	"github.com/lgbarn/abysschess-go/internal/errors"
)

// DefaultPrefix is the marker prefix used by the README template.
const DefaultPrefix = "CHESS"

// Fragment is a named block of text to splice into a document.
type Fragment struct {
	Name string
	Text string
}

// MarkerError reports a fragment whose marker pair is absent.
type MarkerError struct {
	Name  string
	Start string
	End   string
}

// Error returns the missing marker pair.
func (e *MarkerError) Error() string {
	return fmt.Sprintf("%s: %s ... %s", errors.ErrMarkerMissing, e.Start, e.End)
}

// Unwrap returns ErrMarkerMissing.
func (e *MarkerError) Unwrap() error {
	return errors.ErrMarkerMissing
}

// StartMarker returns the opening marker for name.
func StartMarker(prefix, name string) string {
	return fmt.Sprintf("<!-- %s_%s_START -->", prefix, name)
}

// EndMarker returns the closing marker for name.
func EndMarker(prefix, name string) string {
	return fmt.Sprintf("<!-- %s_%s_END -->", prefix, name)
}

// Splice replaces the text between each fragment's markers with
// "\n" + Text + "\n". Matching is non-greedy and spans lines; every
// occurrence of a marker pair is replaced. Fragment text is inserted
// literally. Fragments whose markers are missing are skipped and reported
// in the returned error (a *MarkerError, or several joined); the other
// fragments are still applied, so the returned content is always usable.
func Splice(content, prefix string, frags []Fragment) (string, error) {
	var missing []error
	for _, f := range frags {
		start, end := StartMarker(prefix, f.Name), EndMarker(prefix, f.Name)
		re := regionPattern(start, end)

		if !re.MatchString(content) {
			missing = append(missing, &MarkerError{Name: f.Name, Start: start, End: end})
			continue
		}

		replacement := start + "\n" + f.Text + "\n" + end
		content = re.ReplaceAllLiteralString(content, replacement)
	}
	return content, stderrors.Join(missing...)
}

// Check reports the named regions missing from content, in the same form
// as Splice, without changing anything.
func Check(content, prefix string, names ...string) error {
	var missing []error
	for _, name := range names {
		start, end := StartMarker(prefix, name), EndMarker(prefix, name)
		if !regionPattern(start, end).MatchString(content) {
			missing = append(missing, &MarkerError{Name: name, Start: start, End: end})
		}
	}
	return stderrors.Join(missing...)
}

// CheckFile runs Check on the file at path. A read failure wraps
// ErrStorageUnavailable.
func CheckFile(path, prefix string, names ...string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: document path comes from configuration
	if err != nil {
		return errors.Storage(err, "reading document")
	}
	return Check(string(data), prefix, names...)
}

func regionPattern(start, end string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)` + regexp.QuoteMeta(start) + `.*?` + regexp.QuoteMeta(end))
}

// UpdateFile splices frags into the file at path.
//
// In lenient mode the file is written even if some markers are missing and
// the marker error is returned for the caller to report as a warning. In
// strict mode a missing marker aborts before anything is written.
// Read and write failures wrap ErrStorageUnavailable.
func UpdateFile(path, prefix string, frags []Fragment, strict bool) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: document path comes from configuration
	if err != nil {
		return errors.Storage(err, "reading document")
	}

	content, spliceErr := Splice(string(data), prefix, frags)
	if spliceErr != nil && strict {
		return spliceErr
	}

	if content != string(data) {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // G306: README is world-readable
			return errors.Storage(err, "writing document")
		}
	}
	return spliceErr
}
