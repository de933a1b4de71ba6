package fixture

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrNot2xx is returned by Assert2xx for any status outside 200-299.
	ErrNot2xx = errors.New("status code is not 2xx")
	// ErrNoUUID is returned by UUIDSearch when text has no UUID-shaped suffix.
	ErrNoUUID = errors.New("no uuid found")
)

var uuidSuffix = regexp.MustCompile(`(?i)[0-9a-f-]+$`)

func (f *Fixture) assert2xx(resp *Response) error {
	if resp == nil {
		return errors.Wrap(ErrNot2xx, "nil response")
	}
	if resp.IsSuccess() {
		return nil
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, resp.Body, "", "  "); err == nil {
		f.Info(indented.String())
	} else {
		f.Info(resp.Text())
	}
	return errors.Wrapf(ErrNot2xx, "got %d", resp.StatusCode)
}

// uuidSearch returns the trailing run of hex digits and hyphens, without
// the hyphen that separates it from a prefix such as "object-".
func uuidSearch(text string) (string, error) {
	match := strings.TrimLeft(uuidSuffix.FindString(text), "-")
	if match == "" {
		return "", errors.Wrapf(ErrNoUUID, "in %q", text)
	}
	return match, nil
}

func newUUID() string {
	return uuid.NewString()
}
