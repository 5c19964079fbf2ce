package picker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadReference is returned for text that is not of the form #<id>:<widget>.
var ErrBadReference = errors.New("picker: malformed widget reference")

// Reference points at a widget on another node.
type Reference struct {
	NodeID int
	Widget string
}

// String renders the reference as #<id>:<widget>.
func (r Reference) String() string {
	return fmt.Sprintf("#%d:%s", r.NodeID, r.Widget)
}

// ParseReference parses #<id>:<widget>. The widget name may itself contain
// colons; only the first one separates it from the id.
func ParseReference(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	rest, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Reference{}, ErrBadReference
	}
	idText, widget, ok := strings.Cut(rest, ":")
	if !ok || widget == "" {
		return Reference{}, ErrBadReference
	}
	id, err := strconv.Atoi(idText)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %v", ErrBadReference, err)
	}
	return Reference{NodeID: id, Widget: widget}, nil
}

// IsReference reports whether s parses as a widget reference.
func IsReference(s string) bool {
	_, err := ParseReference(s)
	return err == nil
}
