package scene

import "fmt"

// ReferenceError reports a USE name with no matching definition, or a name
// that is defined under a different kind than the reference expects. Either
// way the import cannot continue.
type ReferenceError struct {
	Kind     Kind   // kind the reference expected
	Name     string // USE name
	Mismatch bool   // true when the name exists under another kind
}

func (e ReferenceError) Error() string {
	if e.Mismatch {
		return fmt.Sprintf("%s: USE %q refers to a definition of a different kind", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s: USE %q is not defined", e.Kind, e.Name)
}

// AttributeValueError reports an attribute whose value cannot be used, such
// as an unknown closure type or a vertex list with a broken count.
type AttributeValueError struct {
	Element string
	Attr    string
	Reason  string
}

func (e AttributeValueError) Error() string {
	return fmt.Sprintf("%s: invalid value for attribute %q: %s", e.Element, e.Attr, e.Reason)
}

// GeometricConstraintError reports attribute values that are individually
// valid but violate a geometric relation between them.
type GeometricConstraintError struct {
	Element string
	Attr    string
	Reason  string
}

func (e GeometricConstraintError) Error() string {
	return fmt.Sprintf("%s: attribute %q violates a geometric constraint: %s", e.Element, e.Attr, e.Reason)
}
