package duo

// Unit is the payload of Ok and Err results constructed without a
// meaningful value.
type Unit struct{}

// MarshalJSON collapses Unit to null, matching the no-payload semantics.
func (Unit) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
