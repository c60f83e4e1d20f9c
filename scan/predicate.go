package scan

// Predicate is one node of a tracking rule, the condition tree the node
// evaluates against every box. Values are treated as already encoded;
// asset ids and script bytes arrive base16 from upstream. Predicates are
// built once and never mutated; argument order is kept as given so the
// serialized form is deterministic.
type Predicate struct {
	Predicate string      `json:"predicate"`
	Args      []Predicate `json:"args,omitempty"`
	AssetID   string      `json:"assetId,omitempty"`
	Register  string      `json:"register,omitempty"`
	Value     string      `json:"value,omitempty"`
}

// ContainsAsset matches boxes holding a token with the given id.
func ContainsAsset(assetID string) Predicate {
	return Predicate{Predicate: "containsAsset", AssetID: assetID}
}

// EqualsValue matches boxes whose script tree bytes equal value.
func EqualsValue(value string) Predicate {
	return Predicate{Predicate: "equals", Value: value}
}

// EqualsRegister matches boxes whose register (e.g. "R4") holds exactly
// the given bytes.
func EqualsRegister(register, value string) Predicate {
	return Predicate{Predicate: "equals", Register: register, Value: value}
}

// And requires every sub-predicate to hold. The args slice is copied so
// callers cannot alias into the built predicate.
func And(preds ...Predicate) Predicate {
	args := make([]Predicate, len(preds))
	copy(args, preds)
	return Predicate{Predicate: "and", Args: args}
}
