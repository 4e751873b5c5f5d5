package drills

// Person is a record carrying a mood flag.
type Person struct {
	Name    string `json:"name"`
	IsHappy bool   `json:"isHappy"`
}

// User is the record used by the sorting and bio-logging drills.
type User struct {
	Name   string `json:"name"`
	Order  int    `json:"order,omitempty"`
	Height int    `json:"height,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

// Record is a schemaless record, typically decoded from a JSON object.
// Fields are addressed with dot-notation keys (see arr.Get).
type Record = map[string]any
