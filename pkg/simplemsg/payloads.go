package simplemsg

// Contact is the provider-owned contact record. The API defines its fields;
// this client passes them through without interpretation.
type Contact map[string]any

// Message is the provider-owned message record, passed through verbatim like
// Contact.
type Message map[string]any

// ID returns the record's "id" field when present.
func (c Contact) ID() string { return stringField(c, "id") }

// ID returns the record's "id" field when present.
func (m Message) ID() string { return stringField(m, "id") }

func stringField(rec map[string]any, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}
