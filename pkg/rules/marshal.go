package rules

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON writes the document back out with skills in declaration
// order, which encoding/json's map marshaling would not preserve.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(key string, value interface{}) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := writeField("version", d.Version); err != nil {
		return nil, err
	}
	if d.Description != "" {
		if err := writeField("description", d.Description); err != nil {
			return nil, err
		}
	}

	buf.WriteString(`,"skills":{`)
	for i, e := range d.Skills {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.ID)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Rule)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}

// Encode renders the document as indented JSON suitable for writing
// to a skill-rules.json file.
func (d *Document) Encode() ([]byte, error) {
	raw, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
