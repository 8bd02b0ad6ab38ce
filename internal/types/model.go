package types

import (
	"bytes"
	"encoding/json"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type ModelVariant string

const (
	ModelVariantStandard  ModelVariant = "standard"
	ModelVariantDangerous ModelVariant = "dangerous"
)

// ModelAssertion is the JSON form of a classic model assertion. Fields the
// tool does not interpret are carried in the original document so a
// load/save round trip keeps them, in their original order.
type ModelAssertion struct {
	Type         string      `json:"type,omitempty"`
	AuthorityID  string      `json:"authority-id,omitempty"`
	Series       string      `json:"series,omitempty"`
	BrandID      string      `json:"brand-id,omitempty"`
	Model        string      `json:"model,omitempty"`
	Architecture string      `json:"architecture,omitempty"`
	Base         string      `json:"base,omitempty"`
	Classic      string      `json:"classic,omitempty"`
	Distribution string      `json:"distribution,omitempty"`
	Grade        string      `json:"grade"`
	Snaps        []ModelSnap `json:"snaps"`
	Timestamp    string      `json:"timestamp,omitempty"`

	document *orderedmap.OrderedMap[string, json.RawMessage]
}

// ModelSnap is one entry of the model's snaps list.
type ModelSnap struct {
	Name           string `json:"name"`
	Type           string `json:"type,omitempty"`
	DefaultChannel string `json:"default-channel"`
	ID             string `json:"id,omitempty"`

	document *orderedmap.OrderedMap[string, json.RawMessage]
}

// Variant reports whether the model is a dangerous (test image) model.
func (m *ModelAssertion) Variant() ModelVariant {
	if strings.Contains(m.Grade, "dangerous") {
		return ModelVariantDangerous
	}
	return ModelVariantStandard
}

func (m *ModelAssertion) UnmarshalJSON(data []byte) error {
	type plain ModelAssertion
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	document, err := decodeDocument(data)
	if err != nil {
		return err
	}
	*m = ModelAssertion(known)
	m.document = document
	return nil
}

func (m ModelAssertion) MarshalJSON() ([]byte, error) {
	type plain ModelAssertion
	return encodeDocument(plain(m), m.document)
}

func (s *ModelSnap) UnmarshalJSON(data []byte) error {
	type plain ModelSnap
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	document, err := decodeDocument(data)
	if err != nil {
		return err
	}
	*s = ModelSnap(known)
	s.document = document
	return nil
}

// MarshalJSON always writes "id" for entries built in memory; loaded entries
// keep or omit it as they were read.
func (s ModelSnap) MarshalJSON() ([]byte, error) {
	type plain ModelSnap
	if s.document == nil {
		return marshalUnescaped(struct {
			plain
			ID string `json:"id"`
		}{plain: plain(s), ID: s.ID})
	}
	return encodeDocument(plain(s), s.document)
}

func decodeDocument(data []byte) (*orderedmap.OrderedMap[string, json.RawMessage], error) {
	document := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, document); err != nil {
		return nil, err
	}
	return document, nil
}

// encodeDocument overlays the typed fields onto the original document:
// existing keys keep their position, new keys are appended in field order.
func encodeDocument(known any, original *orderedmap.OrderedMap[string, json.RawMessage]) ([]byte, error) {
	data, err := marshalUnescaped(known)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return data, nil
	}
	fields, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	merged := orderedmap.New[string, json.RawMessage]()
	for pair := original.Oldest(); pair != nil; pair = pair.Next() {
		if value, ok := fields.Get(pair.Key); ok {
			merged.Set(pair.Key, value)
			continue
		}
		merged.Set(pair.Key, pair.Value)
	}
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := merged.Get(pair.Key); !ok {
			merged.Set(pair.Key, pair.Value)
		}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := merged.Oldest(); pair != nil; pair = pair.Next() {
		if pair != merged.Oldest() {
			buf.WriteByte(',')
		}
		key, err := marshalUnescaped(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalUnescaped is json.Marshal without HTML escaping.
func marshalUnescaped(value any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
