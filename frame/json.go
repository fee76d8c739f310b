package frame

import (
	"math"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// valueDescriptor is the diagnostic JSON shape of a Value. Payloads of kinds outside the
// atomic vectors built by this package are never serialized.
type valueDescriptor struct {
	Type       string        `json:"type"`
	Class      string        `json:"class"`
	Length     int           `json:"length"`
	Sharing    string        `json:"sharing"`
	Values     any           `json:"values,omitempty"`
	Attributes AttributeList `json:"attributes"`
}

// MarshalJSON renders a diagnostic descriptor of the value, with attributes in list order.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	descriptor := valueDescriptor{
		Type:       v.Kind().TypeName(),
		Class:      ResolveClassName(v),
		Length:     v.Len(),
		Sharing:    v.SharingState().String(),
		Attributes: v.attrs,
	}

	switch p := v.payload.(type) {
	case []bool, []int, []string:
		descriptor.Values = p
	case []float64:
		descriptor.Values = doubleValues(p)
	}

	return json.Marshal(descriptor)
}

// doubleValues keeps finite doubles as numbers and spells out the rest,
// since JSON has no NaN or infinity.
func doubleValues(values []float64) []any {
	out := make([]any, len(values))
	for i, f := range values {
		switch {
		case math.IsNaN(f):
			out[i] = "NaN"
		case math.IsInf(f, 1):
			out[i] = "Inf"
		case math.IsInf(f, -1):
			out[i] = "-Inf"
		default:
			out[i] = f
		}
	}

	return out
}

// MarshalJSON renders the list as a JSON object whose keys keep the list order.
func (l AttributeList) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, e := range l.entries {
		if i > 0 {
			stream.WriteMore()
		}

		stream.WriteObjectField(string(e.Key))
		stream.WriteVal(e.Value)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	return append([]byte(nil), stream.Buffer()...), nil
}

// Describe returns the JSON descriptor of v, or the marshaling error text.
func Describe(v *Value) string {
	b, err := json.Marshal(v)
	if err != nil {
		return err.Error()
	}

	return string(b)
}
