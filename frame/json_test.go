package frame_test

import (
	"math"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameshare/frameshare-go/frame"
	. "github.com/frameshare/frameshare-go/testutil/frame/helper" //nolint:revive
)

func Test_AttributeList_MarshalJSON_KeepsOrder(t *testing.T) {
	l := frame.NewAttributeList(
		frame.AttributeEntry{Key: frame.AttrNames, Value: frame.Character("b", "a")},
		frame.AttributeEntry{Key: frame.AttrClass, Value: frame.Character("z")},
		frame.AttributeEntry{Key: "custom", Value: frame.Integer(1)},
	)

	b, err := l.MarshalJSON()

	require.NoError(t, err)

	var keys []string
	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, b)
	for key := iter.ReadObject(); key != ""; key = iter.ReadObject() {
		keys = append(keys, key)
		iter.Skip()
	}

	require.NoError(t, iter.Error)
	assert.Equal(t, []string{"names", "class", "custom"}, keys)
}

func Test_AttributeList_MarshalJSON_Empty(t *testing.T) {
	b, err := frame.AttributeList{}.MarshalJSON()

	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))
}

func Test_Describe(t *testing.T) {
	v := frame.NewValue(frame.KindInteger, []int{1, 2}, frame.WithNames("a", "b"))
	frame.Share(v)

	expected := `{
		"type": "integer",
		"class": "integer",
		"length": 2,
		"sharing": "shared",
		"values": [1, 2],
		"attributes": {
			"names": {
				"type": "character",
				"class": "character",
				"length": 2,
				"sharing": "unshared",
				"values": ["a", "b"],
				"attributes": {}
			}
		}
	}`

	assert.JSONEq(t, expected, frame.Describe(v))
}

func Test_Describe_ForeignPayloadIsNotSerialized(t *testing.T) {
	expected := `{
		"type": "externalptr",
		"class": "externalptr",
		"length": 1,
		"sharing": "unshared",
		"attributes": {}
	}`

	assert.JSONEq(t, expected, frame.Describe(GivenExternalPtrColumn(t)))
}

func Test_Describe_Nil(t *testing.T) {
	assert.Equal(t, "null", frame.Describe(nil))
}

func Test_Describe_NonFiniteDoubles(t *testing.T) {
	v := frame.NewValue(
		frame.KindRaw,
		[]byte{1},
		frame.WithAttribute("bounds", frame.Double(math.Inf(-1), math.Inf(1))),
	)
	v.SetAttribute("scale", frame.Double(1, math.NaN()))

	expected := `{
		"type": "raw",
		"class": "raw",
		"length": 1,
		"sharing": "unshared",
		"attributes": {
			"bounds": {
				"type": "double",
				"class": "numeric",
				"length": 2,
				"sharing": "unshared",
				"values": ["-Inf", "Inf"],
				"attributes": {}
			},
			"scale": {
				"type": "double",
				"class": "numeric",
				"length": 2,
				"sharing": "unshared",
				"values": [1, "NaN"],
				"attributes": {}
			}
		}
	}`

	assert.JSONEq(t, expected, frame.Describe(v))
}
