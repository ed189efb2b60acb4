// Package connectjson provides a plain-JSON codec for Connect procedures, so
// the analysis RPC types stay ordinary Go structs instead of protobuf
// messages.
package connectjson

import (
	"encoding/json"

	"github.com/bufbuild/connect-go"
)

// Codec implements connect.Codec over encoding/json.
type Codec struct{}

var _ connect.Codec = Codec{}

// Name reports the codec name used in Connect content-type negotiation.
func (Codec) Name() string { return "json" }

func (Codec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (Codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
