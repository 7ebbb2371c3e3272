package iir

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/cwbudde/algo-idsp/dsp/core"
)

// iirJSON is the wire form of IIR. An infinite limit is encoded as null.
type iirJSON[T core.Float] struct {
	BA      Vec5[T] `json:"ba"`
	YOffset T       `json:"y_offset"`
	YMin    *T      `json:"y_min"`
	YMax    *T      `json:"y_max"`
}

// MarshalJSON encodes f. An unlimited side (±Inf) is written as null.
func (f IIR[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(iirJSON[T]{
		BA:      f.BA,
		YOffset: f.YOffset,
		YMin:    encodeLimit(f.YMin),
		YMax:    encodeLimit(f.YMax),
	})
}

// UnmarshalJSON decodes data over f. Absent fields keep their value, a null
// limit removes that limit and unknown fields are rejected.
func (f *IIR[T]) UnmarshalJSON(data []byte) error {
	w := iirJSON[T]{
		BA:      f.BA,
		YOffset: f.YOffset,
		YMin:    encodeLimit(f.YMin),
		YMax:    encodeLimit(f.YMax),
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return err
	}

	f.BA = w.BA
	f.YOffset = w.YOffset
	f.YMin = decodeLimit(w.YMin, -1)
	f.YMax = decodeLimit(w.YMax, 1)

	return nil
}

func encodeLimit[T core.Float](v T) *T {
	if math.IsInf(float64(v), 0) {
		return nil
	}

	return &v
}

func decodeLimit[T core.Float](v *T, sign int) T {
	if v == nil {
		return T(math.Inf(sign))
	}

	return *v
}
