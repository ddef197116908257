package kdtree

import (
	"fmt"
	"time"

	"github.com/hupe1980/kdtree/codec"
	"github.com/hupe1980/kdtree/point"
)

// Encode serializes the items in the tree's internal order with c.
// If c is nil, codec.Default is used.
func (t *Tree[T, S]) Encode(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(t.items)
	if err != nil {
		return nil, fmt.Errorf("encode with %s: %w", c.Name(), err)
	}
	return data, nil
}

// Decode restores a tree from data produced by Encode.
//
// The decoded sequence is taken as an already built layout and is not
// rebuilt; it is verified with Validate instead, so foreign data that is not
// a valid k-d tree is rejected with an error wrapping ErrInvalidLayout.
func Decode[T any, S point.Scalar](data []byte, acc point.Accessor[T, S], c codec.Codec, optFns ...Option) (*Tree[T, S], error) {
	mustDims(acc)
	o := applyOptions(optFns)
	if c == nil {
		c = o.codec
	}
	start := time.Now()
	logger := o.logger.WithDimension(acc.Dims())

	var items []T
	if err := c.Unmarshal(data, &items); err != nil {
		err = fmt.Errorf("decode with %s: %w", c.Name(), err)
		logger.WithCount(0).LogDecode(c.Name(), err)
		o.metricsCollector.RecordBuild(0, false, time.Since(start), err)
		return nil, err
	}

	t := newTree(items, acc, o)
	if err := t.Validate(); err != nil {
		logger.WithCount(len(items)).LogDecode(c.Name(), err)
		o.metricsCollector.RecordBuild(len(items), false, time.Since(start), err)
		return nil, err
	}

	logger.WithCount(len(items)).LogDecode(c.Name(), nil)
	o.metricsCollector.RecordBuild(len(items), false, time.Since(start), nil)
	return t, nil
}

// MarshalJSON encodes the tree as a JSON list of its items in internal order,
// using the codec configured with WithCodec.
func (t *Tree[T, S]) MarshalJSON() ([]byte, error) {
	return t.Encode(t.opts.codec)
}

// UnmarshalJSON replaces the items of t with the decoded list. The tree must
// have been created with an accessor, e.g. by Empty. The data is validated
// like in Decode; on error t is left unchanged.
func (t *Tree[T, S]) UnmarshalJSON(data []byte) error {
	if t.acc == nil {
		return ErrNoAccessor
	}
	decoded, err := Decode(data, t.acc, t.opts.codec, t.optionFns()...)
	if err != nil {
		return err
	}
	t.items = decoded.items
	return nil
}

// optionFns replays the tree's options for trees derived from it.
func (t *Tree[T, S]) optionFns() []Option {
	o := t.opts
	return []Option{func(dst *options) { *dst = o }}
}
