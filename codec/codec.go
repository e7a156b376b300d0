// Package codec serializes mirrored records for storage.
//
// The base layer is msgpack, which tolerates schema drift in both
// directions: fields added later decode as zero values on old payloads, and
// unknown fields in newer payloads are skipped. The compressed layer wraps
// the msgpack bytes in gzip and is used for the large, cold records (guild
// configuration, playback queues); the small hot records stay plain, where a
// gzip header would cost more than it saves.
//
// Both layers obey the round-trip law: Unmarshal(Marshal(v)) == v for every
// valid v. A payload that fails to decompress or decode is a real error, not
// an absent record — callers must not paper over corruption with defaults.
package codec

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Marshal encodes v to msgpack bytes.
func Marshal(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "codec: marshal")
	}
	return data, nil
}

// Unmarshal decodes msgpack bytes into v.
func Unmarshal(data []byte, v any) error {
	if err := msgpack.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "codec: unmarshal")
	}
	return nil
}

// MarshalCompressed encodes v to msgpack and gzips the result.
func MarshalCompressed(v any) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, errors.Wrap(err, "codec: compress")
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "codec: compress")
	}
	return buf.Bytes(), nil
}

// UnmarshalCompressed reverses MarshalCompressed.
func UnmarshalCompressed(data []byte, v any) error {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, "codec: decompress")
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return errors.Wrap(err, "codec: decompress")
	}
	if err := zr.Close(); err != nil {
		return errors.Wrap(err, "codec: decompress")
	}
	return Unmarshal(raw, v)
}
