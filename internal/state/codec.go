package state

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/klauspost/compress/flate"
	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/buffcalc/internal/model"
)

const (
	// QueryParam is the URL query key carrying the encoded state.
	QueryParam = "s0"

	// MaxDecodedSize limits the decompressed JSON payload.
	MaxDecodedSize = 1 << 20

	fingerprintLen = 16
)

var (
	ErrEmpty    = errors.New("empty state blob")
	ErrTooLarge = errors.New("state blob exceeds size limit")
)

// Marshal encodes the state as JSON [BuffData[], SomeData].
func Marshal(st model.State) ([]byte, error) {
	b, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshaling state: %w", err)
	}
	return b, nil
}

// Unmarshal decodes and validates JSON [BuffData[], SomeData].
func Unmarshal(b []byte) (model.State, error) {
	var st model.State
	if err := json.Unmarshal(b, &st); err != nil {
		return model.State{}, err
	}
	if err := st.Validate(); err != nil {
		return model.State{}, fmt.Errorf("validating state: %w", err)
	}
	return st, nil
}

// Encode returns the URL-safe blob: JSON → DEFLATE → base64url (no padding).
func Encode(st model.State) (string, error) {
	raw, err := Marshal(st)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("creating compressor: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return "", fmt.Errorf("compressing state: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("flushing compressor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode and validates the result.
func Decode(blob string) (model.State, error) {
	if blob == "" {
		return model.State{}, ErrEmpty
	}
	compressed, err := base64.RawURLEncoding.DecodeString(blob)
	if err != nil {
		return model.State{}, fmt.Errorf("decoding base64: %w", err)
	}

	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()

	raw, err := io.ReadAll(io.LimitReader(r, MaxDecodedSize+1))
	if err != nil {
		return model.State{}, fmt.Errorf("decompressing state: %w", err)
	}
	if len(raw) > MaxDecodedSize {
		return model.State{}, ErrTooLarge
	}
	return Unmarshal(raw)
}

// FromQuery reads the state from URL query values.
// ok=false (and the default state) when the parameter is absent.
func FromQuery(q url.Values) (st model.State, ok bool, err error) {
	blob := q.Get(QueryParam)
	if blob == "" {
		return model.DefaultState(), false, nil
	}
	st, err = Decode(blob)
	if err != nil {
		return model.State{}, true, err
	}
	return st, true, nil
}

// Query returns query values carrying the encoded state.
func Query(st model.State) (url.Values, error) {
	blob, err := Encode(st)
	if err != nil {
		return nil, err
	}
	return url.Values{QueryParam: []string{blob}}, nil
}

// Fingerprint — content-addressed id сборки: первые 16 hex-символов BLAKE2b-256 от JSON.
// Equal states always share a fingerprint.
func Fingerprint(st model.State) (string, error) {
	raw, err := Marshal(st)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])[:fingerprintLen], nil
}
