package state

import (
	"bytes"
	"encoding/base64"
	"net/url"
	"strings"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buffcalc/internal/data"
	"github.com/udisondev/buffcalc/internal/model"
	"github.com/udisondev/buffcalc/internal/testutil"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	states := map[string]model.State{
		"default": model.DefaultState(),
		"sample":  testutil.SampleState(),
	}

	for name, st := range states {
		t.Run(name, func(t *testing.T) {
			blob, err := Encode(st)
			require.NoError(t, err)
			assert.NotContains(t, blob, "=")
			assert.NotContains(t, blob, "+")
			assert.NotContains(t, blob, "/")

			got, err := Decode(blob)
			require.NoError(t, err)
			assert.Equal(t, st, got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode("")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Decode("not*base64")
	assert.Error(t, err)

	// valid base64, not a DEFLATE stream
	_, err = Decode(base64.RawURLEncoding.EncodeToString([]byte("hello")))
	assert.Error(t, err)

	// valid stream, unknown identifier
	_, err = Decode(compress(t, `[[{"memo":"","type":"mana","value":"1"}],{"somes":[]}]`))
	assert.ErrorIs(t, err, data.ErrUnknownBuffType)

	// valid JSON, invalid main status index
	_, err = Decode(compress(t, `[[],{"somes":[{"something":"void_thunder","cost":1,"mainStatus":9,"subStatusTypes":[],"subStatusValues":[]}]}]`))
	assert.ErrorIs(t, err, data.ErrMainStatusIndex)
}

func TestDecode_TooLarge(t *testing.T) {
	payload := `[[{"memo":"` + strings.Repeat("a", MaxDecodedSize) + `","type":"none","value":"0"}],{"somes":[]}]`
	_, err := Decode(compress(t, payload))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestFromQuery(t *testing.T) {
	st, ok, err := FromQuery(url.Values{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, model.DefaultState(), st)

	q, err := Query(testutil.SampleState())
	require.NoError(t, err)

	// survive a trip through a real URL
	u, err := url.Parse("https://example.invalid/calc?" + q.Encode())
	require.NoError(t, err)

	st, ok, err = FromQuery(u.Query())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, testutil.SampleState(), st)

	_, ok, err = FromQuery(url.Values{QueryParam: []string{"%%%"}})
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(testutil.SampleState())
	require.NoError(t, err)
	assert.Len(t, a, 16)

	b, err := Fingerprint(testutil.SampleState())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	changed := testutil.SampleState()
	changed.Buffs[0].Value = "401"
	c, err := Fingerprint(changed)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestUnmarshal_Order(t *testing.T) {
	raw := []byte(`[[
		{"memo":"1","type":"attack_const","value":"1"},
		{"memo":"2","type":"attack_per","value":"2"},
		{"memo":"3","type":"skill_damage","value":"3"}
	],{"somes":[]}]`)

	st, err := Unmarshal(raw)
	require.NoError(t, err)
	require.Len(t, st.Buffs, 3)
	for i, row := range st.Buffs {
		assert.Equal(t, string(rune('1'+i)), row.Memo)
	}

	out, err := Marshal(st)
	require.NoError(t, err)
	back, err := Unmarshal(out)
	require.NoError(t, err)
	assert.Equal(t, st, back)
}

func compress(t *testing.T, payload string) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = w.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return base64.RawURLEncoding.EncodeToString(buf.Bytes())
}
