package ticket

import (
    "bytes"
    "encoding/json"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestEncodePayload(t *testing.T) {
    s, err := EncodePayload(Payload{
        Reference:  "bk-1",
        Customer:   "Ana",
        MovieTitle: "Avatar",
        Hall:       "Sala 3",
        Seats:      []string{"A3", "B1"},
        Total:      "$17.00",
    })
    require.NoError(t, err)

    var decoded map[string]interface{}
    require.NoError(t, json.Unmarshal([]byte(s), &decoded))
    assert.Equal(t, "Avatar", decoded["m"])
    assert.Equal(t, "$17.00", decoded["t"])
}

func TestGeneratePNG(t *testing.T) {
    png, err := GeneratePNG(`{"ref":"bk-1"}`, 200)
    require.NoError(t, err)
    // PNG magic bytes
    assert.True(t, bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}))
}

func TestFormatCents(t *testing.T) {
    assert.Equal(t, "$17.00", FormatCents(1700))
    assert.Equal(t, "$8.50", FormatCents(850))
    assert.Equal(t, "$0.05", FormatCents(5))
}
