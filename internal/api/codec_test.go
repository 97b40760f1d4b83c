package api

import (
	"testing"

	"github.com/dmitrijs2005/dialkeeper/internal/angles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodecIsRegistered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_AnglesSurviveAsParseableValues(t *testing.T) {
	var c Codec

	data, err := c.Marshal(&RegisterRequest{Name: "Alice", Email: "a@x.com", Angles: []any{10, 200.5, -60}})
	require.NoError(t, err)

	var got RegisterRequest
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, "Alice", got.Name)
	require.Len(t, got.Angles, 3)

	cred, err := angles.Parse(got.Angles)
	require.NoError(t, err)
	assert.Equal(t, angles.Credential{10, 200.5, 300}, cred)
}

func TestCodec_NonNumericAnglesStillDecode(t *testing.T) {
	var c Codec

	data, err := c.Marshal(&AuthenticateRequest{Email: "a@x.com", Angles: []any{"north", nil, true}})
	require.NoError(t, err)

	var got AuthenticateRequest
	require.NoError(t, c.Unmarshal(data, &got), "shape errors are the server's to report")
	_, err = angles.Parse(got.Angles)
	assert.Error(t, err)
}

func TestCodec_Deterministic(t *testing.T) {
	var c Codec
	msg := &SecretDetail{ID: "s-1", Title: "wifi", Type: "password", Data: "x", LastAccessed: 1700000000000}

	a, err := c.Marshal(msg)
	require.NoError(t, err)
	b, err := c.Marshal(msg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCodec_UnmarshalGarbage(t *testing.T) {
	var got PingResponse
	assert.Error(t, Codec{}.Unmarshal([]byte{0xff, 0x00}, &got))
}
