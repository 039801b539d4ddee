package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	require.Equal(t, []byte{0x01, 0x02}, engine.AppendUint16(nil, 0x0102))
	require.Equal(t, uint16(0x0102), engine.Uint16([]byte{0x01, 0x02}))
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	require.Equal(t, []byte{0x02, 0x01}, engine.AppendUint16(nil, 0x0102))
}

func TestEnginesDisagreeOnByteOrder(t *testing.T) {
	big := GetBigEndianEngine()
	little := GetLittleEndianEngine()

	require.NotEqual(t, big.AppendUint32(nil, 0x01020304), little.AppendUint32(nil, 0x01020304))
}
