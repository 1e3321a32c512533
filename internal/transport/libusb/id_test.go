package libusb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("1:5:1")
	require.NoError(t, err)
	assert.Equal(t, ID{Bus: 1, Address: 5, Endpoint: 1}, id)
	assert.Equal(t, "1:5:1", id.String())

	for _, s := range []string{"", "1:5", "/dev/hidraw0", "a:b:c"} {
		_, err := ParseID(s)
		assert.Error(t, err, s)
	}
}

func TestChunkDelay(t *testing.T) {
	assert.Equal(t, DefaultChunkDelay, New(zap.NewNop()).ChunkDelay())
	assert.Equal(t, time.Duration(0), New(zap.NewNop(), WithChunkDelay(0)).ChunkDelay())
}
