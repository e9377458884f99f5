package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty name", "", 0xef46db3751d8e999},
		{"short name", "test", 0x4fdcca5ddb678139},
		{"long name", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another name", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, BinID(tt.data))
		})
	}
}

func TestBinIDs(t *testing.T) {
	names := []string{"a", "b", "a"}
	ids := make([]uint64, len(names))
	BinIDs(ids, names)

	require.Equal(t, BinID("a"), ids[0])
	require.Equal(t, BinID("b"), ids[1])
	require.Equal(t, ids[0], ids[2])
	require.NotEqual(t, ids[0], ids[1])
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkBinID(b *testing.B) {
	randStr := randString(14)
	b.ResetTimer()
	for b.Loop() {
		BinID(randStr)
	}
}
