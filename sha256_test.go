package sha256

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// FIPS 180-4 / RFC 4634 / CAVP vectors, including the 55/56/64-byte
// padding boundaries (padding fits the last block, forces a second
// block, and starts on a fresh block respectively).
var knownAnswerTests = []struct {
	name string
	in   string
	want string
}{
	{
		name: "empty message",
		in:   "",
		want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	},
	{
		name: "abc",
		in:   "abc",
		want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		name: "two block message",
		in:   "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		want: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
	},
	{
		name: "1000 repetitions of a",
		in:   strings.Repeat("a", 1000),
		want: "41edece42d63e8d9bf515a9ba6932e1c20cbc9f5a5d134645adb5db1b9737ea3",
	},
	{
		name: "55 byte boundary",
		in:   strings.Repeat("a", 55),
		want: "9f4390f8d30c2dd92ec9f095b65e2b9ae9b0a925a5258e241c9f1e910f734318",
	},
	{
		name: "56 byte boundary",
		in:   strings.Repeat("a", 56),
		want: "b35439a4ac6f0948b6d6f9e3c6af0f5f590ce20f1bde7090ef7970686ec6738a",
	},
	{
		name: "64 byte boundary",
		in:   strings.Repeat("a", 64),
		want: "ffe054fe7ae0cb6dc65c3af9b61d5209f439851db43d0ba5997337df154668eb",
	},
}

func TestKnownAnswers(t *testing.T) {
	for _, test := range knownAnswerTests {
		t.Run(test.name, func(t *testing.T) {
			var c Context
			c.Init()
			c.Append([]byte(test.in))
			digest := c.Finish()
			require.Equal(t, test.want, hex.EncodeToString(digest[:]))
		})
	}
}

func TestSum256(t *testing.T) {
	for _, test := range knownAnswerTests {
		digest := Sum256([]byte(test.in))
		require.Equal(t, test.want, hex.EncodeToString(digest[:]))
	}
}

func TestSumString(t *testing.T) {
	for _, test := range knownAnswerTests {
		require.Equal(t, Sum256([]byte(test.in)), SumString(test.in))
	}
}

func TestDeterministic(t *testing.T) {
	in := []byte("determinism check")
	require.Equal(t, Sum256(in), Sum256(in))
}

// Append-call boundaries must not be observable in the digest.
func TestAppendChunkInvariance(t *testing.T) {
	chunkings := []int{1, 3, 7, 13, 55, 64, 100}

	for _, test := range knownAnswerTests {
		for _, chunkSize := range chunkings {
			var c Context
			c.Init()
			for in := []byte(test.in); len(in) > 0; {
				n := chunkSize
				if n > len(in) {
					n = len(in)
				}
				c.Append(in[:n])
				in = in[n:]
			}
			digest := c.Finish()
			require.Equal(t, test.want, hex.EncodeToString(digest[:]),
				"input %q split into %d byte chunks", test.name, chunkSize)
		}
	}
}

func TestAppendEmptyNoOp(t *testing.T) {
	var c Context
	c.Init()
	c.Append(nil)
	c.Append([]byte{})
	c.Append([]byte("abc"))
	c.Append(nil)
	digest := c.Finish()
	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(digest[:]))
}

// Init on a used context must behave identically to a fresh context.
func TestContextReuse(t *testing.T) {
	var c Context
	c.Init()
	c.Append([]byte("first use, thrown away"))
	c.Finish()

	c.Init()
	c.Append([]byte("abc"))
	digest := c.Finish()
	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(digest[:]))
}

func TestDigestFixedKey(t *testing.T) {
	var key [Size]byte
	for i := range key {
		key[i] = byte(i)
	}

	digest := Digest(key)
	require.Equal(t, Sum256(key[:]), digest)
	require.Equal(t,
		"630dcd2966c4336691125448bbb25b4ff412a49c732db2c8abc1b8581bd710dd",
		hex.EncodeToString(digest[:]))
}

func TestSelfDigest(t *testing.T) {
	var key [Size]byte
	for i := range key {
		key[i] = byte(i)
	}

	expected := Digest(key)
	SelfDigest(&key)
	require.Equal(t, expected, key)
}

func TestHashAdapter(t *testing.T) {
	h := New()
	require.Equal(t, Size, h.Size())
	require.Equal(t, BlockSize, h.BlockSize())

	n, err := h.Write([]byte("ab"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Sum must not consume the running state.
	partial := h.Sum(nil)
	require.Equal(t, partial, h.Sum(nil))

	_, err = h.Write([]byte("c"))
	require.NoError(t, err)
	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(h.Sum(nil)))

	h.Reset()
	require.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hex.EncodeToString(h.Sum(nil)))
}

func TestHashAdapterSumAppends(t *testing.T) {
	h := New()
	h.Write([]byte("abc"))

	prefix := []byte("prefix")
	out := h.Sum(prefix)
	require.Equal(t, []byte("prefix"), out[:len(prefix)])
	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(out[len(prefix):]))
}
