package fl2_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/ecfw/fl2tool/internal/fl2"
	"github.com/stretchr/testify/require"
)

func newSource(data []byte) fl2.Source {
	return fl2.NewSource(bytes.NewReader(data), uint64(len(data)))
}

func putMarker(data []byte, base, sub uint64) {
	copy(data[base+sub:], fl2.CopyrightMarker)
}

// allFillContainer builds a container whose prefix is pure 0xFF padding and
// whose image sits at 0x500000.
func allFillContainer(size uint64) []byte {
	data := make([]byte, size)
	for i := 0; i < 4096; i++ {
		data[i] = fl2.FillByte
	}
	putMarker(data, 0x500000, 0x268)
	return data
}

// garbageContainer builds a container with arbitrary prefix data, the
// identifying 0xFF window at [0x21000, 0x22000), and the image at 0x290000.
func garbageContainer() []byte {
	data := make([]byte, 4240490)
	for i := range data[:0x1000] {
		data[i] = byte(i * 7)
	}
	for i := 0x21000; i < 0x22000; i++ {
		data[i] = fl2.FillByte
	}
	putMarker(data, 0x290000, 0x268)
	return data
}

// bareContainer builds a container that is nothing but the image.
func bareContainer() []byte {
	data := make([]byte, 196608)
	putMarker(data, 0, 0x268)
	return data
}

// headerContainer builds a container with a 32-byte FL2 prefix header
// declaring the given image size.
func headerContainer(size uint64, imgSize uint32) []byte {
	data := make([]byte, size)
	copy(data, "_EC\x01")
	binary.LittleEndian.PutUint32(data[4:], uint32(size))
	binary.LittleEndian.PutUint32(data[8:], imgSize)
	putMarker(data, fl2.HeaderSize, 0x268)
	return data
}

func TestDetectKnownLayouts(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		variant   string
		offset    uint64
		size      uint64
		encrypted bool
		trailer   fl2.TrailerMode
	}{
		{"all-fill 8523776", allFillContainer(8523776), "AllFillPrefix", 0x500000, 0x20000, true, fl2.TrailerAbsent},
		{"all-fill 12718080", allFillContainer(12718080), "AllFillPrefix", 0x500000, 0x30000, true, fl2.TrailerAbsent},
		{"all-fill 16912384", allFillContainer(16912384), "AllFillPrefix", 0x500000, 0x30000, true, fl2.TrailerAbsent},
		{"garbage 4240490", garbageContainer(), "GarbagePrefix", 0x290000, 0x20000, false, fl2.TrailerAbsent},
		{"bare 196608", bareContainer(), "NoPrefix", 0, 0x30000, true, fl2.TrailerAbsent},
		{"header 196896", headerContainer(196896, 196608), "HeaderPrefix", 32, 196608, true, fl2.TrailerExternal},
		{"header 286752", headerContainer(286752, 286720), "HeaderPrefix", 32, 286720, false, fl2.TrailerInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := newSource(tc.data)

			res, err := fl2.Detect(src)
			require.NoError(t, err)

			require.Equal(t, tc.variant, res.Variant)
			require.Equal(t, tc.offset, res.Offset)
			require.Equal(t, tc.size, res.Size)
			require.Equal(t, tc.encrypted, res.Encrypted)
			require.Equal(t, tc.trailer, res.Trailer)
			require.Equal(t, uint64(0x268), res.MarkerOffset)
			require.LessOrEqual(t, res.Offset+res.Size, src.Size())
		})
	}
}

func TestDetectUnknownSize(t *testing.T) {
	data := make([]byte, 123456)
	putMarker(data, 0, 0x268)

	_, err := fl2.Detect(newSource(data))
	require.ErrorIs(t, err, fl2.ErrUnrecognized)
}

func TestDetectMissingMarker(t *testing.T) {
	allFill := allFillContainer(8523776)
	copy(allFill[0x500000+0x268:], bytes.Repeat([]byte{0xAB}, len(fl2.CopyrightMarker)))
	copy(allFill[0x500000+0x264:], bytes.Repeat([]byte{0xAB}, len(fl2.CopyrightMarker)))

	_, err := fl2.Detect(newSource(allFill))
	require.ErrorIs(t, err, fl2.ErrUnrecognized)

	garbage := garbageContainer()
	copy(garbage[0x290000+0x268:], bytes.Repeat([]byte{0xAB}, len(fl2.CopyrightMarker)))

	_, err = fl2.Detect(newSource(garbage))
	require.ErrorIs(t, err, fl2.ErrUnrecognized)
}

func TestDetectFillViolation(t *testing.T) {
	data := allFillContainer(8523776)
	data[0x700] = 0x00

	_, err := fl2.Detect(newSource(data))
	require.ErrorIs(t, err, fl2.ErrUnrecognized)
}

func TestDetectMarkerFallbackOffset(t *testing.T) {
	data := allFillContainer(8523776)
	copy(data[0x500000+0x268:], bytes.Repeat([]byte{0}, len(fl2.CopyrightMarker)))
	putMarker(data, 0x500000, 0x264)

	res, err := fl2.Detect(newSource(data))
	require.NoError(t, err)
	require.Equal(t, uint64(0x264), res.MarkerOffset)
}

func TestDetectHeaderFileSizeMismatch(t *testing.T) {
	data := headerContainer(196896, 196608)
	binary.LittleEndian.PutUint32(data[4:], 196896-100)

	_, err := fl2.Detect(newSource(data))
	require.ErrorIs(t, err, fl2.ErrUnrecognized)
}

func TestDetectHeaderTrailerAccounting(t *testing.T) {
	// Neither accounting mode fits the declared image size.
	data := headerContainer(196896, 196608-100)

	_, err := fl2.Detect(newSource(data))
	require.ErrorIs(t, err, fl2.ErrUnrecognized)
}

func TestDetectHeaderCapabilities(t *testing.T) {
	res, err := fl2.Detect(newSource(headerContainer(196896, 196608)))
	require.NoError(t, err)

	require.True(t, res.Caps.Has(fl2.CapExtract))
	require.False(t, res.Caps.Has(fl2.CapInsert))
}

func TestDetectIdempotent(t *testing.T) {
	src := newSource(garbageContainer())

	res1, err := fl2.Detect(src)
	require.NoError(t, err)

	res2, err := fl2.Detect(src)
	require.NoError(t, err)

	require.Equal(t, res1, res2)
}

func TestProberOrder(t *testing.T) {
	var names []string
	for _, p := range fl2.Probers() {
		names = append(names, p.Name())
	}
	require.Equal(t, []string{"AllFillPrefix", "GarbagePrefix", "NoPrefix", "HeaderPrefix"}, names)
}

func TestKnownSizesDisjoint(t *testing.T) {
	seen := map[uint64]string{}
	for _, p := range fl2.Probers() {
		for _, sz := range p.KnownSizes() {
			prev, ok := seen[sz]
			require.False(t, ok, "size %d claimed by both %s and %s", sz, prev, p.Name())
			seen[sz] = p.Name()
		}
	}
}
