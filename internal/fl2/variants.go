// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package fl2

import (
	"errors"
	"fmt"
	"slices"
)

// FillByte is the padding value found in unused regions of some containers.
const FillByte = 0xFF

// region is an image window inside a container.
type region struct {
	off  uint64
	size uint64
}

// Known container sizes per variant. Supporting a new size is a data-only
// change. The tables are disjoint across variants today; detection order
// still matters, see Probers.
var (
	allFillSizes = map[uint64]region{
		8523776:  {0x500000, 0x20000},
		12718080: {0x500000, 0x30000},
		16912384: {0x500000, 0x30000},
	}

	garbageSizes = map[uint64]region{
		4240490: {0x290000, 0x20000},
	}

	bareSizes = map[uint64]region{
		196608: {0, 0x30000},
	}

	// Header-carrying containers declare their own geometry; this table
	// only records whether a known size ships an encrypted image. Sizes
	// outside the table are treated as unencrypted.
	headerEncrypted = map[uint64]bool{
		196896: true,
		286752: false,
	}
)

// isFill reports whether the window [off, off+n) consists entirely of the
// fill byte. A failed read counts as a mismatch.
func isFill(src Source, off, n uint64) bool {
	blk, err := readBlock(src, off, n)
	if err != nil {
		return false
	}
	for _, b := range blk {
		if b != FillByte {
			return false
		}
	}
	return true
}

// finish applies the copyright gate, mandatory for every probe, and stamps
// the variant metadata on the result.
func finish(src Source, p Prober, res *Result) (*Result, error) {
	moff, err := checkCopyright(src, res.Offset)
	if err != nil {
		return nil, err
	}
	res.Variant = p.Name()
	res.Caps = p.Capabilities()
	res.MarkerOffset = moff
	return res, nil
}

func sortedKeys[V any](m map[uint64]V) []uint64 {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// allFillProbe recognizes containers whose image sits behind a large padding
// prefix of pure fill bytes.
type allFillProbe struct{}

func (allFillProbe) Name() string             { return "AllFillPrefix" }
func (allFillProbe) Capabilities() Capability { return CapExtract | CapInsert }
func (allFillProbe) KnownSizes() []uint64     { return sortedKeys(allFillSizes) }

func (p allFillProbe) Probe(src Source) (*Result, error) {
	reg, ok := allFillSizes[src.Size()]
	if !ok {
		return nil, fmt.Errorf("no known all-fill layout of size %d", src.Size())
	}
	if !isFill(src, 0, 4096) {
		return nil, errors.New("prefix is not pure fill bytes")
	}
	return finish(src, p, &Result{
		Offset:    reg.off,
		Size:      reg.size,
		Encrypted: true,
	})
}

// garbageProbe recognizes containers whose prefix holds unrelated data, with
// a known fill-byte window identifying the layout.
type garbageProbe struct{}

func (garbageProbe) Name() string             { return "GarbagePrefix" }
func (garbageProbe) Capabilities() Capability { return CapExtract | CapInsert }
func (garbageProbe) KnownSizes() []uint64     { return sortedKeys(garbageSizes) }

func (p garbageProbe) Probe(src Source) (*Result, error) {
	reg, ok := garbageSizes[src.Size()]
	if !ok {
		return nil, fmt.Errorf("no known garbage-prefix layout of size %d", src.Size())
	}
	if !isFill(src, 0x21000, 0x1000) {
		return nil, errors.New("window [0x21000, 0x22000) is not pure fill bytes")
	}
	return finish(src, p, &Result{
		Offset:    reg.off,
		Size:      reg.size,
		Encrypted: false,
	})
}

// bareImageProbe recognizes containers that are nothing but the image
// itself, with no prefix at all.
type bareImageProbe struct{}

func (bareImageProbe) Name() string             { return "NoPrefix" }
func (bareImageProbe) Capabilities() Capability { return CapExtract | CapInsert }
func (bareImageProbe) KnownSizes() []uint64     { return sortedKeys(bareSizes) }

func (p bareImageProbe) Probe(src Source) (*Result, error) {
	reg, ok := bareSizes[src.Size()]
	if !ok {
		return nil, fmt.Errorf("no known bare-image layout of size %d", src.Size())
	}
	return finish(src, p, &Result{
		Offset:    reg.off,
		Size:      reg.size,
		Encrypted: true,
	})
}

// headerProbe recognizes containers that carry an explicit 32-byte FL2
// header declaring the container and image sizes.
//
// Insertion is not offered for this variant: the header carries a
// checksum-like field whose algorithm is unknown, so a rewritten container
// could not be made self-consistent.
type headerProbe struct{}

func (headerProbe) Name() string             { return "HeaderPrefix" }
func (headerProbe) Capabilities() Capability { return CapExtract }
func (headerProbe) KnownSizes() []uint64     { return sortedKeys(headerEncrypted) }

func (p headerProbe) Probe(src Source) (*Result, error) {
	blk, err := readBlock(src, 0, HeaderSize)
	if err != nil {
		return nil, err
	}

	hdr, err := ParseHeader(blk)
	if err != nil {
		return nil, err
	}

	size := src.Size()
	if uint64(hdr.FileSize) != size {
		return nil, fmt.Errorf("declared file size %d disagrees with actual size %d", hdr.FileSize, size)
	}

	// Two accounting modes are seen in the wild: either the 256-byte
	// trailer follows the image without being counted in ImgSize, or
	// ImgSize already includes it.
	imgSize := uint64(hdr.ImgSize)
	var trailer TrailerMode
	switch {
	case imgSize+HeaderSize+TrailerSize == size:
		trailer = TrailerExternal
	case imgSize+HeaderSize == size:
		trailer = TrailerInternal
	default:
		return nil, fmt.Errorf("declared image size %d does not account for container size %d", hdr.ImgSize, size)
	}

	return finish(src, p, &Result{
		Offset:    HeaderSize,
		Size:      imgSize,
		Encrypted: headerEncrypted[size],
		Trailer:   trailer,
	})
}
