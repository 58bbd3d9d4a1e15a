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

import "fmt"

// CopyrightMarker is a fixed ASCII string embedded near the start of every
// genuine EC image. Probes use it as the final content check on top of their
// size and signature heuristics.
const CopyrightMarker = "(C) Copyright IBM Corp. 2001, 2005 All Rights Reserved "

// The marker sits at one of two offsets relative to the payload base,
// depending on the image generation. The later layout is tried first.
var markerOffsets = []uint64{0x268, 0x264}

// checkCopyright verifies the marker at one of the candidate sub-offsets
// relative to base and returns the sub-offset that matched.
func checkCopyright(src Source, base uint64) (uint64, error) {
	for _, off := range markerOffsets {
		blk, err := readBlock(src, base+off, uint64(len(CopyrightMarker)))
		if err != nil {
			continue
		}
		if string(blk) == CopyrightMarker {
			return off, nil
		}
	}
	return 0, fmt.Errorf("no copyright marker near offset 0x%X", base)
}
