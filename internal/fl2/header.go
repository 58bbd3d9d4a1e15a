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
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the size of the FL2 prefix header.
	HeaderSize = 32

	// TrailerSize is the size of the trailing block (presumed a digital
	// signature) appended after the image in some containers.
	TrailerSize = 256
)

// TODO: at least one update file in the wild starts with "EC IMAGE0" instead
// of this signature; that layout is not handled yet.
var headerSignature = [4]byte{'_', 'E', 'C', 0x01}

// Header is the fixed-layout 32-byte prefix in front of the EC image in
// containers of the header-carrying kind.
type Header struct {
	Signature [4]byte   // 0x00: "_EC\x01"
	FileSize  uint32    // 0x04: declared size of the whole container file
	ImgSize   uint32    // 0x08: declared size of the embedded image
	Unknown   [4]uint32 // 0x0C: purpose unknown
	Checksum  uint32    // 0x1C: presumed checksum, never verified
}

// ParseHeader decodes the 32-byte FL2 prefix header. All multi-byte fields
// are little-endian.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("incomplete FL2 header: expected %d bytes, got %d", HeaderSize, len(data))
	}

	var hdr Header
	if err := binary.Read(bytes.NewReader(data[:HeaderSize]), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("failed to decode FL2 header: %w", err)
	}

	if hdr.Signature != headerSignature {
		return nil, fmt.Errorf("invalid FL2 header signature: % X", hdr.Signature[:])
	}
	return &hdr, nil
}
