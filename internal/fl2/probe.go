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

import "errors"

// ErrUnrecognized is returned by Detect when no probe recognizes the
// container layout.
var ErrUnrecognized = errors.New("unrecognized FL2 container layout")

// ErrUnsupported is returned when a detected variant does not support the
// requested operation.
var ErrUnsupported = errors.New("operation not supported by this container variant")

// Capability describes the operations a container variant supports.
type Capability uint8

const (
	// CapExtract allows copying the image out of the container.
	CapExtract Capability = 1 << iota
	// CapInsert allows writing a replacement image back into the container.
	CapInsert
)

func (c Capability) Has(want Capability) bool {
	return c&want != 0
}

// TrailerMode reports how a container accounts for the trailing signature
// block, if it has one.
type TrailerMode int

const (
	// TrailerAbsent means the container has no trailing block.
	TrailerAbsent TrailerMode = iota
	// TrailerExternal means a trailer follows the image and is not counted
	// in the declared image size.
	TrailerExternal
	// TrailerInternal means the trailer is already counted inside the
	// declared image size.
	TrailerInternal
)

func (m TrailerMode) String() string {
	switch m {
	case TrailerExternal:
		return "external"
	case TrailerInternal:
		return "internal"
	default:
		return "absent"
	}
}

// Result locates the EC image inside a recognized container.
// Offset+Size never exceeds the size of the source it was probed from.
type Result struct {
	Variant      string
	Offset       uint64
	Size         uint64
	Encrypted    bool
	Trailer      TrailerMode
	MarkerOffset uint64 // sub-offset at which the copyright marker matched
	Caps         Capability
}

// Prober recognizes a single container layout. Probe returns an error both
// when the layout does not match and when a read fails; the chain treats the
// two identically and moves on to the next prober.
type Prober interface {
	Name() string
	Capabilities() Capability
	KnownSizes() []uint64
	Probe(src Source) (*Result, error)
}
