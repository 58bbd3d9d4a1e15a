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

// Package image moves EC image bytes in and out of a detected container.
// It carries no detection logic of its own: callers hand it the payload
// window produced by the fl2 probe chain.
package image

import (
	"fmt"
	"io"
	"os"

	"github.com/ecfw/fl2tool/internal/fl2"
)

// Extract copies the detected payload window out of the container into a
// standalone image file at outPath.
func Extract(src fl2.Source, res *fl2.Result, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	r := io.NewSectionReader(src, int64(res.Offset), int64(res.Size))
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("unable to copy image payload: %w", err)
	}
	return out.Close()
}

// Insert writes a replacement image into the container file in place. The
// image must exactly fill the detected payload window; the rest of the
// container is left untouched.
func Insert(containerPath string, res *fl2.Result, img []byte) error {
	if uint64(len(img)) != res.Size {
		return fmt.Errorf("image size %d does not match payload window size %d", len(img), res.Size)
	}

	f, err := os.OpenFile(containerPath, os.O_WRONLY, 0)
	if err != nil {
		return err
	}

	if _, err := f.WriteAt(img, int64(res.Offset)); err != nil {
		f.Close()
		return fmt.Errorf("unable to write image payload: %w", err)
	}
	return f.Close()
}
