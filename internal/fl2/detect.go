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

// Probers returns the layout recognizers in detection order. The order is
// fixed and first-match-wins: even if the size tables ever come to overlap,
// an earlier prober keeps precedence.
func Probers() []Prober {
	return []Prober{
		allFillProbe{},
		garbageProbe{},
		bareImageProbe{},
		headerProbe{},
	}
}

// Detect runs the probe chain over src and returns the first match, or
// ErrUnrecognized if no probe recognizes the container.
func Detect(src Source) (*Result, error) {
	for _, p := range Probers() {
		res, err := p.Probe(src)
		if err == nil {
			return res, nil
		}
	}
	return nil, ErrUnrecognized
}
