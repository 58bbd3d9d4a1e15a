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
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecfw/fl2tool/internal/fl2"
	"github.com/ecfw/fl2tool/internal/image"
	"github.com/ecfw/fl2tool/internal/logger"
)

func DefineToFL2Command() *cobra.Command {
	return &cobra.Command{
		Use:          "to_fl2 <file.fl2> <file.img>",
		Short:        "Write an EC image back into an FL2 update file",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         RunToFL2,
	}
}

func RunToFL2(cmd *cobra.Command, args []string) error {
	src, f, err := openSource(args[0])
	if err != nil {
		return err
	}

	res, err := fl2.Detect(src)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if !res.Caps.Has(fl2.CapInsert) {
		return fmt.Errorf("cannot insert into a %s container: %w", res.Variant, fl2.ErrUnsupported)
	}

	img, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	if err := image.Insert(args[0], res, img); err != nil {
		return err
	}

	log := logger.New(os.Stdout, logger.InfoLevel)
	log.Infof("%s container: inserted %d bytes at offset 0x%X into %s", res.Variant, len(img), res.Offset, args[0])
	return nil
}
