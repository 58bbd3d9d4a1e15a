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

func DefineFromFL2Command() *cobra.Command {
	return &cobra.Command{
		Use:          "from_fl2 <file.fl2> <file.img>",
		Short:        "Extract the EC image out of an FL2 update file",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         RunFromFL2,
	}
}

func RunFromFL2(cmd *cobra.Command, args []string) error {
	src, f, err := openSource(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := fl2.Detect(src)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if !res.Caps.Has(fl2.CapExtract) {
		return fmt.Errorf("cannot extract from a %s container: %w", res.Variant, fl2.ErrUnsupported)
	}

	if err := image.Extract(src, res, args[1]); err != nil {
		return err
	}

	log := logger.New(os.Stdout, logger.InfoLevel)
	log.Infof("%s container: extracted %d bytes at offset 0x%X to %s", res.Variant, res.Size, res.Offset, args[1])
	return nil
}
