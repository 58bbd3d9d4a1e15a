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
	"github.com/ecfw/fl2tool/internal/fs"
	"github.com/ecfw/fl2tool/internal/logger"
)

func DefineCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "check <file.fl2>",
		Short:        "Detect the container layout of an FL2 update file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunCheck,
	}
}

func RunCheck(cmd *cobra.Command, args []string) error {
	src, f, err := openSource(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := fl2.Detect(src)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	log := logger.New(os.Stdout, logger.InfoLevel)
	log.Infof("variant: \t%s", res.Variant)
	log.Infof("offset: \t0x%X", res.Offset)
	log.Infof("length: \t0x%X (%d bytes)", res.Size, res.Size)
	log.Infof("encrypted: \t%v", res.Encrypted)
	log.Infof("trailer: \t%s", res.Trailer)
	return nil
}

func openSource(path string) (fl2.Source, fs.File, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return fl2.NewSource(f, uint64(info.Size())), f, nil
}
