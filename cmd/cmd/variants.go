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
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ecfw/fl2tool/internal/fl2"
)

func DefineVariantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List known FL2 container layouts",
		Long: `The 'variants' command displays a table of all container layouts the detector recognizes.
Each layout includes its name, the container sizes seen in the wild, and whether the
extract and insert operations are supported.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunVariants,
	}
}

func RunVariants(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tKNOWN SIZES\tEXTRACT\tINSERT")

	for _, p := range fl2.Probers() {
		sizes := make([]string, 0)
		for _, sz := range p.KnownSizes() {
			sizes = append(sizes, strconv.FormatUint(sz, 10))
		}

		caps := p.Capabilities()
		fmt.Fprintf(w, "%s\t%s\t%v\t%v\n",
			p.Name(),
			strings.Join(sizes, ", "),
			caps.Has(fl2.CapExtract),
			caps.Has(fl2.CapInsert),
		)
	}
	return w.Flush()
}
