// vtfconv - Valve VTF texture converter
//
// Inspects VTF containers, decodes them to PNG or TGA, and packs them into
// zstd-compressed vtfz bundles.
//
// Usage:
//
//	vtfconv info input.vtf                   # Show container info
//	vtfconv decode input.vtf output.png      # Decode to PNG (or .tga)
//	vtfconv thumb input.vtf output.png       # Extract the low-res thumbnail
//	vtfconv batch in-dir/ out-dir/           # Decode a directory tree
//	vtfconv pack input.vtf output.vtfz       # Compress into a vtfz bundle
//	vtfconv unpack input.vtfz output.vtf     # Restore a bundle
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/mivrik/vtfTools/pkg/vtfz"
)

var (
	logLevel string
	logger   hclog.Logger

	decodeLevel  int
	decodeFrame  int
	decodeStrict bool
	bottomUp     bool

	packLevel int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vtfconv",
		Short:        "Inspect, decode, and repack Valve VTF textures",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = hclog.New(&hclog.LoggerOptions{
				Name:  "vtfconv",
				Level: hclog.LevelFromString(logLevel),
			})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	infoCmd := &cobra.Command{
		Use:   "info <input.vtf>",
		Short: "Show container header, mip table, and resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode <input.vtf> <output.png|output.tga>",
		Short: "Decode a mip level to PNG or TGA",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0], args[1])
		},
	}
	decodeCmd.Flags().IntVar(&decodeLevel, "level", 0, "Mip level to decode (0 = largest)")
	decodeCmd.Flags().IntVar(&decodeFrame, "frame", 0, "Animation frame to decode")
	decodeCmd.Flags().BoolVar(&decodeStrict, "strict", false, "Fail on unsupported formats or short pixel data")
	decodeCmd.Flags().BoolVar(&bottomUp, "bottom-up", false, "Keep the container's bottom-to-top row order")

	thumbCmd := &cobra.Command{
		Use:   "thumb <input.vtf> <output.png|output.tga>",
		Short: "Decode the embedded low-res thumbnail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThumb(args[0], args[1])
		},
	}

	batchCmd := &cobra.Command{
		Use:   "batch <input-dir> <output-dir>",
		Short: "Decode every .vtf under a directory to PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args[0], args[1])
		},
	}

	packCmd := &cobra.Command{
		Use:   "pack <input.vtf> <output.vtfz>",
		Short: "Compress a texture into a vtfz bundle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args[0], args[1])
		},
	}
	packCmd.Flags().IntVar(&packLevel, "level", vtfz.DefaultCompressionLevel, "zstd compression level")

	unpackCmd := &cobra.Command{
		Use:   "unpack <input.vtfz> <output.vtf>",
		Short: "Restore a texture from a vtfz bundle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpack(args[0], args[1])
		},
	}

	root.AddCommand(infoCmd, decodeCmd, thumbCmd, batchCmd, packCmd, unpackCmd)
	return root
}
