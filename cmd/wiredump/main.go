// Command wiredump decodes and encodes packet payloads field by field.
//
//	wiredump decode --layout varint,string,u16,varint 0f00ff...
//	wiredump decode --layouts layouts.toml --layout handshake @payload.bin
//	wiredump encode varint 300
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/oy3o/packetbuf"
)

var logger = newLogger(os.Stderr, false)

var rootCmd = &cobra.Command{
	Use:           "wiredump",
	Short:         "Inspect protocol payloads",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		logger = newLogger(cmd.ErrOrStderr(), debug)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <hex|@file|->",
	Short: "Decode a payload with a field layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layoutsPath, _ := cmd.Flags().GetString("layouts")
		layout, _ := cmd.Flags().GetString("layout")

		named := map[string]string{}
		if layoutsPath != "" {
			var err error
			if named, err = loadLayouts(layoutsPath); err != nil {
				return err
			}
		}
		kinds, err := parseLayout(layout, named)
		if err != nil {
			return err
		}
		payload, err := readPayload(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		return decode(cmd.OutOrStdout(), packetbuf.NewBuffer(payload), kinds)
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode <kind> <value>",
	Short: "Encode a single value and print it as hex",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := encodeField(strings.ToLower(args[0]), args[1])
		if err != nil {
			return err
		}
		logger.Debug().Str("kind", args[0]).Int("bytes", len(p)).Msg("encoded")
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(p))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Log every decode step")
	decodeCmd.Flags().StringP("layout", "l", "", "Comma separated field kinds or a named layout")
	decodeCmd.Flags().String("layouts", "", "TOML file with a [layouts] table")
	_ = decodeCmd.MarkFlagRequired("layout")
	rootCmd.AddCommand(decodeCmd, encodeCmd)
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "wiredump").Logger()
}

// decode prints one line per field and reports trailing bytes.
func decode(w io.Writer, b *packetbuf.Buffer, kinds []string) error {
	for i, kind := range kinds {
		offset := b.Pos()
		v, err := decodeField(b, kind)
		if err != nil {
			logger.Error().Err(err).Int("field", i).Str("kind", kind).Int("offset", offset).Msg("decode failed")
			return fmt.Errorf("field %d (%s) at offset %d: %w", i, kind, offset, err)
		}
		logger.Debug().Int("field", i).Str("kind", kind).Int("offset", offset).Int("size", b.Pos()-offset).Msg("decoded")
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, kind, formatValue(v))
	}
	if n := b.Remaining(); n > 0 {
		logger.Warn().Int("bytes", n).Msg("trailing data after layout")
	}
	return nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "<none>"
	case []byte:
		return hex.EncodeToString(x)
	case string:
		return fmt.Sprintf("%q", x)
	}
	return fmt.Sprintf("%v", v)
}

// readPayload accepts a hex string, "@path" for a raw file or "-" for hex on stdin.
func readPayload(arg string, stdin io.Reader) ([]byte, error) {
	switch {
	case strings.HasPrefix(arg, "@"):
		b := packetbuf.New()
		f, err := os.Open(arg[1:])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if _, err := b.ReadFrom(f); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	case arg == "-":
		text, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		arg = string(text)
	}
	return hex.DecodeString(strings.Join(strings.Fields(arg), ""))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("wiredump failed")
		os.Exit(1)
	}
}
