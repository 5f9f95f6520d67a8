// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lazyjsonfmt is a small inspector CLI around the lazyjson
// package: it formats, validates, and (optionally) converts JSON documents
// to protobuf's google.protobuf.Struct representation, mostly useful for
// poking at the library interactively and for smoke-testing a configured
// limits file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/quantjson/lazyjson"
	"github.com/quantjson/lazyjson/config"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "lazyjsonfmt",
		Short:         "Format, validate, and inspect JSON documents using lazyjson",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML limits/writer config (see config.Load)")

	root.AddCommand(formatCmd(), validateCmd(), toStructCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig returns an empty *config.Config (all defaults) if configPath
// is unset, or the parsed contents of configPath otherwise.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Load(nil)
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return config.Load(data)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func formatCmd() *cobra.Command {
	var indent string
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Parse and re-emit a JSON document, optionally pretty-printed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			input, err := readInput(args)
			if err != nil {
				return err
			}

			reqID := uuid.New()
			doc, err := lazyjson.Parse(input, cfg.ParseOptions()...)
			if err != nil {
				return fmt.Errorf("request %s: parse: %w", reqID, err)
			}
			defer doc.Close()

			wopts := cfg.WriterOptions()
			if indent != "" {
				wopts = append(wopts, lazyjson.WithIndent(indent))
			}
			w := lazyjson.NewWriter(wopts...)
			w.WriteView(doc.Root)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), w.String())
			return err
		},
	}
	cmd.Flags().StringVar(&indent, "indent", "", `per-level indent string, e.g. "  " (default: compact output)`)
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Parse a JSON document and report success or the first error",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			input, err := readInput(args)
			if err != nil {
				return err
			}

			reqID := uuid.New()
			v, err := lazyjson.ParseDetached(input, cfg.ParseOptions()...)
			if err != nil {
				return fmt.Errorf("request %s: invalid: %w", reqID, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", v.Kind())
			return err
		},
	}
}

func toStructCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-struct [file]",
		Short: "Parse a JSON document and print it back out via google.protobuf.Struct",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			input, err := readInput(args)
			if err != nil {
				return err
			}

			reqID := uuid.New()
			v, err := lazyjson.ParseDetached(input, cfg.ParseOptions()...)
			if err != nil {
				return fmt.Errorf("request %s: parse: %w", reqID, err)
			}
			val, err := lazyjson.ToStruct(v)
			if err != nil {
				return fmt.Errorf("request %s: to-struct: %w", reqID, err)
			}
			out, err := protojson.Marshal(val)
			if err != nil {
				return fmt.Errorf("request %s: marshal: %w", reqID, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
