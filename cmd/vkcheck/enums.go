package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/vk-validation/enum"
	"github.com/wippyai/vk-validation/errors"
	_ "github.com/wippyai/vk-validation/vk"
)

func newEnumsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enums [type]",
		Short: "List the enumerated types the layer checks, or the members of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, d := range enum.All() {
					fmt.Fprintf(out, "%-40s %-5s %d\n", d.TypeName(), d.Kind(), len(d.Members()))
				}
				return nil
			}
			d, err := lookupType(args[0])
			if err != nil {
				return err
			}
			for _, m := range d.Members() {
				if d.Kind() == enum.KindFlags {
					fmt.Fprintf(out, "%-56s 0x%08x\n", m.Name, m.Value)
				} else {
					fmt.Fprintf(out, "%-56s %d\n", m.Name, m.Value)
				}
			}
			return nil
		},
	}
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <type> <value>",
		Short: "Parse a value of an enumerated type and print it as the layer reports it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookupType(args[0])
			if err != nil {
				return err
			}
			v, err := d.ParseRaw(args[1])
			if err != nil {
				return err
			}
			valid := "valid"
			if !d.ValidRaw(v) {
				valid = "invalid"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s (%s)\n", v, d.FormatRaw(v), valid)
			return nil
		},
	}
}

func newCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the message codes passed to debug-report callbacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range errors.Codes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d %s\n", c.Number(), c)
			}
			return nil
		},
	}
}

// lookupType accepts the API type name with or without its Vk prefix.
func lookupType(name string) (enum.Descriptor, error) {
	if d, ok := enum.Lookup(name); ok {
		return d, nil
	}
	if !strings.HasPrefix(name, "Vk") {
		if d, ok := enum.Lookup("Vk" + name); ok {
			return d, nil
		}
	}
	return nil, fmt.Errorf("unknown type %q", name)
}
