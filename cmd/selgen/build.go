package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/selgen"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a one-off selector from flags",
	Long: `Assemble a single selector through the order-checked builder and print it.
Parts are appended in canonical order: element, id, class, attribute,
pseudo-class, pseudo-element.

Example:
  selgen build --element a --class external --attr 'href$=".png"' --pseudo-class hover`,
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.String("element", "", "Type selector, e.g. table")
	f.String("id", "", "Id value (without the leading #)")
	f.StringSlice("class", nil, "Class values (repeatable)")
	f.StringSlice("attr", nil, "Attribute bodies (repeatable, without brackets)")
	f.StringSlice("pseudo-class", nil, "Pseudo-class names (repeatable)")
	f.String("pseudo-element", "", "Pseudo-element name")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()

	var b selgen.Builder
	if v, _ := f.GetString("element"); v != "" {
		b.Element(v)
	}
	if v, _ := f.GetString("id"); v != "" {
		b.ID(v)
	}
	classes, _ := f.GetStringSlice("class")
	for _, v := range classes {
		b.Class(v)
	}
	attrs, _ := f.GetStringSlice("attr")
	for _, v := range attrs {
		b.Attr(v)
	}
	pseudoClasses, _ := f.GetStringSlice("pseudo-class")
	for _, v := range pseudoClasses {
		b.PseudoClass(v)
	}
	if v, _ := f.GetString("pseudo-element"); v != "" {
		b.PseudoElement(v)
	}

	selector, err := b.Build()
	if err != nil {
		return err
	}
	if selector == "" {
		return fmt.Errorf("no selector parts given")
	}

	fmt.Println(selector)
	return nil
}
