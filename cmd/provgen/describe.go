/*
 * Copyright (c) 2024-present Provgen authors
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/provgen/provgen/pkg/apidef"
)

var targetVersion string

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <schema.yaml>",
		Short: "Prints the per-version property tree of a schema document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := loadProduct(args[0])
			if err != nil {
				fmt.Println(red("FAIL"), err)
				return err
			}

			version := product.Version(targetVersion)
			if version == nil {
				err := fmt.Errorf("version «%s» is not registered in product «%s»", targetVersion, product.Name())
				fmt.Println(red("FAIL"), err)
				return err
			}

			fmt.Printf("product «%s», version %s\n", product.Name(), green(version.Name()))
			product.Resources(func(r *apidef.Resource) {
				r.ExcludeIfNotInVersion(version)
				if r.Excluded() {
					return
				}
				fmt.Printf("\n%s (update: %s)\n", r.Name(), r.UpdateVerb())
				r.Properties(func(p *apidef.Property) {
					printProperty(p, 1)
				})
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&targetVersion, "version", apidef.VersionGA, "Target API version")
	cmd.Flags().StringVar(&overridePath, "override", "", "Path to an override document applied before validation")
	return cmd
}

func printProperty(p *apidef.Property, depth int) {
	if p.Excluded() {
		return
	}
	var marks []string
	if p.Required() {
		marks = append(marks, "required")
	}
	if p.Output() {
		marks = append(marks, "output")
	}
	if p.Immutable() {
		marks = append(marks, "immutable")
	}
	suffix := ""
	if len(marks) > 0 {
		suffix = " [" + strings.Join(marks, ", ") + "]"
	}
	if p.Kind().IsComposite() && p.Kind() != apidef.Kind_KeyValuePairs {
		suffix += "  → " + p.GeneratedTypeName()
	}
	fmt.Printf("%s%s: %s%s\n", strings.Repeat("  ", depth), p.Name(), p.Kind().TrimString(), suffix)
	for _, child := range p.NestedProperties() {
		printProperty(child, depth+1)
	}
}
