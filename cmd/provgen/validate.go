/*
 * Copyright (c) 2024-present Provgen authors
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/provgen/provgen/pkg/apidef"
	"github.com/provgen/provgen/pkg/schemaload"
)

var overridePath string

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schema.yaml>",
		Short: "Loads a schema document and reports whether it validates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := loadProduct(args[0])
			if err != nil {
				fmt.Println(red("FAIL"), err)
				return err
			}
			props := 0
			product.Resources(func(r *apidef.Resource) { props += r.PropertyCount() })
			fmt.Printf("%s product «%s»: %d resources, %d top-level properties\n",
				green("OK"), product.Name(), product.ResourceCount(), props)
			return nil
		},
	}
	cmd.Flags().StringVar(&overridePath, "override", "", "Path to an override document applied before validation")
	return cmd
}

func loadProduct(path string) (*apidef.Product, error) {
	base, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer base.Close()

	if overridePath == "" {
		return schemaload.Load(base)
	}

	logger.Verbose("applying override", overridePath)
	over, err := os.Open(overridePath)
	if err != nil {
		return nil, err
	}
	defer over.Close()
	return schemaload.LoadWithOverride(base, over)
}
