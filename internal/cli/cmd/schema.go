package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/splitframe/internal/config"
)

var schemaStdout bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for the configuration file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if schemaStdout {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Generated JSON schema: %s\n", path)
		return nil
	},
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaStdout, "stdout", false, "print the schema instead of writing it")
	rootCmd.AddCommand(schemaCmd)
}
