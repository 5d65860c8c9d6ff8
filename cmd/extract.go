package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/skillgap/internal/skills"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the text and skills extracted from a resume",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := getConfig(viper.GetViper())
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("resume")
		doc, err := readResume(config.Document, path)
		if err != nil {
			return err
		}

		cat, err := loadCatalog(config)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		found := skills.NewExtractor(cat.Vocabulary(), config.Skills.StrictShortLabels).Extract(doc.Text)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File: %s\n", doc.Name)
		if doc.Pages > 0 {
			fmt.Fprintf(out, "Pages: %d\n", doc.Pages)
		}
		fmt.Fprintf(out, "Truncated: %t\n", doc.Truncated)
		fmt.Fprintf(out, "Skills: %s\n\n", strings.Join(found, ", "))
		fmt.Fprintln(out, doc.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().String("resume", "", "path to the resume (pdf, docx, txt or md)")
	extractCmd.MarkFlagRequired("resume")
}
