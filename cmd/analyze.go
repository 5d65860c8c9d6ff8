package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skillgap/internal/analysis"
	"github.com/spigell/skillgap/internal/catalog"
	"github.com/spigell/skillgap/internal/logger"
	"github.com/spigell/skillgap/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job role",
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("resume", "", "path to the resume (pdf, docx, txt or md)")
	analyzeCmd.Flags().String("role", "", "target job role (asked interactively when omitted)")
	analyzeCmd.Flags().String("github", "", "github username used for the reputation score")
	analyzeCmd.Flags().StringP("output", "o", report.FormatText, "report format: text or json")
	analyzeCmd.Flags().String("xlsx", "", "also write the report as an Excel workbook to this path")
	analyzeCmd.Flags().Bool("cover-letter", false, "draft a cover letter")
	analyzeCmd.Flags().String("name", "", "candidate name for the cover letter")
	analyzeCmd.Flags().String("company", "", "company name for the cover letter")
	analyzeCmd.Flags().String("matcher", "", "matching strategy: lexical or semantic")
	analyzeCmd.Flags().Bool("ai", false, "enable ai generation")
	analyzeCmd.Flags().String("roadmap-variant", "", "roadmap format: steps or weeks")

	analyzeCmd.MarkFlagRequired("resume")

	viper.BindPFlag("matcher.strategy", analyzeCmd.Flags().Lookup("matcher"))
	viper.BindPFlag("ai.enabled", analyzeCmd.Flags().Lookup("ai"))
	viper.BindPFlag("roadmap.variant", analyzeCmd.Flags().Lookup("roadmap-variant"))
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	log, err := logger.New(logger.Options{JSON: viper.GetBool("json"), Debug: viper.GetBool("debug")})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	config, err := getConfig(viper.GetViper())
	if err != nil {
		return err
	}
	log.Debug("config loaded", zap.Any("config", config))

	flags := cmd.Flags()
	resumePath, _ := flags.GetString("resume")
	role, _ := flags.GetString("role")
	username, _ := flags.GetString("github")
	format, _ := flags.GetString("output")
	xlsxPath, _ := flags.GetString("xlsx")
	coverLetter, _ := flags.GetBool("cover-letter")
	name, _ := flags.GetString("name")
	company, _ := flags.GetString("company")

	if format != report.FormatText && format != report.FormatJSON {
		return fmt.Errorf("unsupported output format: %s", format)
	}

	doc, err := readResume(config.Document, resumePath)
	if err != nil {
		return err
	}
	if doc.Truncated {
		log.Warn("resume text was truncated", zap.String("file", doc.Name))
	}

	ctx := cmd.Context()
	rt, err := newRuntime(ctx, config, log)
	if err != nil {
		return err
	}
	defer rt.Close()

	if role == "" {
		role, err = selectRole(rt.catalog)
		if err != nil {
			return err
		}
	}

	rep, err := rt.analyzer.Run(ctx, analysis.Request{
		Text:        doc.Text,
		Role:        role,
		Username:    username,
		CoverLetter: coverLetter,
		Name:        name,
		Company:     company,
	})
	if errors.Is(err, analysis.ErrUnsupportedRole) {
		return fmt.Errorf("%w (available: %v)", err, rt.catalog.Roles())
	}
	if err != nil {
		return err
	}

	if err := report.Write(cmd.OutOrStdout(), format, rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if xlsxPath != "" {
		if err := report.WriteXLSX(xlsxPath, rep); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		log.Info("workbook written", zap.String("path", xlsxPath))
	}

	return nil
}

func selectRole(cat *catalog.Catalog) (string, error) {
	prompt := promptui.Select{
		Label:  "Target role",
		Items:  cat.Roles(),
		Size:   10,
		Stdout: os.Stderr,
	}

	_, role, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("select role: %w", err)
	}
	return role, nil
}
