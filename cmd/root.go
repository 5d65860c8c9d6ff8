package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/skillgap/internal/ai"
	"github.com/spigell/skillgap/internal/ai/gemini"
	"github.com/spigell/skillgap/internal/ai/ollama"
	"github.com/spigell/skillgap/internal/document"
	"github.com/spigell/skillgap/internal/embedding"
	"github.com/spigell/skillgap/internal/github"
	"github.com/spigell/skillgap/internal/matching"
	"github.com/spigell/skillgap/internal/recommend"
	"github.com/spigell/skillgap/internal/roadmap"
)

const (
	app       = "skillgap"
	envPrefix = "SKILLGAP"
)

type Config struct {
	CatalogFile     string           `mapstructure:"catalog-file"`
	Skills          SkillsConfig     `mapstructure:"skills"`
	Matcher         MatcherConfig    `mapstructure:"matcher"`
	AI              AIConfig         `mapstructure:"ai"`
	GitHub          github.Config    `mapstructure:"github"`
	Recommendations recommend.Config `mapstructure:"recommendations"`
	Roadmap         roadmap.Config   `mapstructure:"roadmap"`
	Document        document.Config  `mapstructure:"document"`
}

type SkillsConfig struct {
	StrictShortLabels bool `mapstructure:"strict-short-labels"`
}

type MatcherConfig struct {
	matching.Config `mapstructure:",squash"`
	Embedding       embedding.ONNXConfig `mapstructure:"embedding"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider" validate:"omitempty,oneof=ollama gemini"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`
	Ollama   ollama.Config `mapstructure:"ollama"`
	Gemini   gemini.Config `mapstructure:"gemini"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "skillgap compares a resume against a job role and reports skill gaps, readiness and a learning roadmap",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skillgap.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("matcher.strategy", matching.StrategyLexical)
	v.SetDefault("matcher.threshold", matching.DefaultThreshold)
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.provider", ai.ProviderOllama)
	v.SetDefault("ai.timeout", ai.DefaultTimeout)
	v.SetDefault("ai.ollama.url", ollama.DefaultURL)
	v.SetDefault("ai.ollama.model", ollama.DefaultModel)
	v.SetDefault("ai.ollama.health-timeout", time.Second)
	v.SetDefault("github.timeout", 10*time.Second)
	v.SetDefault("recommendations.min-items", recommend.DefaultMinItems)
	v.SetDefault("roadmap.variant", string(roadmap.VariantSteps))
	v.SetDefault("document.max-chars", document.DefaultMaxChars)
	v.SetDefault("document.max-pages", document.DefaultMaxPages)
}

func initConfig() {
	// A missing .env is fine; it only pre-populates the environment.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// The default config file is optional, an explicit one is not.
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "reading config: %v\n", err)
			os.Exit(1)
		}
	}
}

func getConfig(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
