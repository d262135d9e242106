// phonemize CLI - rule-based grapheme-to-phoneme toolkit.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"phonemize/internal/batch"
	"phonemize/internal/config"
	"phonemize/internal/kana"
	"phonemize/internal/normalizer"
	"phonemize/internal/phonemizer"
	"phonemize/internal/similarity"
	"phonemize/internal/ui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "phonemize",
	Short: "Rule-based grapheme-to-phoneme toolkit",
	Long: `phonemize converts text into the phoneme strings consumed by the
acoustic model, using per-dialect substitution rules.

Example:
  phonemize text "Hello world"               # af_heart, American English
  phonemize text --voice ff_siwis "bonjour"
  phonemize voices --dialect en-GB
  phonemize batch -i lines.tsv --store`,
	SilenceUsage: true,
}

var textCmd = &cobra.Command{
	Use:   "text [text...]",
	Short: "Phonemize text from arguments or stdin",
	RunE:  runText,
}

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List voices and their dialects",
	Args:  cobra.NoArgs,
	RunE:  runVoices,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is config.toml in the project root)")
	pf.String("voice", "", "Voice whose dialect is used")
	pf.String("dialect", "", "Dialect tag (overrides the voice's dialect)")
	pf.Bool("normalize", false, "Normalize input to NFC and fold full-width forms")
	pf.Bool("kana", false, "Replace kanji with katakana readings for ja-JP")
	pf.BoolP("quiet", "q", false, "Suppress progress output")
	pf.BoolP("verbose", "v", false, "Verbose logging")

	viper.BindPFlag("voice", pf.Lookup("voice"))
	viper.BindPFlag("dialect", pf.Lookup("dialect"))
	viper.BindPFlag("normalize_input", pf.Lookup("normalize"))
	viper.BindPFlag("kana_reading", pf.Lookup("kana"))
	viper.BindPFlag("quiet", pf.Lookup("quiet"))
	viper.BindPFlag("verbose", pf.Lookup("verbose"))

	voicesCmd.Flags().String("near", "", "Suggest voices spelled like this name")

	rootCmd.AddCommand(textCmd, voicesCmd, batchCmd)
}

func initConfig() {
	cfg := config.Load()
	if cfgFile != "" {
		decoded, err := config.Decode(cfgFile)
		cobra.CheckErr(err)
		cfg = decoded
	}

	d := cfg.Defaults
	viper.SetDefault("voice", d.Voice)
	viper.SetDefault("dialect", d.Dialect)
	viper.SetDefault("workers", d.Workers)
	viper.SetDefault("output_dir", d.OutputDir)
	viper.SetDefault("database", d.Database)
	viper.SetDefault("normalize_input", d.NormalizeInput)
	viper.SetDefault("kana_reading", d.KanaReading)
	viper.SetDefault("metrics", d.Metrics)
	viper.SetDefault("metrics_dir", d.MetricsDir)
	viper.SetDefault("quiet", d.Quiet)
	viper.SetDefault("verbose", d.Verbose)

	viper.SetEnvPrefix("PHONEMIZE")
	viper.AutomaticEnv()
}

// selectLanguage points engine at the configured dialect, or the voice's
// dialect when none is configured.
func selectLanguage(engine *phonemizer.Engine, voice string) error {
	if tag := viper.GetString("dialect"); tag != "" {
		d, err := phonemizer.ParseDialect(tag)
		if err != nil {
			return err
		}
		return engine.SetDialect(d)
	}
	return engine.SetLanguage(phonemizer.Voice(voice))
}

// preprocessor builds the input rewriting configured for this run, or nil.
func preprocessor() (batch.Preprocessor, error) {
	var steps []batch.Preprocessor

	if viper.GetBool("normalize_input") {
		steps = append(steps, func(text string, _ phonemizer.Dialect) string {
			return normalizer.Normalize(text, normalizer.DefaultOptions)
		})
	}
	if viper.GetBool("kana_reading") {
		reader, err := kana.New()
		if err != nil {
			return nil, err
		}
		steps = append(steps, reader.Preprocess)
	}

	if len(steps) == 0 {
		return nil, nil
	}
	return func(text string, d phonemizer.Dialect) string {
		for _, step := range steps {
			text = step(text, d)
		}
		return text
	}, nil
}

// suggestVoices logs close voice names for an unknown voice.
func suggestVoices(term *ui.UI, name string) {
	suggestions := similarity.NewVoiceIndex().Suggest(name, 3)
	if len(suggestions) == 0 {
		return
	}
	names := make([]string, len(suggestions))
	for i, v := range suggestions {
		names[i] = string(v)
	}
	term.Info(fmt.Sprintf("Did you mean: %s?", strings.Join(names, ", ")))
}

func runText(cmd *cobra.Command, args []string) error {
	term := ui.New(viper.GetBool("quiet"), viper.GetBool("verbose"))
	voice := viper.GetString("voice")

	engine := phonemizer.NewEngine()
	if err := selectLanguage(engine, voice); err != nil {
		if errors.Is(err, phonemizer.ErrLanguageNotFound) && viper.GetString("dialect") == "" {
			suggestVoices(term, voice)
		}
		return err
	}
	term.Logger().Debug("language selected", term.Logger().Args("voice", voice, "dialect", engine.Dialect().String()))

	pre, err := preprocessor()
	if err != nil {
		return err
	}

	phonemize := func(text string) error {
		if pre != nil {
			text = pre(text, engine.Dialect())
		}
		phonemes, err := engine.Phonemize(text)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), phonemes)
		return nil
	}

	if len(args) > 0 {
		return phonemize(strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if err := phonemize(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runVoices(cmd *cobra.Command, args []string) error {
	term := ui.New(viper.GetBool("quiet"), viper.GetBool("verbose"))

	if near, _ := cmd.Flags().GetString("near"); near != "" {
		suggestions := similarity.NewVoiceIndex().Suggest(near, 5)
		if len(suggestions) == 0 {
			term.Warning(fmt.Sprintf("No voice close to %q", near))
			return nil
		}
		rows := make([][2]string, 0, len(suggestions))
		for _, v := range suggestions {
			d, _ := phonemizer.LanguageForVoice(v)
			rows = append(rows, [2]string{string(v), d.String()})
		}
		term.VoiceTable(rows)
		return nil
	}

	voices := phonemizer.Voices()
	if tag := viper.GetString("dialect"); tag != "" {
		d, err := phonemizer.ParseDialect(tag)
		if err != nil {
			return err
		}
		voices = phonemizer.VoicesFor(d)
	}

	rows := make([][2]string, 0, len(voices))
	counts := make(map[string]int)
	for _, v := range voices {
		d, _ := phonemizer.LanguageForVoice(v)
		rows = append(rows, [2]string{string(v), d.String()})
		counts[d.String()]++
	}
	term.VoiceTable(rows)
	term.CountTable("Dialect", counts)
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
