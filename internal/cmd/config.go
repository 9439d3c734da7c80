package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/adamwoolhether/sitefx/effects"
)

// EnvPrefix prefixes the environment variables that override config keys,
// e.g. SITEFX_SCROLLINTERVAL=32ms.
const EnvPrefix = "SITEFX"

// Output formats understood by the config command.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
	FormatHTML  = "html"
)

var formats = []string{FormatJSON, FormatYAML, FormatTable, FormatHTML}

// LoadConfig layers the config file at path, if any, and SITEFX_*
// environment variables over effects.DefaultConfig, then validates the
// result.
func LoadConfig(path string) (effects.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults, err := configMap(effects.DefaultConfig())
	if err != nil {
		return effects.Config{}, err
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return effects.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg effects.Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToFloat64HookFunc(),
		),
	})
	if err != nil {
		return effects.Config{}, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return effects.Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := effects.ValidateConfig(cfg); err != nil {
		return effects.Config{}, err
	}

	return cfg, nil
}

// configMap flattens cfg into its config keys.
func configMap(cfg effects.Config) (map[string]any, error) {
	m := make(map[string]any)
	if err := mapstructure.Decode(cfg, &m); err != nil {
		return nil, fmt.Errorf("failed to flatten config: %w", err)
	}

	return m, nil
}

// RenderConfig writes cfg to w in the given format. FormatHTML produces
// the script element the WebAssembly module reads its config from.
func RenderConfig(w io.Writer, cfg effects.Config, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()

	case FormatHTML:
		b, err := json.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "<script type=\"application/json\" id=%q>%s</script>\n", effects.ConfigElementID, b)
		return err

	case FormatTable:
		m, err := configMap(cfg)
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Key", "Value"})
		for _, k := range keys {
			t.AppendRow(table.Row{k, fmt.Sprint(m[k])})
		}
		t.Render()
		return nil
	}

	return fmt.Errorf("unknown format %q, want one of %v", format, formats)
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	var format string

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Validate and render the effect configuration",
		Long: `Load the effect configuration from --config and SITEFX_* environment
variables, validate it, and print it. Use --format html to produce the
script element the page embeds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr(), flags.verbose)

			cfg, err := LoadConfig(flags.cfgFile)
			if err != nil {
				return err
			}
			log.Debug("config loaded", "file", flags.cfgFile, "format", format)

			return RenderConfig(cmd.OutOrStdout(), cfg, format)
		},
	}

	configCmd.Flags().StringVarP(&format, "format", "f", FormatJSON, fmt.Sprintf("output format %v", formats))

	return configCmd
}
