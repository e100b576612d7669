package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ciphermsg/internal/app"
	"ciphermsg/internal/config"
)

// envPrefix is prepended to upper-cased flag names to find env fallbacks.
const envPrefix = "CIPHERMSG"

var errPassphraseRequired = errors.New("passphrase required (-p)")

// rootOptions holds the persistent flags and the wire built from them.
type rootOptions struct {
	configPath string
	home       string
	curve      string
	logLevel   string
	output     string
	passphrase string

	wire *app.Wire
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the ciphermsg command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "ciphermsg",
		Short:        "Encrypt short messages between two key pairs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setFlagsFromEnv(envPrefix, cmd.Flags()); err != nil {
				return err
			}

			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}
			w, err := app.NewWireWithLog(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.wire = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.StringVar(&opts.home, "home", "", "config dir (default ~/.ciphermsg)")
	pf.StringVar(&opts.curve, "curve", "", "key curve: ed25519, x25519 or x448 (default ed25519)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (default warning)")
	pf.StringVar(&opts.output, "output", "", "envelope encoding: hex or base64 (default hex)")
	pf.StringVarP(&opts.passphrase, "passphrase", "p", "", "passphrase protecting the key file")

	root.AddCommand(
		keygenCmd(opts),
		pubkeyCmd(opts),
		fingerprintCmd(opts),
		encodeCmd(opts),
		decodeCmd(opts),
	)
	return root
}

// config resolves defaults, then the YAML file, then the environment, then
// flags given on the command line.
func (o *rootOptions) config(fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg.ApplyEnv()

	var fromFlags config.Config
	if fs.Changed("home") {
		fromFlags.Home = o.home
	}
	if fs.Changed("curve") {
		fromFlags.Curve = o.curve
	}
	if fs.Changed("log-level") {
		fromFlags.LogLevel = o.logLevel
	}
	if fs.Changed("output") {
		fromFlags.Output = o.output
	}
	config.Merge(&cfg, fromFlags)
	return cfg, cfg.Validate()
}

func (o *rootOptions) requirePassphrase() error {
	if o.passphrase == "" {
		return errPassphraseRequired
	}
	return nil
}

// setFlagsFromEnv sets flags that were not given on the command line from
// <prefix>_<FLAG_NAME> environment variables. The first value a flag rejects
// is returned as an error naming the variable.
func setFlagsFromEnv(prefix string, fs *pflag.FlagSet) error {
	set := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = true
	})
	var firstErr error
	fs.VisitAll(func(f *pflag.Flag) {
		// ignore flags set from the commandline
		if set[f.Name] || firstErr != nil {
			return
		}
		cleanPrefix := strings.TrimSuffix(prefix, "_")
		name := fmt.Sprintf("%s_%s", cleanPrefix, strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_"))
		if e, ok := os.LookupEnv(name); ok {
			if err := f.Value.Set(e); err != nil {
				firstErr = fmt.Errorf("invalid value %q for %s: %w", e, name, err)
			}
		}
	})
	return firstErr
}
