package cmd

import (
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"go.lepak.sg/gamekit/enum/gen"
)

const envPrefix = "ENUMGEN"

type rootOpts struct {
	types  []string
	dir    string
	suffix string
	debug  bool
}

var longRootCmdDescription = `enumgen reads the Go package in --dir and, for every type named by --type,
writes <type><suffix> whose init function registers the type's constants
with the enum package, in declaration order.

Every flag may also be set from the environment, e.g. ENUMGEN_TYPE=Direction.
`

// NewRootCmd returns the enumgen command operating on fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	v := viper.New()

	c := &cobra.Command{
		Use:           "enumgen",
		Short:         "Generate enum registrations for Go enumeration types",
		Long:          longRootCmdDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts := rootOpts{
				types:  splitTypes(v.GetStringSlice("type")),
				dir:    v.GetString("dir"),
				suffix: v.GetString("output-suffix"),
				debug:  v.GetBool("debug"),
			}
			if opts.debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return run(fs, opts)
		},
	}

	c.Flags().StringSlice("type", nil, "comma-separated list of type names (required)")
	c.Flags().String("dir", ".", "directory of the package declaring the types")
	c.Flags().String("output-suffix", gen.DefaultSuffix, "suffix of the generated file names")
	c.Flags().BoolP("debug", "d", false, "turn on debug logging")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(c.Flags()); err != nil {
		panic(errors.Wrap(err, "bind flags"))
	}

	return c
}

// Execute runs enumgen against the real filesystem and exits non-zero
// on failure.
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		logrus.Errorf("enumgen: %v", err)
		os.Exit(1)
	}
}

// splitTypes accepts both repeated flags and comma or space separated
// lists from the environment.
func splitTypes(in []string) []string {
	var out []string
	for _, s := range in {
		for _, t := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, t)
		}
	}
	return out
}

func run(fs afero.Fs, opts rootOpts) error {
	if len(opts.types) == 0 {
		return errors.New("no types given, use --type")
	}

	p, err := gen.Parse(fs, opts.dir)
	if err != nil {
		return err
	}
	logrus.Debugf("parsed package %s in %s", p.Name, p.Dir)

	// every type runs to completion; errs keeps each failure so they can
	// all be reported, errgroup only the first
	var g errgroup.Group
	errs := make([]error, len(opts.types))
	for i, typeName := range opts.types {
		i, typeName := i, typeName
		g.Go(func() error {
			path, err := gen.Write(fs, p, typeName, opts.suffix)
			if err != nil {
				errs[i] = errors.Wrapf(err, "type %s", typeName)
				return errs[i]
			}
			logrus.WithField("type", typeName).Infof("wrote %s", path)
			return nil
		})
	}
	if err := g.Wait(); err == nil {
		return nil
	}

	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
