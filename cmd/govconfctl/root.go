package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unkn0wn-root/govconf"
)

const (
	flagURL       = "url"
	flagGroup     = "group"
	flagLogFormat = "log-format"
	flagLogLevel  = "log-level"

	defaultURL = "redis://127.0.0.1:6379"
)

// errNotFound is returned by get when nothing is stored at the path.
var errNotFound = errors.New("not found")

type deps struct {
	dialer govconf.Dialer // nil => govconf.DefaultDialer
}

func newRootCmd(d deps) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("GOVCONF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "govconfctl",
		Short:        "Read and write governance configuration in a key/value store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.String(flagURL, defaultURL, "store url, e.g. redis://:pass@host:6379?group=dubbo&db=0 (env GOVCONF_URL)")
	pf.String(flagGroup, "", "group to address instead of the url's default")
	pf.String(flagLogFormat, "zap", "log format: zap, logrus or slog")
	pf.String(flagLogLevel, "warn", "log level")

	a := &app{v: v, deps: d}
	root.AddCommand(
		a.getCmd(),
		a.setCmd(),
		a.deleteCmd(),
		a.pathCmd(),
	)
	return root
}

type app struct {
	v    *viper.Viper
	deps deps
}

// open builds an initialized adapter from the bound flags. The returned
// func closes it and flushes the logger.
func (a *app) open(cmd *cobra.Command) (*govconf.KV, func(), error) {
	logger, flush, err := newLogger(a.v.GetString(flagLogFormat), a.v.GetString(flagLogLevel), cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	u, err := govconf.ParseURL(a.v.GetString(flagURL))
	if err != nil {
		flush()
		return nil, nil, err
	}

	kv := govconf.New(govconf.Options{Logger: logger, Dialer: a.deps.dialer})
	kv.SetURL(u)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := kv.Init(ctx); err != nil {
		flush()
		return nil, nil, err
	}
	return kv, func() {
		_ = kv.Close(context.Background())
		flush()
	}, nil
}

func (a *app) group() string { return a.v.GetString(flagGroup) }

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value stored at KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, done, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer done()
			val, ok, err := kv.GetGroupConfig(cmd.Context(), a.group(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				path, _ := kv.GroupPath(a.group(), args[0])
				return fmt.Errorf("%s: %w", path, errNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), val)
			return nil
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Store VALUE at KEY",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, done, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer done()
			if _, err := kv.SetGroupConfig(cmd.Context(), a.group(), args[0], args[1]); err != nil {
				return err
			}
			path, _ := kv.GroupPath(a.group(), args[0])
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete KEY",
		Aliases: []string{"del", "rm"},
		Short:   "Delete the value stored at KEY",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, done, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer done()
			_, err = kv.DeleteGroupConfig(cmd.Context(), a.group(), args[0])
			return err
		},
	}
}

// path needs no connection: only the url's group parameter is read.
func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path KEY",
		Short: "Print the store key KEY maps to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := govconf.ParseURL(a.v.GetString(flagURL))
			if err != nil {
				return err
			}
			kv := govconf.New(govconf.Options{})
			kv.SetURL(u)
			path, err := kv.GroupPath(a.group(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
