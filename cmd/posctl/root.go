package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PeteShepley/simple-point-of-sale/client/api"
	"github.com/PeteShepley/simple-point-of-sale/client/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyAPIBase = "api_base"
	keyTimeout = "timeout"
)

// app is what every subcommand works with once flags and config are read.
type app struct {
	store *store.Store
	in    *bufio.Reader
	out   io.Writer
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	v := viper.New()
	a := &app{in: bufio.NewReader(in), out: out}

	root := &cobra.Command{
		Use:           "posctl",
		Short:         "Manage point-of-sale menus and items",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfig(v); err != nil {
				return err
			}
			client := api.New(api.Config{
				BaseURL: v.GetString(keyAPIBase),
				Timeout: v.GetDuration(keyTimeout),
			})
			a.store = store.New(client)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().String("api-base", api.DefaultBaseURL, "server base URL (env POS_API_BASE)")
	root.PersistentFlags().Duration("timeout", 10*time.Second, "request timeout")
	_ = v.BindPFlag(keyAPIBase, root.PersistentFlags().Lookup("api-base"))
	_ = v.BindPFlag(keyTimeout, root.PersistentFlags().Lookup("timeout"))
	v.SetEnvPrefix("POS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newMenusCmd(a), newItemsCmd(a))
	return root
}

// readConfig picks up an optional posctl.yaml from the working directory or
// ~/.config; flags and POS_* variables override it.
func readConfig(v *viper.Viper) error {
	v.SetConfigName("posctl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func (a *app) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// failed turns a rejected request into the command's error, using the
// message the store recorded.
func (a *app) failed() error {
	return errors.New(a.store.Error())
}

// confirm asks a yes/no question on the command's input.
func (a *app) confirm(question string) bool {
	fmt.Fprintf(a.out, "%s [y/N] ", question)
	line, _ := a.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func parseID(name, s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return uint(n), nil
}
