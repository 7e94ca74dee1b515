// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var cfg = viper.New()

var rootCmd = &cobra.Command{
	Use:   "intcode",
	Short: "Intcode virtual machine toolkit",
	Long: `intcode runs Intcode programs, searches amplifier phase settings and
converts programs to and from a simple assembly language.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: configure,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config `file` (default $HOME/.intcode.yaml or ./.intcode.yaml)")
	pf.String("env-file", ".env", "load environment variables from `file`")
	pf.String("log-level", "warn", "log `level`: panic, fatal, error, warn, info, debug or trace")
	pf.String("log-format", "text", "log `format`: text or json")
	pf.String("log-file", "", "write logs to `file` instead of stderr")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(ampCmd)
	rootCmd.AddCommand(disasmCmd)
	rootCmd.AddCommand(asmCmd)
}

// configure loads the .env file and config file, binds flags and sets up
// logging.
func configure(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(cfg, cmd.Flags()); err != nil {
		return err
	}
	if envFile := cfg.GetString("env-file"); envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && (cmd.Flags().Changed("env-file") || !os.IsNotExist(errors.Cause(err))) {
			return errors.Wrapf(err, "load %s", envFile)
		}
	}
	cfg.SetEnvPrefix("intcode")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	if file := cfg.GetString("config"); file != "" {
		cfg.SetConfigFile(file)
		if err := cfg.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", file)
		}
	} else {
		cfg.SetConfigName(".intcode")
		if home, err := os.UserHomeDir(); err == nil {
			cfg.AddConfigPath(home)
		}
		cfg.AddConfigPath(".")
		if err := cfg.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return errors.Wrap(err, "read config")
			}
		}
	}
	return setupLogging(cfg, cmd.ErrOrStderr())
}

// bindFlags binds every flag in fs to the viper key of the same name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) (err error) {
	fs.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = errors.Wrapf(v.BindPFlag(f.Name, f), "bind flag --%s", f.Name)
		}
	})
	return err
}

func setupLogging(v *viper.Viper, stderr io.Writer) error {
	lvl, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetLevel(lvl)
	switch f := v.GetString("log-format"); f {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %q", f)
	}
	if file := v.GetString("log-file"); file != "" {
		logrus.SetOutput(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
	} else {
		logrus.SetOutput(stderr)
	}
	return nil
}

func atExit(err error) {
	if err == nil {
		return
	}
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		fmt.Fprintf(os.Stderr, "intcode: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "intcode: %+v\n", err)
	os.Exit(1)
}

func main() {
	atExit(rootCmd.Execute())
}
