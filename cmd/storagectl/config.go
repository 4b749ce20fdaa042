package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/storageclient"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	ConnectionString string
	FileType         storageclient.FileType
	LogLevel         slog.Level
	Output           string
	JSON             bool
}

// loadConfig resolves flags, STORAGECTL_* environment variables and an
// optional config file, in that order of precedence. It returns the
// remaining positional arguments.
func loadConfig(args []string, stderr io.Writer) (*config, []string, error) {
	fs := pflag.NewFlagSet("storagectl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: storagectl [flags] <exists|fetch|delete|upload> <path> [source]")
		fs.PrintDefaults()
	}

	fs.String("config", "", "config file (yaml, json or toml)")
	fs.String("connection-string", "", "remote store connection string")
	fs.StringP("type", "t", "disk", "file type: disk or blob")
	fs.String("log-level", "warn", "log level: debug, info, warn, error")
	fs.StringP("output", "o", "", "fetch: write content to this file instead of stdout")
	fs.Bool("json", false, "print the response as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("storagectl")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, nil, err
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read config: %w", err)
		}
	}

	ft, err := storageclient.ParseFileType(v.GetString("type"))
	if err != nil {
		return nil, nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	return &config{
		ConnectionString: v.GetString("connection-string"),
		FileType:         ft,
		LogLevel:         level,
		Output:           v.GetString("output"),
		JSON:             v.GetBool("json"),
	}, fs.Args(), nil
}
