// Command storagectl runs storage client operations from the shell.
//
//	storagectl --type blob --connection-string "$CONN" upload docs/a.txt ./a.txt
//	storagectl --type blob fetch -o a.txt docs/a.txt
//	storagectl exists /tmp/a.txt
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hupe1980/storageclient"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "storagectl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, rest, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}
	if len(rest) < 2 {
		return errors.New("expected a command and a path")
	}
	cmd, path := rest[0], rest[1]

	opts := []storageclient.Option{storageclient.WithLogLevel(cfg.LogLevel)}

	var sc *storageclient.Client
	if cfg.ConnectionString != "" {
		sc, err = storageclient.Open(ctx, cfg.ConnectionString, opts...)
		if err != nil {
			return err
		}
	} else {
		sc = storageclient.New(nil, opts...)
	}

	switch cmd {
	case "exists":
		ok, err := sc.Exists(ctx, cfg.FileType, path)
		if err != nil {
			return err
		}
		return emit(stdout, cfg.JSON, map[string]bool{"exists": ok}, fmt.Sprint(ok))

	case "fetch":
		resp, err := sc.Fetch(ctx, cfg.FileType, path, nil)
		if err != nil {
			return err
		}
		if !resp.Status {
			return emit(stdout, cfg.JSON, resp, resp.Message)
		}
		if cfg.JSON {
			return emit(stdout, true, resp, "")
		}
		if cfg.Output != "" {
			return os.WriteFile(cfg.Output, resp.RawData, 0o644)
		}
		_, err = stdout.Write(resp.RawData)
		return err

	case "delete":
		resp, err := sc.Delete(ctx, cfg.FileType, path, nil)
		if err != nil {
			return err
		}
		return emit(stdout, cfg.JSON, resp, resp.Message)

	case "upload":
		src := stdin
		if len(rest) > 2 && rest[2] != "-" {
			f, err := os.Open(rest[2])
			if err != nil {
				return err
			}
			defer f.Close()
			src = f
		}
		ok, err := sc.Upload(ctx, cfg.FileType, path, src, nil)
		if err != nil {
			return err
		}
		if err := emit(stdout, cfg.JSON, map[string]bool{"uploaded": ok}, fmt.Sprint(ok)); err != nil {
			return err
		}
		if !ok {
			return errors.New("upload failed")
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func emit(w io.Writer, asJSON bool, v any, text string) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
