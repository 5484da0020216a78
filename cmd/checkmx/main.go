package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/drahoslavzan/checkmx"
	"github.com/drahoslavzan/checkmx/internal/config"
	"github.com/drahoslavzan/checkmx/internal/logger"
)

const usage = `Usage: checkmx <emails.txt|emails.csv>
       checkmx <email1@example.com> [email2@test.org ...]
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run checks the addresses args stand for and returns the exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	emails, err := checkmx.Collect(args)
	if err != nil {
		return fatal(stdout, err)
	}

	cfg, err := config.Load("")
	if err != nil {
		return fatal(stdout, err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, stderr).
		With().
		Str("run_id", logger.NewRunID()).
		Logger()
	ctx = logger.WithLogger(ctx, log)

	resolver, err := newResolver(cfg.DNS, log)
	if err != nil {
		return fatal(stdout, err)
	}

	v := checkmx.NewVerifier().
		Resolver(resolver).
		Timeout(cfg.DNS.Timeout)
	if !cfg.Suggest {
		v.DisableDomainSuggest()
	}

	log.Debug().Int("count", len(emails)).Str("resolver", cfg.DNS.Resolver).Msg("checking addresses")
	results := v.VerifyAll(ctx, emails)

	p := checkmx.NewPrinter(stdout)
	if useColor(cfg.Output.Color, stdout) {
		p.EnableColor()
	}
	if err := p.Print(results); err != nil {
		log.Error().Err(err).Msg("write report")
		return 1
	}
	return 0
}

func newResolver(cfg config.DNSConfig, log zerolog.Logger) (checkmx.Resolver, error) {
	if cfg.Resolver == config.ResolverSystem {
		return net.DefaultResolver, nil
	}

	servers := cfg.Nameservers
	if len(servers) == 0 {
		var err error
		if servers, err = checkmx.NameserversFromResolvConf(cfg.ResolvConf); err != nil {
			// Every lookup then reports that no DNS server is available
			log.Warn().Err(err).Str("path", cfg.ResolvConf).Msg("read nameservers")
		}
	}

	r := checkmx.NewDNSResolver(servers...)
	if cfg.TCP {
		r.UseTCP()
	}
	if cfg.Proxy != "" {
		if _, err := r.Proxy(cfg.Proxy); err != nil {
			return nil, fmt.Errorf("dns.proxy: %w", err)
		}
	}

	log.Debug().Strs("nameservers", r.Nameservers()).Bool("tcp", cfg.TCP).Msg("dns resolver")
	return r, nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return w == os.Stdout && !color.NoColor
	}
}

// fatal reports err as a single line, usage errors with the usage text
func fatal(w io.Writer, err error) int {
	var fe *checkmx.FileError
	switch {
	case errors.Is(err, checkmx.ErrUsage):
		fmt.Fprint(w, usage)
	case errors.As(err, &fe):
		fmt.Fprintf(w, "File %s not found.\n", fe.Path)
	case errors.Is(err, checkmx.ErrNoEmails):
		fmt.Fprintln(w, "No email addresses found.")
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return 1
}
