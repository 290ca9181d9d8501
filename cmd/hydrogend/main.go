// Command hydrogend is Hydrogen's process entry point: it loads AppConfig,
// registers the built-in subsystems with the registry, launches them in
// dependency order, and lands them in reverse on SIGINT/SIGTERM.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hydrogen-project/hydrogen/internal/config"
	"github.com/hydrogen-project/hydrogen/internal/lifecycle"
	"github.com/hydrogen-project/hydrogen/internal/registry"
	"github.com/hydrogen-project/hydrogen/internal/subsystems/httpserver"
	"github.com/hydrogen-project/hydrogen/internal/subsystems/mailrelay"
	"github.com/hydrogen-project/hydrogen/internal/subsystems/mdnsclient"
	"github.com/hydrogen-project/hydrogen/internal/subsystems/mdnsserver"
	"github.com/hydrogen-project/hydrogen/internal/subsystems/notify"
	"github.com/hydrogen-project/hydrogen/internal/subsystems/oidc"
	"github.com/hydrogen-project/hydrogen/internal/subsystems/print"
	"github.com/hydrogen-project/hydrogen/internal/subsystems/terminal"
	"github.com/hydrogen-project/hydrogen/internal/subsystems/websocket"
	"github.com/hydrogen-project/hydrogen/internal/telemetry"
	"github.com/hydrogen-project/hydrogen/pkg/buildinfo"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	log.Info().Str("version", buildinfo.String()).Msg("hydrogen starting")

	var cmdlinePath string
	if len(os.Args) > 1 {
		cmdlinePath = os.Args[1]
	}

	cfg, err := config.Load(cmdlinePath)
	if err != nil {
		log.Error().Err(err).Msg("configuration load failed")
		os.Exit(1)
	}
	defer config.Cleanup()

	shutdownTelemetry, err := telemetry.Init(cfg.Server.ServerName, buildinfo.Version)
	if err != nil {
		log.Error().Err(err).Msg("telemetry init failed")
		os.Exit(1)
	}

	reg := registry.New()
	ctrl := lifecycle.New(reg, 10*time.Second)

	registerBuiltinSubsystems(reg, ctrl, cfg)

	readiness := ctrl.CheckAllReadiness()
	launched := ctrl.LaunchReady(readiness)
	log.Info().Int("launched", launched).Int("registered", reg.Count()).Msg("startup launch pass complete")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, landing subsystems")
	ctrl.Landing()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("telemetry shutdown failed")
	}

	log.Info().Msg("hydrogen stopped")
}

// registerBuiltinSubsystems wires Hydrogen's nine built-in subsystems into
// reg and ctrl, in the same order cmd/hydrogend always declares them in —
// the declaration order the lifecycle controller's launch and landing
// sequences depend on.
func registerBuiltinSubsystems(reg *registry.Registry, ctrl *lifecycle.Controller, cfg *config.AppConfig) {
	web := httpserver.New(cfg.WebServer)
	httpID := reg.Register("httpserver", web)
	ctrl.Register(httpID, func() lifecycle.Readiness {
		ready, msgs := web.Readiness()
		return lifecycle.Readiness{Name: "httpserver", ID: httpID, Ready: ready, Messages: msgs}
	})

	ws := websocket.New(cfg.WebSocket)
	wsID := reg.Register("websocket", ws)
	ctrl.Register(wsID, func() lifecycle.Readiness {
		ready, msgs := ws.Readiness()
		return lifecycle.Readiness{Name: "websocket", ID: wsID, Ready: ready, Messages: msgs}
	})

	mdnsSrv := mdnsserver.New(cfg.MDNSServer)
	mdnsSrvID := reg.Register("mdnsserver", mdnsSrv)
	ctrl.Register(mdnsSrvID, func() lifecycle.Readiness {
		ready, msgs := mdnsSrv.Readiness()
		return lifecycle.Readiness{Name: "mdnsserver", ID: mdnsSrvID, Ready: ready, Messages: msgs}
	})

	mdnsCli := mdnsclient.New(cfg.MDNSClient)
	mdnsCliID := reg.Register("mdnsclient", mdnsCli)
	ctrl.Register(mdnsCliID, func() lifecycle.Readiness {
		ready, msgs := mdnsCli.Readiness()
		return lifecycle.Readiness{Name: "mdnsclient", ID: mdnsCliID, Ready: ready, Messages: msgs}
	})

	mail := mailrelay.New(cfg.MailRelay)
	mailID := reg.Register("mailrelay", mail)
	ctrl.Register(mailID, func() lifecycle.Readiness {
		ready, msgs := mail.Readiness()
		return lifecycle.Readiness{Name: "mailrelay", ID: mailID, Ready: ready, Messages: msgs}
	})

	pr := print.New(cfg.Print)
	printID := reg.Register("print", pr)
	ctrl.Register(printID, func() lifecycle.Readiness {
		ready, msgs := pr.Readiness()
		return lifecycle.Readiness{Name: "print", ID: printID, Ready: ready, Messages: msgs}
	})

	term := terminal.New(cfg.Terminal)
	termID := reg.Register("terminal", term)
	reg.AddDependency(termID, "httpserver")
	ctrl.Register(termID, func() lifecycle.Readiness {
		ready, msgs := term.Readiness()
		return lifecycle.Readiness{Name: "terminal", ID: termID, Ready: ready, Messages: msgs}
	})

	oid := oidc.New(cfg.OIDC)
	oidcID := reg.Register("oidc", oid)
	reg.AddDependency(oidcID, "httpserver")
	ctrl.Register(oidcID, func() lifecycle.Readiness {
		ready, msgs := oid.Readiness()
		return lifecycle.Readiness{Name: "oidc", ID: oidcID, Ready: ready, Messages: msgs}
	})

	nf := notify.New(cfg.Notify)
	notifyID := reg.Register("notify", nf)
	ctrl.Register(notifyID, func() lifecycle.Readiness {
		ready, msgs := nf.Readiness()
		return lifecycle.Readiness{Name: "notify", ID: notifyID, Ready: ready, Messages: msgs}
	})
}
