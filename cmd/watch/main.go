package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"tracker/internal/app"
	"tracker/internal/entities"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/datefmt"
	"tracker/internal/pkg/dotenv"
	"tracker/internal/pkg/i18n"
	"tracker/internal/pkg/postgres"
	"tracker/internal/presenter"
	"tracker/internal/repository/order_notify"
	"tracker/internal/service/orderlist"
	"tracker/pkg/logger"
	"tracker/pkg/logger/zap_adapter"
)

type command int

const (
	commandUnknown command = iota
	commandOpen
	commandClosed
	commandRetry
	commandQuit
)

func parseCommand(line string) command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "open", "o":
		return commandOpen
	case "closed", "c":
		return commandClosed
	case "retry", "r":
		return commandRetry
	case "quit", "q", "exit":
		return commandQuit
	default:
		return commandUnknown
	}
}

func main() {
	status := flag.String("status", string(entities.DefaultOrderStatus), "initial filter: open | closed")
	locale := flag.String("locale", "", "screen locale, overrides DISPLAY_LOCALE")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	// stdout занят экраном
	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.WithOutputPaths("stderr"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	}

	cfg, err := config.LoadForWatch()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}
	if *locale != "" {
		cfg.Display.Locale = *locale
	}

	initial, ok := entities.ParseOrderStatus(*status)
	if !ok {
		mainLog.Error("invalid status flag", logger.NewField("status", *status))
		return
	}

	err = run(context.Background(), cfg, appLogger, initial, os.Stdin, os.Stdout, !*noColor)
	if err != nil {
		mainLog.Error("watch failed", logger.NewField("error", err))
		return
	}
}

func run(
	ctx context.Context,
	cfg *config.Config,
	log logger.Logger,
	initial entities.OrderStatusType,
	in io.Reader,
	out io.Writer,
	colored bool,
) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With(logger.NewField("component", "watch"))

	translator, err := i18n.New(cfg.Display.Locale)
	if err != nil {
		return fmt.Errorf("i18n: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	watchApp, err := app.InitializeWatchApp(log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer watchApp.Hub.Close()

	listener := order_notify.New(
		pool,
		runLog,
		postgres.ReconnectRetrier(log),
		watchApp.Hub.Invalidate,
		watchApp.Hub.InvalidateAll,
	)
	listenerErr := make(chan error, 1)
	go func() {
		defer close(listenerErr)
		if err := listener.Run(ctx); err != nil {
			listenerErr <- err
		}
	}()

	tag := translator.Default()
	screen := newView(out, presenter.New(translator), tag, colored)

	binder := orderlist.NewBinder(watchApp.Hub, datefmt.New(tag, cfg.Display.Location), runLog, screen.push)
	defer binder.Close()

	// ошибка подписки уже в состоянии, экран покажет ее с предложением повторить
	if err := binder.SetFilter(ctx, initial); err != nil {
		runLog.Warn("subscribe", logger.NewField("error", err))
	}

	commands := readCommands(in)

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-listenerErr:
			if ok && err != nil {
				return fmt.Errorf("change feed: %w", err)
			}
			listenerErr = nil

		case state := <-screen.states:
			if err := screen.render(state); err != nil {
				return err
			}

		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			if err := apply(ctx, binder, cmd); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				runLog.Warn("command failed", logger.NewField("error", err))
			}
		}
	}
}

var errQuit = errors.New("quit")

func apply(ctx context.Context, binder *orderlist.Binder, cmd command) error {
	switch cmd {
	case commandOpen:
		return binder.SetFilter(ctx, entities.OrderOpen)
	case commandClosed:
		return binder.SetFilter(ctx, entities.OrderClosed)
	case commandRetry:
		return binder.Retry(ctx)
	case commandQuit:
		return errQuit
	default:
		return fmt.Errorf("unknown command, use %s", commandsHint)
	}
}

// readCommands читает stdin построчно; канал закрывается на EOF.
func readCommands(in io.Reader) <-chan command {
	commands := make(chan command)
	go func() {
		defer close(commands)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if strings.TrimSpace(scanner.Text()) == "" {
				continue
			}
			commands <- parseCommand(scanner.Text())
		}
	}()
	return commands
}
