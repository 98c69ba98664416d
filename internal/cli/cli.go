package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/fekuna/omnipos-products-cli/config"
	"github.com/fekuna/omnipos-products-cli/internal/database/sqlite"
	"github.com/fekuna/omnipos-products-cli/internal/logger"
	"github.com/fekuna/omnipos-products-cli/internal/market"
	marketRepoPkg "github.com/fekuna/omnipos-products-cli/internal/market/repository"
	marketUCPkg "github.com/fekuna/omnipos-products-cli/internal/market/usecase"
	"github.com/fekuna/omnipos-products-cli/internal/product"
	productRepoPkg "github.com/fekuna/omnipos-products-cli/internal/product/repository"
	productUCPkg "github.com/fekuna/omnipos-products-cli/internal/product/usecase"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Version is reported by --version and set via ldflags at release time.
var Version = "0.1.0"

// app holds what a single invocation needs. The database is opened by the
// root command's pre-run, after flags are parsed, so a rejected invocation
// never touches storage.
type app struct {
	cfg    *config.Config
	logger logger.ZapLogger
	dbPath string

	db       *sqlx.DB
	products product.UseCase
	markets  market.UseCase
}

// Execute runs one command against the database and closes it before
// returning. Tables go to stdout.
func Execute(ctx context.Context, cfg *config.Config, log logger.ZapLogger, args []string) error {
	return run(ctx, cfg, log, args, os.Stdout)
}

func run(ctx context.Context, cfg *config.Config, log logger.ZapLogger, args []string, out io.Writer) error {
	root, a := newRootCommand(cfg, log)
	root.SetArgs(args)
	root.SetOut(out)

	err := root.ExecuteContext(ctx)
	return multierr.Append(err, a.close())
}

func newRootCommand(cfg *config.Config, log logger.ZapLogger) (*cobra.Command, *app) {
	a := &app{
		cfg:    cfg,
		logger: log.With(zap.String("invocation_id", uuid.NewString())),
	}

	root := &cobra.Command{
		Use:           "products",
		Short:         "Record products, their markets and stock counts",
		Version:       Version,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			// cobra checks required flags only after this hook.
			if err := cmd.ValidateRequiredFlags(); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return a.open(cmd.Context())
		},
		RunE: func(*cobra.Command, []string) error {
			return nil
		},
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&a.dbPath, "db", cfg.SQLite.Path, "The data file name")

	root.AddCommand(
		newAddCommand(a),
		newDisplayCommand(a),
		newSelectCommand(a),
		newMarketsCommand(a),
	)

	return root, a
}

// open connects to the database, creates missing tables and wires the use
// cases.
func (a *app) open(ctx context.Context) error {
	db, err := sqlite.NewSQLite(ctx, &sqlite.Config{
		Path:         a.dbPath,
		BusyTimeout:  time.Duration(a.cfg.SQLite.BusyTimeout) * time.Millisecond,
		MaxOpenConns: a.cfg.SQLite.MaxOpenConns,
	})
	if err != nil {
		return err
	}
	a.db = db

	if err := sqlite.Migrate(ctx, db); err != nil {
		return err
	}
	a.logger.Debug("database ready", zap.String("path", a.dbPath))

	a.products = productUCPkg.NewProductUseCase(productRepoPkg.NewSQLiteRepository(db), a.logger)
	a.markets = marketUCPkg.NewMarketUseCase(marketRepoPkg.NewSQLiteRepository(db), a.logger)
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
