package app

import (
	"context"
	"database/sql"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	accountAPI "mines_backend/internal/api/account"
	adminAPI "mines_backend/internal/api/admin"
	authAPI "mines_backend/internal/api/auth"
	minesAPI "mines_backend/internal/api/mines"
	settingsAPI "mines_backend/internal/api/settings"
	withdrawalAPI "mines_backend/internal/api/withdrawal"
	"mines_backend/internal/config"
	"mines_backend/internal/config/env"
	"mines_backend/internal/repository"
	"mines_backend/internal/repository/auth_repo"
	"mines_backend/internal/repository/ledger_repo"
	"mines_backend/internal/repository/settings_repo"
	"mines_backend/internal/repository/withdrawal_repo"
	"mines_backend/internal/service"
	"mines_backend/internal/service/admin"
	"mines_backend/internal/service/auth"
	"mines_backend/internal/service/game"
	"mines_backend/internal/service/ledger"
	"mines_backend/internal/service/settings"
	"mines_backend/internal/service/withdrawal"
	"mines_backend/internal/storage/pg"
	"mines_backend/internal/storage/sqlite"
	"mines_backend/pkg/pass"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Storage
	storageCfg config.StorageConfig
	pgConfig   config.PGConfig
	sqliteCfg  config.SQLiteConfig
	pgPool     *pgxpool.Pool
	sqliteDB   *sql.DB

	// Repositories
	ledgerRepo     repository.LedgerRepository
	withdrawalRepo repository.WithdrawalRepository
	settingsRepo   repository.SettingsRepository
	authRepo       repository.AuthRepository

	// Configs
	gameCfg  config.GameConfig
	jwtCfg   config.JWTConfig
	adminCfg config.AdminConfig
	httpCfg  config.HTTPConfig

	// Services
	ledgerServ     service.LedgerService
	withdrawalServ service.WithdrawalService
	settingsServ   service.SettingsService
	gameServ       service.GameService
	authServ       service.AuthService
	adminServ      service.AdminService

	// Handlers
	authHand       *authAPI.Handler
	minesHand      *minesAPI.Handler
	accountHand    *accountAPI.Handler
	withdrawalHand *withdrawalAPI.Handler
	adminHand      *adminAPI.Handler
	settingsHand   *settingsAPI.Handler

	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) usePostgres() bool {
	return sp.StorageCfg().Driver() == config.DriverPostgres
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) SQLiteCfg() config.SQLiteConfig {
	if sp.sqliteCfg == nil {
		cfg, err := env.NewSQLiteConfig()
		if err != nil {
			panic("failed to get sqlite config: " + err.Error())
		}
		sp.sqliteCfg = cfg
	}
	return sp.sqliteCfg
}

func (sp *ServiceProvider) PGPool(ctx context.Context) *pgxpool.Pool {
	if sp.pgPool == nil {
		pool, err := pg.Connect(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to connect to postgres: " + err.Error())
		}
		sp.pgPool = pool
	}
	return sp.pgPool
}

func (sp *ServiceProvider) SQLiteDB(ctx context.Context) *sql.DB {
	if sp.sqliteDB == nil {
		db, err := sqlite.Open(ctx, sp.SQLiteCfg().Path())
		if err != nil {
			panic("failed to open sqlite db: " + err.Error())
		}
		sp.sqliteDB = db
	}
	return sp.sqliteDB
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		var (
			m   *manager.Manager
			err error
		)
		if sp.usePostgres() {
			m, err = manager.New(trmpgx.NewDefaultFactory(sp.PGPool(ctx)))
		} else {
			m, err = manager.New(trmsql.NewDefaultFactory(sp.SQLiteDB(ctx)))
		}
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) LedgerRepo(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		if sp.usePostgres() {
			sp.ledgerRepo = ledger_repo.NewPGRepository(sp.PGPool(ctx))
		} else {
			sp.ledgerRepo = ledger_repo.NewSQLiteRepository(sp.SQLiteDB(ctx))
		}
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) WithdrawalRepo(ctx context.Context) repository.WithdrawalRepository {
	if sp.withdrawalRepo == nil {
		if sp.usePostgres() {
			sp.withdrawalRepo = withdrawal_repo.NewPGRepository(sp.PGPool(ctx))
		} else {
			sp.withdrawalRepo = withdrawal_repo.NewSQLiteRepository(sp.SQLiteDB(ctx))
		}
	}
	return sp.withdrawalRepo
}

func (sp *ServiceProvider) SettingsRepo(ctx context.Context) repository.SettingsRepository {
	if sp.settingsRepo == nil {
		if sp.usePostgres() {
			sp.settingsRepo = settings_repo.NewPGRepository(sp.PGPool(ctx))
		} else {
			sp.settingsRepo = settings_repo.NewSQLiteRepository(sp.SQLiteDB(ctx))
		}
	}
	return sp.settingsRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		if sp.usePostgres() {
			sp.authRepo = auth_repo.NewPGRepository(sp.PGPool(ctx))
		} else {
			sp.authRepo = auth_repo.NewSQLiteRepository(sp.SQLiteDB(ctx))
		}
	}
	return sp.authRepo
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(env.GameConfigPath())
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AdminCfg() config.AdminConfig {
	if sp.adminCfg == nil {
		cfg, err := env.NewAdminConfig()
		if err != nil {
			panic("failed to get admin config: " + err.Error())
		}
		sp.adminCfg = cfg
	}
	return sp.adminCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) LedgerService(ctx context.Context) service.LedgerService {
	if sp.ledgerServ == nil {
		sp.ledgerServ = ledger.NewLedgerService(sp.LedgerRepo(ctx), sp.TXManager(ctx))
	}
	return sp.ledgerServ
}

func (sp *ServiceProvider) WithdrawalService(ctx context.Context) service.WithdrawalService {
	if sp.withdrawalServ == nil {
		sp.withdrawalServ = withdrawal.NewWithdrawalService(sp.LedgerService(ctx), sp.WithdrawalRepo(ctx), sp.TXManager(ctx))
	}
	return sp.withdrawalServ
}

func (sp *ServiceProvider) SettingsService(ctx context.Context) service.SettingsService {
	if sp.settingsServ == nil {
		sp.settingsServ = settings.NewSettingsService(sp.SettingsRepo(ctx), sp.TXManager(ctx), sp.GameCfg())
	}
	return sp.settingsServ
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		gen, err := game.NewSecureGenerator()
		if err != nil {
			panic("failed to create round generator: " + err.Error())
		}
		sp.gameServ = game.NewGameService(gen, sp.SettingsService(ctx), sp.LedgerService(ctx))
	}
	return sp.gameServ
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.LedgerService(ctx),
			sp.SettingsService(ctx),
			sp.LedgerRepo(ctx),
			sp.AuthRepo(ctx),
			pass.NewBcryptHasher(0),
			sp.JWTCfg(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AdminService(ctx context.Context) service.AdminService {
	if sp.adminServ == nil {
		sp.adminServ = admin.NewAdminService(
			sp.AdminCfg().Secret(),
			sp.LedgerService(ctx),
			sp.AuthService(ctx),
			sp.SettingsService(ctx),
			sp.WithdrawalService(ctx),
		)
	}
	return sp.adminServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:            sp.AuthService(ctx),
			RefreshTokenTTL: sp.JWTCfg().RefreshTokenDuration(),
			SecureCookies:   sp.HTTPCfg().SecureCookies(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) MinesHandler(ctx context.Context) *minesAPI.Handler {
	if sp.minesHand == nil {
		sp.minesHand = minesAPI.NewHandler(minesAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.minesHand
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{Serv: sp.LedgerService(ctx)})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) WithdrawalHandler(ctx context.Context) *withdrawalAPI.Handler {
	if sp.withdrawalHand == nil {
		sp.withdrawalHand = withdrawalAPI.NewHandler(withdrawalAPI.HandlerDeps{Serv: sp.WithdrawalService(ctx)})
	}
	return sp.withdrawalHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Serv:      sp.AdminService(ctx),
			BoardSize: sp.SettingsService(ctx).BoardSize,
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) SettingsHandler(ctx context.Context) *settingsAPI.Handler {
	if sp.settingsHand == nil {
		sp.settingsHand = settingsAPI.NewHandler(settingsAPI.HandlerDeps{Serv: sp.SettingsService(ctx)})
	}
	return sp.settingsHand
}

// Close закрывает открытые соединения с хранилищем
func (sp *ServiceProvider) Close() error {
	if sp.pgPool != nil {
		sp.pgPool.Close()
	}
	if sp.sqliteDB != nil {
		return sp.sqliteDB.Close()
	}
	return nil
}
