package states

import (
	"fmt"
	"log"
	"strings"

	funfact_store "github.com/ethanbaker/states-api/internal/stores/funfact"
	"github.com/ethanbaker/states-api/pkg/catalog"
	"github.com/ethanbaker/states-api/pkg/funfact"
	"github.com/ethanbaker/states-api/pkg/utils"
	"github.com/go-sql-driver/mysql"
)

// Init builds the states service from configuration: the catalog from
// CATALOG_PATH (embedded data when unset) and the store from FUNFACT_STORE
func Init(cfg *utils.Config) (*StatesService, error) {
	cat, err := catalog.Load(cfg.Get("CATALOG_PATH"))
	if err != nil {
		return nil, fmt.Errorf("failed to load state catalog: %w", err)
	}

	store, err := NewStoreFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	log.Printf("[STATES]: Loaded %d states", cat.Len())
	return NewStatesService(cat, store), nil
}

// NewStoreFromConfig selects the fun fact backend. Without FUNFACT_STORE the
// MySQL store is used when MYSQL_DATABASE is set, otherwise the in-memory one
func NewStoreFromConfig(cfg *utils.Config) (funfact.StoreInterface, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Get("FUNFACT_STORE")))
	if backend == "" {
		backend = "memory"
		if cfg.Get("MYSQL_DATABASE") != "" {
			backend = "mysql"
		}
	}

	switch backend {
	case "mysql":
		// Create MySQL config
		dbConfig := mysql.NewConfig()
		dbConfig.User = cfg.Get("MYSQL_USER")
		dbConfig.Passwd = cfg.Get("MYSQL_ROOT_PASSWORD")
		dbConfig.Net = "tcp"
		dbConfig.Addr = fmt.Sprintf("%s:%s", cfg.GetWithDefault("MYSQL_HOST", "localhost"), cfg.GetWithDefault("MYSQL_PORT", "3306"))
		dbConfig.DBName = cfg.Get("MYSQL_DATABASE")
		dbConfig.ParseTime = true

		if dbConfig.DBName == "" {
			return nil, fmt.Errorf("MYSQL_DATABASE must be set for the mysql fun fact store")
		}

		store, err := funfact_store.NewStore(dbConfig.FormatDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql fun fact store: %w", err)
		}
		return store, nil

	case "sqlite":
		path := cfg.GetWithDefault("SQLITE_PATH", "funfacts.db")
		store, err := funfact_store.NewSQLiteStore(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite fun fact store: %w", err)
		}
		log.Printf("[FUNFACT-STORE]: Using sqlite database at %s", path)
		return store, nil

	case "memory":
		log.Println("[FUNFACT-STORE]: Warning, using in-memory store (data will not persist across restarts)")
		return funfact_store.NewInMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown FUNFACT_STORE '%s' (expected mysql, sqlite or memory)", backend)
	}
}
