package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// GetInstance returns the process wide database, opening and migrating it on
// first use.
func GetInstance(dialector gorm.Dialector) *DB {
	once.Do(func() {
		var err error
		if instance, err = Open(dialector); err != nil {
			log.Fatal("Failed to open database: ", err)
		}
	})
	return instance
}

// Open connects and migrates a new database handle. Unlike GetInstance it is
// not shared, which is what tests want.
func Open(dialector gorm.Dialector) (*DB, error) {
	logger := common.GetLogger()

	conn, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	if isMemoryDialector(dialector) {
		// a shared-cache memory database reports SQLITE_LOCKED instead of
		// waiting when two connections contend, so keep a single one
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable sqlite foreign key support: %w", err)
	}

	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	logger.Info("Database migration completed")

	return &DB{Conn: conn}, nil
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Apar{},
		&models.Inspection{},
		&models.InspectionItem{},
	)
}

func (d *DB) Close() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyAparDbPath); !found || dbPath == "" {
		dbPath = "apar.db"
	}
	return UseSqliteFileDialector(dbPath)
}

// UseSqliteFileDialector opens the sqlite file at dbPath in WAL mode, so
// readers keep seeing the last committed state while a write is in progress.
func UseSqliteFileDialector(dbPath string) gorm.Dialector {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return sqlite.Open(dbPath + sep + "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL")
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared&_foreign_keys=on")
}

// UseIsolatedMemorySqliteDialector names the memory database uniquely so two
// handles never see each other's rows.
func UseIsolatedMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:apar-%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()))
}

func isMemoryDialector(dialector gorm.Dialector) bool {
	d, ok := dialector.(*sqlite.Dialector)
	if !ok {
		return false
	}
	return strings.Contains(d.DSN, ":memory:") || strings.Contains(d.DSN, "mode=memory")
}
