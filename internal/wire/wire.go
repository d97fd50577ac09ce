// Package wire provides dependency injection for the ippo application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/ippo/internal/adapters/cli"
	"github.com/example/ippo/internal/adapters/sqlite"
	"github.com/example/ippo/internal/app"
	"github.com/example/ippo/internal/db"
	"github.com/example/ippo/internal/ports/primary"
)

var (
	ippoService        primary.IppoService
	preferencesService primary.PreferencesService
	logService         primary.LogService
	once               sync.Once
)

// IppoService returns the singleton IppoService instance.
func IppoService() primary.IppoService {
	once.Do(initServices)
	return ippoService
}

// PreferencesService returns the singleton PreferencesService instance.
func PreferencesService() primary.PreferencesService {
	once.Do(initServices)
	return preferencesService
}

// LogService returns the singleton LogService instance.
func LogService() primary.LogService {
	once.Do(initServices)
	return logService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports)
	ippoRepo := sqlite.NewIppoRepository(database)
	prefsRepo := sqlite.NewPreferencesRepository(database)
	logRepo := sqlite.NewActivityLogRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(logRepo)

	// Services (primary ports implementation)
	ippoService = app.NewIppoService(ippoRepo, prefsRepo, logWriter)
	preferencesService = app.NewPreferencesService(prefsRepo)
	logService = app.NewLogService(logRepo)
}

// IppoAdapter returns a new IppoAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func IppoAdapter() *cliadapter.IppoAdapter {
	return IppoAdapterWithOutput(os.Stdout)
}

// IppoAdapterWithOutput returns a new IppoAdapter writing to the given output.
func IppoAdapterWithOutput(out io.Writer) *cliadapter.IppoAdapter {
	once.Do(initServices)
	return cliadapter.NewIppoAdapter(ippoService, out)
}

// AchievedAdapter returns a new AchievedAdapter writing to stdout.
func AchievedAdapter() *cliadapter.AchievedAdapter {
	return AchievedAdapterWithOutput(os.Stdout)
}

// AchievedAdapterWithOutput returns a new AchievedAdapter writing to the given output.
func AchievedAdapterWithOutput(out io.Writer) *cliadapter.AchievedAdapter {
	once.Do(initServices)
	return cliadapter.NewAchievedAdapter(ippoService, out)
}
