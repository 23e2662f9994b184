package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/meetly-app/meetly-cli/internal/cli"
	"github.com/meetly-app/meetly-cli/internal/constants"
	"github.com/meetly-app/meetly-cli/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	cacheReachable := false

	// Check 1: cache reachable
	if err := checkCacheReachable(ctx); err != nil {
		fmt.Printf("❌ Cache reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Cache reachable: OK\n")
		cacheReachable = true
	}

	// Check 2: cache freshness (warning only)
	if cacheReachable {
		if err := checkCacheFreshness(ctx); err != nil {
			fmt.Printf("⚠ Cache freshness: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Cache freshness: OK\n")
		}
	} else {
		fmt.Printf("⊘ Cache freshness: SKIPPED (cache not reachable)\n")
	}

	// Check 3: keyring token
	if err := checkKeyringToken(); err != nil {
		fmt.Printf("❌ Keyring token: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Keyring token: OK\n")
	}

	// Check 4: API reachable
	if err := checkAPIReachable(ctx); err != nil {
		fmt.Printf("❌ API reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ API reachable: OK\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 6: concurrent instances (warning only)
	if err := checkConcurrentInstances(); err != nil {
		fmt.Printf("⚠ Concurrent instances: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent instances: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkCacheReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load cache: %w", err)
	}
	if _, err := ctx.Store.GetLastSyncedAt(); err != nil {
		return fmt.Errorf("failed to query cache: %w", err)
	}
	return nil
}

func checkCacheFreshness(ctx *cli.Context) error {
	syncedAt, err := ctx.Store.GetLastSyncedAt()
	if err != nil {
		return fmt.Errorf("failed to read sync timestamp: %w", err)
	}
	if syncedAt == "" {
		return fmt.Errorf("cache has never been synced - run 'meetly sync'")
	}

	parsed, err := time.Parse(time.RFC3339, syncedAt)
	if err != nil {
		return fmt.Errorf("sync timestamp is corrupted: %q", syncedAt)
	}
	if time.Since(parsed) > 7*24*time.Hour {
		return fmt.Errorf("cache last synced %s - run 'meetly sync'", parsed.Format(constants.DateFormat))
	}
	return nil
}

func checkKeyringToken() error {
	_, err := keyring.GetToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no stored token - run 'meetly login'")
		}
		return err
	}
	return nil
}

func checkAPIReachable(ctx *cli.Context) error {
	if !ctx.API.HasToken() {
		return fmt.Errorf("no token configured, skipping (run 'meetly login')")
	}

	checkCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := ctx.API.GetUserSettings(checkCtx); err != nil {
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset < -14*3600 || offset > 14*3600 {
		return fmt.Errorf("system timezone offset out of range: %d seconds", offset)
	}
	return nil
}

// checkConcurrentInstances warns when another meetly process is running.
// Two editors persisting sequentially against the same account can interleave
// and leave the server in a state neither expects.
func checkConcurrentInstances() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	count := 0
	for _, proc := range processes {
		if proc.Executable() == constants.AppName && proc.Pid() != self {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("found %d other running meetly instance(s); concurrent edits may conflict", count)
	}
	return nil
}
