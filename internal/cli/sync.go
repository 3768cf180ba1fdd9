package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/keyring"
	"github.com/julianstephens/ritual/internal/logger"
	"github.com/julianstephens/ritual/internal/remote"
)

type SyncCmd struct {
	Save   bool `help:"Store the remote connection string in the OS keyring."`
	Forget bool `help:"Remove the stored connection string and stay local-only."`
}

func (c *SyncCmd) Run(ctx *Context) error {
	if c.Forget {
		if err := keyring.DeleteConnectionString(); err != nil {
			if err == keyring.ErrNotFound {
				fmt.Println("No remote connection string is stored.")
				return nil
			}
			return err
		}
		fmt.Println("Removed the remote connection string from the OS keyring.")
		return nil
	}

	connStr := ctx.RemoteConnString()
	if connStr == "" {
		warnNoRemote()
		return nil
	}
	if c.Save {
		if err := keyring.SetConnectionString(connStr); err != nil {
			logger.Warn("Failed to store connection string in keyring", "error", err)
			fmt.Println("Warning: could not store the connection string in the OS keyring.")
		} else {
			fmt.Println("Stored remote connection string in the OS keyring.")
		}
	}

	adapter, err := ctx.OpenRemote(connStr)
	if err != nil {
		return err
	}
	defer adapter.Close()

	profile := ctx.Profile()
	res, err := pullAndMerge(ctx, adapter, profile)
	if err != nil {
		return err
	}
	if err := adapter.Push(context.Background(), profile, ctx.Snapshot.Habits); err != nil {
		return err
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Synced profile %s: %d pulled, %d updated, %d pushed.\n", profile, res.Added, res.Updated, len(ctx.Snapshot.Habits))
	return nil
}

type PullCmd struct{}

func (c *PullCmd) Run(ctx *Context) error {
	connStr := ctx.RemoteConnString()
	if connStr == "" {
		warnNoRemote()
		return nil
	}
	adapter, err := ctx.OpenRemote(connStr)
	if err != nil {
		return err
	}
	defer adapter.Close()

	profile := ctx.Profile()
	res, err := pullAndMerge(ctx, adapter, profile)
	if err != nil {
		return err
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Pulled profile %s: %d added, %d updated, %d unchanged.\n", profile, res.Added, res.Updated, res.Unchanged)
	return nil
}

func pullAndMerge(ctx *Context, adapter remote.Adapter, profile string) (remote.MergeResult, error) {
	habits, err := adapter.Pull(context.Background(), profile)
	if err != nil {
		return remote.MergeResult{}, err
	}
	return remote.Merge(ctx.Snapshot, habits), nil
}

// warnNoRemote reports the degraded local-only mode. An unconfigured remote
// is not an error: local operation must never depend on sync.
func warnNoRemote() {
	logger.Warn("Sync requested but no remote store is configured")
	fmt.Println("No remote store configured; staying local-only.")
	fmt.Printf("Set --remote, the %s env var, or run 'ritual sync --remote <conn> --save'.\n", constants.EnvRemote)
}
