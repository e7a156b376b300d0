// Command guildcache is an operator tool for inspecting the mirrored guild
// state in Redis: dump a guild's resources, resolve a member's effective
// permissions, or probe the online set. It reads REDIS_URL from the
// environment (a .env file is honored if present).
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	str2duration "github.com/xhit/go-str2duration/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/modbot-io/guildcache/cache"
	"github.com/modbot-io/guildcache/models"
)

var (
	redisURL string
	timeout  string
	verbose  bool
)

func newClient(cmd *cobra.Command) (*cache.Client, func(), error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(cmd.Context()).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}

	copts := []cache.Option{}
	if timeout != "" {
		d, err := str2duration.ParseDuration(timeout)
		if err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("parsing --timeout: %w", err)
		}
		copts = append(copts, cache.WithQueryTimeout(d))
	}
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			rdb.Close()
			return nil, nil, err
		}
		copts = append(copts, cache.WithLogger(log))
	}
	return cache.New(rdb, copts...), func() { rdb.Close() }, nil
}

func parseID(arg, what string) (models.Snowflake, error) {
	id, err := models.ParseSnowflake(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, arg, err)
	}
	return id, nil
}

var guildCmd = &cobra.Command{
	Use:   "guild <guild-id>",
	Short: "Dump a guild's mirrored record, roles, and channels",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "guild id")
		if err != nil {
			return err
		}
		guildID := models.GuildID(id)

		c, done, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		guild, found, err := cache.FetchResource[cache.CachedGuild](cmd.Context(), c, guildID, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("guild %s is not mirrored", guildID)
		}

		var (
			roles    map[models.Snowflake]cache.CachedRole
			channels map[models.Snowflake]cache.CachedChannel
		)
		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			var err error
			roles, err = cache.FetchAllResources[cache.CachedRole](ctx, c, guildID)
			return err
		})
		g.Go(func() error {
			var err error
			channels, err = cache.FetchAllResources[cache.CachedChannel](ctx, c, guildID)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "guild:   %s (%s)\n", guild.Name, guild.ID)
		fmt.Fprintf(out, "owner:   %s\n", guild.OwnerID)
		if guild.VanityURLCode != "" {
			fmt.Fprintf(out, "vanity:  %s\n", guild.VanityURLCode)
		}

		sorted := make([]cache.CachedRole, 0, len(roles))
		for _, role := range roles {
			sorted = append(sorted, role)
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) > 0 })
		fmt.Fprintf(out, "roles:   %d\n", len(sorted))
		for _, role := range sorted {
			fmt.Fprintf(out, "  [%3d] %-24s %s perms=%#x\n", role.Position, role.Name, role.ID, uint64(role.Permissions))
		}

		fmt.Fprintf(out, "channels: %d\n", len(channels))
		for _, ch := range channels {
			fmt.Fprintf(out, "  #%-24s %s\n", ch.Name, ch.ID)
		}
		return nil
	},
}

var permissionsCmd = &cobra.Command{
	Use:   "permissions <guild-id> <user-id> [role-id...]",
	Short: "Resolve a member's effective guild-level permissions",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, err := parseID(args[0], "guild id")
		if err != nil {
			return err
		}
		userID, err := parseID(args[1], "user id")
		if err != nil {
			return err
		}
		roleIDs := make([]models.RoleID, 0, len(args)-2)
		for _, arg := range args[2:] {
			id, err := parseID(arg, "role id")
			if err != nil {
				return err
			}
			roleIDs = append(roleIDs, models.RoleID(id))
		}

		c, done, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		perms, err := c.GuildPermissions(cmd.Context(), models.GuildID(guildID), models.UserID(userID), roleIDs)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "permissions: %#x\n", uint64(perms))
		switch {
		case perms == models.PermissionsAll:
			fmt.Fprintln(out, "full set (owner or administrator)")
		case perms == models.PermissionsNone:
			fmt.Fprintln(out, "empty set (guild not mirrored or no roles resolved)")
		}
		return nil
	},
}

var presenceCmd = &cobra.Command{
	Use:   "presence <guild-id> <user-id...>",
	Short: "Report which of the given members are currently online",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, err := parseID(args[0], "guild id")
		if err != nil {
			return err
		}
		candidates := make([]models.UserID, 0, len(args)-1)
		for _, arg := range args[1:] {
			id, err := parseID(arg, "user id")
			if err != nil {
				return err
			}
			candidates = append(candidates, models.UserID(id))
		}

		c, done, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		online, err := c.FindOnline(cmd.Context(), models.GuildID(guildID), candidates)
		if err != nil {
			return err
		}
		onlineSet := make(map[models.UserID]bool, len(online))
		for _, id := range online {
			onlineSet[id] = true
		}
		out := cmd.OutOrStdout()
		for _, id := range candidates {
			status := "offline"
			if onlineSet[id] {
				status = "online"
			}
			fmt.Fprintf(out, "%s\t%s\n", id, status)
		}
		return nil
	},
}

func main() {
	// Best effort: a missing .env just means the environment is already set.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "guildcache",
		Short:         "Inspect the mirrored guild state in Redis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&redisURL, "redis-url", os.Getenv("REDIS_URL"), "redis connection url (defaults to $REDIS_URL)")
	root.PersistentFlags().StringVar(&timeout, "timeout", "", "per-operation timeout, e.g. 2s or 500ms")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(guildCmd, permissionsCmd, presenceCmd)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
