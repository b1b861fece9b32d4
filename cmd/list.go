package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thegreatco/pingme/opsmngr"
)

var alertStatus string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List API resources matching the filter criteria",
	Long: `List groups, hosts, agents, clusters or alerts. Results can be narrowed
with a filter expression (--filter) or a preset from the config file
(--preset). Host, agent, cluster and alert listings cover every group
unless --group pins them to one.`,
}

func init() {
	listCmd.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.PersistentFlags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	listCmd.PersistentFlags().StringVarP(&groupID, "group", "g", "", "restrict to a single group ID")

	listCmd.AddCommand(listGroupsCmd)
	listCmd.AddCommand(listHostsCmd)
	listCmd.AddCommand(listAgentsCmd)
	listCmd.AddCommand(listClustersCmd)
	listCmd.AddCommand(listAlertsCmd)

	listAlertsCmd.Flags().StringVar(&alertStatus, "status", "", "alert status (OPEN, CLOSED, TRACKING)")
}

var listGroupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List groups (projects)",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := getFilter()
		if err != nil {
			return err
		}

		ctx := context.Background()
		page, err := client.GetGroups(ctx)
		if err != nil {
			return err
		}

		groups := applyFilter(f, page.Results())
		if len(groups) == 0 {
			fmt.Println("No groups found matching the filter criteria.")
			return nil
		}

		fmt.Printf("\nFound %d groups:\n", len(groups))
		fmt.Println(strings.Repeat("-", 80))
		for _, group := range groups {
			fmt.Printf("• %s (%s)\n", group.Str("name"), group.ID())
			fmt.Printf("  Hosts: %v  Agents: %v\n", group["hostCounts"], group["activeAgentCount"])
		}
		return nil
	},
}

var listHostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List monitored hosts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPerGroup("hosts", func(ctx context.Context, gid string) (opsmngr.Entity, error) {
			return client.GetHosts(ctx, gid)
		}, func(host opsmngr.Entity) string {
			return fmt.Sprintf("• %s (%s) last ping %s", host.Str("hostname"), host.Str("typeName"), host.Str("lastPing"))
		})
	},
}

var listAgentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List monitoring, backup and automation agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := getFilter()
		if err != nil {
			return err
		}

		ctx := context.Background()
		groups, err := targetGroups(ctx)
		if err != nil {
			return err
		}

		for _, group := range groups {
			agents, err := client.GetAgents(ctx, group.ID())
			if err != nil {
				return err
			}

			agents = applyFilter(f, agents)
			fmt.Printf("\n%s (%d agents):\n", group.Str("name"), len(agents))
			for _, agent := range agents {
				fmt.Printf("• %s %s state %s\n", agent.Str("typeName"), agent.Str("hostname"), agent.Str("stateName"))
			}
		}
		return nil
	},
}

var listClustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "List clusters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPerGroup("clusters", func(ctx context.Context, gid string) (opsmngr.Entity, error) {
			return client.GetClusters(ctx, gid)
		}, func(cluster opsmngr.Entity) string {
			return fmt.Sprintf("• %s (%s)", cluster.Str("clusterName"), cluster.Str("typeName"))
		})
	},
}

var listAlertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPerGroup("alerts", func(ctx context.Context, gid string) (opsmngr.Entity, error) {
			return client.GetAlerts(ctx, gid, alertStatus)
		}, func(alert opsmngr.Entity) string {
			return fmt.Sprintf("• [%s] %s on %s", alert.Str("status"), alert.Str("eventTypeName"), alert.Str("hostnameAndPort"))
		})
	},
}

// listPerGroup runs a paged listing per target group and prints each
// matching document with the provided formatter.
func listPerGroup(what string, fetch func(context.Context, string) (opsmngr.Entity, error), format func(opsmngr.Entity) string) error {
	f, err := getFilter()
	if err != nil {
		return err
	}

	ctx := context.Background()
	groups, err := targetGroups(ctx)
	if err != nil {
		return err
	}

	var total int
	for _, group := range groups {
		page, err := fetch(ctx, group.ID())
		if err != nil {
			return err
		}

		docs := applyFilter(f, page.Results())
		if len(docs) == 0 {
			continue
		}

		total += len(docs)
		fmt.Printf("\n%s:\n", group.Str("name"))
		for _, doc := range docs {
			fmt.Println(format(doc))
		}
	}

	if total == 0 {
		fmt.Printf("No %s found matching the filter criteria.\n", what)
	}
	return nil
}

// targetGroups resolves the groups a listing should cover: the one named
// by --group, or every group visible to the API key.
func targetGroups(ctx context.Context) ([]opsmngr.Entity, error) {
	if groupID != "" {
		group, err := client.GetGroup(ctx, groupID)
		if err != nil {
			return nil, err
		}
		return []opsmngr.Entity{group}, nil
	}

	page, err := client.GetGroups(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results(), nil
}
