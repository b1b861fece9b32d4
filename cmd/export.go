package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thegreatco/pingme/opsmngr"
)

var (
	exportDir   string
	concurrency int
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export deployment state to JSON files",
	Long: `Export writes one JSON file per group containing its hosts, clusters,
agents and open alerts. Groups are exported concurrently.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "output directory (default from config)")
	exportCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of groups to export in parallel")
}

// groupExport is the document written per group
type groupExport struct {
	Group    opsmngr.Entity   `json:"group"`
	Hosts    []opsmngr.Entity `json:"hosts"`
	Clusters []opsmngr.Entity `json:"clusters"`
	Agents   []opsmngr.Entity `json:"agents"`
	Alerts   []opsmngr.Entity `json:"alerts"`
}

func runExport(cmd *cobra.Command, args []string) error {
	dir := exportDir
	if dir == "" {
		dir = cfg.Output.Directory
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx := context.Background()
	page, err := client.GetGroups(ctx)
	if err != nil {
		return err
	}
	groups := page.Results()

	logger.Info().Int("groups", len(groups)).Str("dir", dir).Msg("Exporting deployment state")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, group := range groups {
		g.Go(func() error {
			path, err := exportGroup(ctx, group, dir)
			if err != nil {
				return fmt.Errorf("group %s: %w", group.ID(), err)
			}
			logger.Info().Str("group", group.Str("name")).Str("file", path).Msg("Exported group")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Exported %d groups to %s\n", len(groups), dir)
	return nil
}

// exportGroup gathers one group's state and writes it to <dir>/<groupID>.json
func exportGroup(ctx context.Context, group opsmngr.Entity, dir string) (string, error) {
	gid := group.ID()

	hosts, err := client.GetHosts(ctx, gid)
	if err != nil {
		return "", err
	}

	clusters, err := client.GetClusters(ctx, gid)
	if err != nil {
		return "", err
	}

	agents, err := client.GetAgents(ctx, gid)
	if err != nil {
		return "", err
	}

	alerts, err := client.GetAlerts(ctx, gid, opsmngr.AlertStatusOpen)
	if err != nil {
		return "", err
	}

	doc := groupExport{
		Group:    group,
		Hosts:    hosts.Results(),
		Clusters: clusters.Results(),
		Agents:   agents,
		Alerts:   alerts.Results(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}

	path := filepath.Join(dir, gid+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
