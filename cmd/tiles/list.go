package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaign levels",
	Long:  `Shows every level of the campaign with its target, move budget and best recorded score.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	lvls, err := loadLevels()
	if err != nil {
		return err
	}

	best := map[string]int{}
	if store := openStore(logger); store != nil {
		if scores, err := store.BestLevelScores(); err == nil {
			best = scores
		}
		store.Close()
	}

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %-16s  %-6s  %-5s  %s\n", "#", maxIDLen, "ID", "Name", "Target", "Moves", "Best")
	fmt.Printf("  %-3s  %-*s  %-16s  %-6s  %-5s  %s\n", "-", maxIDLen, "--", "----", "------", "-----", "----")

	for i, l := range lvls {
		bestStr := "-"
		if score, ok := best[l.ID]; ok {
			bestStr = fmt.Sprintf("%d", score)
		}
		fmt.Printf("  %-3d  %-*s  %-16s  %-6d  %-5d  %s\n",
			i+1, maxIDLen, l.ID, l.Title(), l.TargetScore, l.Moves, bestStr)
	}

	fmt.Println()
	fmt.Println("Run 'tiles play --level <#|id>' to play a level.")
	return nil
}
