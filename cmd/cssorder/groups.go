package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssorder"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [NAME...]",
	Short: "List the property groups",
	Long: `List the property groups in order. With names, print the properties of
those groups instead.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		useColors := getBoolWithFallback("color", "color", false) || isTerminal(cmd.OutOrStdout())
		table := cssorder.DefaultTable()
		if len(args) == 0 {
			printGroupList(cmd.OutOrStdout(), table, useColors)
			return nil
		}
		return printGroupProperties(cmd.OutOrStdout(), table, args, useColors)
	},
	ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return cssorder.DefaultTable().Names(), cobra.ShellCompDirectiveNoFileComp
	},
}

var (
	groupNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	groupMetaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func render(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

func printGroupList(w io.Writer, table *cssorder.Table, useColors bool) {
	for i, g := range table.Groups() {
		fmt.Fprintf(w, "%2d. %s %s\n", i+1,
			render(groupNameStyle, g.Name, useColors),
			render(groupMetaStyle, "("+countProperties(len(g.Properties))+")", useColors))
	}
}

func countProperties(n int) string {
	if n == 1 {
		return "1 property"
	}
	return fmt.Sprintf("%d properties", n)
}

func printGroupProperties(w io.Writer, table *cssorder.Table, names []string, useColors bool) error {
	for i, name := range names {
		g, ok := table.Group(name)
		if !ok {
			return unknownGroupError(name, table.Names())
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, render(groupNameStyle, g.Name, useColors))
		for _, p := range g.Properties {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	return nil
}

// unknownGroupError suggests the closest group names
func unknownGroupError(name string, names []string) error {
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		return fmt.Errorf("unknown group %q (see `cssorder groups`)", name)
	}
	sort.Sort(ranks)

	suggestions := make([]string, 0, 3)
	for _, r := range ranks {
		if len(suggestions) == cap(suggestions) {
			break
		}
		suggestions = append(suggestions, fmt.Sprintf("%q", r.Target))
	}
	return fmt.Errorf("unknown group %q (did you mean %s?)", name, strings.Join(suggestions, ", "))
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
