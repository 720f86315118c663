package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/azkar/internal/icons"
	"github.com/ziadkadry99/azkar/internal/navigation"
)

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Show a section or category in the terminal",
	Long: `Shows the view at path: "/" lists sections, "/azkar" lists the categories of
a section, and "/azkar/azkar_morning" lists the items of a category.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		path := "/"
		if len(args) == 1 {
			path = args[0]
		}
		page := navigation.Resolve(store, navigation.Parse(path))
		printPage(os.Stdout, page)
		return nil
	},
}

func printPage(w io.Writer, page navigation.Page) {
	switch {
	case page.NotFound:
		fmt.Fprintf(w, "%s\n\nBack: %s\n", page.Title(), navigation.Home.Path())
		return
	case page.Route.View == navigation.ViewHome:
		for _, sec := range page.Sections {
			fmt.Fprintf(w, "%s  %s\n", navigation.SectionRoute(sec.ID).Path(), sec.Title)
			if sec.Description != "" {
				fmt.Fprintf(w, "    %s\n", sec.Description)
			}
		}
	case page.Route.View == navigation.ViewSection:
		fmt.Fprintf(w, "%s\n\n", page.Title())
		for _, cat := range page.Section.Categories {
			fmt.Fprintf(w, "%s %s  %s (%d)\n", icons.For(cat),
				navigation.CategoryRoute(page.Section.ID, cat.ID).Path(), cat.Title, len(cat.Items))
		}
	case page.Route.View == navigation.ViewCategory:
		fmt.Fprintf(w, "%s %s\n\n", icons.For(page.Category), page.Title())
		for _, it := range page.Category.Items {
			fmt.Fprintf(w, "[%s] %s\n", it.ID, it.Text)
			if it.Repeat > 0 {
				fmt.Fprintf(w, "    التكرار: %d\n", it.Repeat)
			}
			if it.Source != "" {
				fmt.Fprintf(w, "    %s\n", it.Source)
			}
			if it.Note != "" {
				fmt.Fprintf(w, "    %s\n", it.Note)
			}
			fmt.Fprintln(w)
		}
	}

	if page.Route.View != navigation.ViewHome {
		fmt.Fprintf(w, "\nBack: %s\n", navigation.Back(page.Route).Path())
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
