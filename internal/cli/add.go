package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func (s *Session) newAddCmd() *cobra.Command {
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an item to a compartment",
	}
	add.AddCommand(
		s.newAddBookCmd(),
		s.newAddMagazineCmd(),
		s.newAddMovieCmd(),
	)
	return add
}

// itemFlags holds the flag values shared by every add subcommand.
type itemFlags struct {
	name        string
	description string
	shelf       int
	compartment int
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "item name (required)")
	cmd.Flags().StringVar(&f.description, "description", "", "item description")
	cmd.Flags().IntVar(&f.shelf, "shelf", 0, "shelf number (0-2)")
	cmd.Flags().IntVar(&f.compartment, "compartment", 0, "compartment number (0-14)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("shelf")
	_ = cmd.MarkFlagRequired("compartment")
}

// info builds the common item fields with the given ID.
func (f *itemFlags) info(id int) types.ItemInfo {
	return types.ItemInfo{ID: id, Name: f.name, Description: f.description}
}

func (s *Session) newAddBookCmd() *cobra.Command {
	var base itemFlags
	var title, author, copyright string
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Add a book",
		Args:  cobra.NoArgs,
		Example: `  add book --name "Dune" --title "Dune" --author "Frank Herbert" ` +
			`--copyright 1965 --shelf 0 --compartment 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.placeItem(cmd, base, types.Book{
				ItemInfo:      base.info(s.nextID),
				Title:         title,
				Author:        author,
				CopyrightDate: copyright,
			})
		},
	}
	base.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "book title")
	cmd.Flags().StringVar(&author, "author", "", "book author")
	cmd.Flags().StringVar(&copyright, "copyright", "", "copyright date")
	return cmd
}

func (s *Session) newAddMagazineCmd() *cobra.Command {
	var base itemFlags
	var edition, title string
	cmd := &cobra.Command{
		Use:   "magazine",
		Short: "Add a magazine",
		Args:  cobra.NoArgs,
		Example: `  add magazine --name "Nature" --edition "June 2025" ` +
			`--title "On the Origin of Shelving" --shelf 1 --compartment 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.placeItem(cmd, base, types.Magazine{
				ItemInfo: base.info(s.nextID),
				Edition:  edition,
				Title:    title,
			})
		},
	}
	base.register(cmd)
	cmd.Flags().StringVar(&edition, "edition", "", "magazine edition")
	cmd.Flags().StringVar(&title, "title", "", "title of the main article")
	return cmd
}

func (s *Session) newAddMovieCmd() *cobra.Command {
	var base itemFlags
	var title, director string
	var actors []string
	cmd := &cobra.Command{
		Use:   "movie",
		Short: "Add a movie",
		Args:  cobra.NoArgs,
		Example: `  add movie --name "Alien" --title "Alien" --director "Ridley Scott" ` +
			`--actor "Sigourney Weaver" --actor "Tom Skerritt" --shelf 2 --compartment 14`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.placeItem(cmd, base, types.Movie{
				ItemInfo:   base.info(s.nextID),
				Title:      title,
				Director:   director,
				MainActors: actors,
			})
		},
	}
	base.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "movie title")
	cmd.Flags().StringVar(&director, "director", "", "movie director")
	cmd.Flags().StringArrayVar(&actors, "actor", nil, "main actor (repeatable)")
	return cmd
}

// placeItem stores the item at the flagged position and advances the
// ID counter. The counter moves only on success, so a rejected add
// does not burn an ID.
func (s *Session) placeItem(cmd *cobra.Command, f itemFlags, item types.Item) error {
	pos := types.NewPosition(f.shelf, f.compartment)
	if err := s.inv.AddItem(pos, item); err != nil {
		return fmt.Errorf("add %s: %w", item.Kind(), err)
	}
	s.nextID++
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %d at %s.\n", item.Kind(), item.Info().ID, pos)
	return nil
}
