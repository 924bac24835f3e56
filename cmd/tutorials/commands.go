package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tutorials/client"
	"tutorials/config"
	"tutorials/infras/otel"
	"tutorials/shared"
	"tutorials/shared/validator"
)

const (
	flagTitle       = "title"
	flagDescription = "description"
	flagPublished   = "published"
	flagYes         = "yes"
	flagVerbose     = "verbose"
	flagAPIURL      = "api-url"
)

var (
	errCallFailed = errors.New("request failed")
	errAborted    = errors.New("aborted")
)

// tutorialForm mirrors the create/edit form rules so invalid input never reaches the API.
type tutorialForm struct {
	Title       string `json:"title" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"max=255"`
}

type app struct {
	cfg       *config.Config
	otel      otel.Otel
	opts      []client.Option
	tutorials *client.Tutorials
	failed    bool
	in        *bufio.Reader
	out       io.Writer
	errOut    io.Writer
}

func newApp(cfg *config.Config, otl otel.Otel, in io.Reader, out, errOut io.Writer, opts ...client.Option) *app {
	return &app{
		cfg:    cfg,
		otel:   otl,
		opts:   opts,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// Success implements client.Notifier.
func (a *app) Success(message string) {
	fmt.Fprintln(a.errOut, message)
}

// Error implements client.Notifier.
func (a *app) Error(message string) {
	a.failed = true
	fmt.Fprintln(a.errOut, "error:", message)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tutorials",
		Short:         "Manage tutorials through the tutorials API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			cfg := *a.cfg
			if apiURL, _ := cmd.Flags().GetString(flagAPIURL); apiURL != "" {
				cfg.Client.APIURL = apiURL
			}

			a.tutorials = client.New(&cfg, a.otel, append([]client.Option{client.WithNotifier(a)}, a.opts...)...)
		},
	}

	root.PersistentFlags().Bool(flagVerbose, false, "log requests and failures to stderr")
	root.PersistentFlags().String(flagAPIURL, "", "tutorials API base URL, overrides CLIENT_API_URL")

	root.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.createCmd(),
		a.updateCmd(),
		a.deleteCmd(),
		a.deleteAllCmd(),
	)

	return root
}

func (a *app) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tutorials, optionally searching by title or showing only published ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, _ := cmd.Flags().GetString(flagTitle)
			published, _ := cmd.Flags().GetBool(flagPublished)

			var tutorials []client.Tutorial
			if published {
				tutorials = a.tutorials.GetPublished(cmd.Context())
			} else {
				tutorials = a.tutorials.GetAll(cmd.Context(), title)
			}

			if a.failed {
				return errCallFailed
			}

			return a.printList(tutorials)
		},
	}

	cmd.Flags().String(flagTitle, "", "only tutorials whose title contains this text")
	cmd.Flags().Bool(flagPublished, false, "only published tutorials")
	cmd.MarkFlagsMutuallyExclusive(flagTitle, flagPublished)

	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a tutorial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shared.ConvertStringToID(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			tutorial := a.tutorials.Get(cmd.Context(), id)
			if tutorial == nil {
				return errCallFailed
			}

			a.printDetail(*tutorial)

			return nil
		},
	}
}

func (a *app) createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tutorial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, _ := cmd.Flags().GetString(flagTitle)
			description, _ := cmd.Flags().GetString(flagDescription)
			published, _ := cmd.Flags().GetBool(flagPublished)

			if err := validateForm(title, description); err != nil {
				return err
			}

			created := a.tutorials.Create(cmd.Context(), client.Tutorial{
				Title:       title,
				Description: description,
				Published:   published,
			})
			if created == nil {
				return errCallFailed
			}

			a.printDetail(*created)

			return nil
		},
	}

	cmd.Flags().String(flagTitle, "", "tutorial title (required)")
	cmd.Flags().String(flagDescription, "", "tutorial description")
	cmd.Flags().Bool(flagPublished, false, "publish the tutorial")

	return cmd
}

func (a *app) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a tutorial, changing only the given flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shared.ConvertStringToID(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			current := a.tutorials.Get(cmd.Context(), id)
			if current == nil {
				return errCallFailed
			}

			flags := cmd.Flags()
			if flags.Changed(flagTitle) {
				current.Title, _ = flags.GetString(flagTitle)
			}

			if flags.Changed(flagDescription) {
				current.Description, _ = flags.GetString(flagDescription)
			}

			if flags.Changed(flagPublished) {
				current.Published, _ = flags.GetBool(flagPublished)
			}

			if err := validateForm(current.Title, current.Description); err != nil {
				return err
			}

			if !a.tutorials.Update(cmd.Context(), id, *current) {
				return errCallFailed
			}

			return nil
		},
	}

	cmd.Flags().String(flagTitle, "", "new title")
	cmd.Flags().String(flagDescription, "", "new description")
	cmd.Flags().Bool(flagPublished, false, "published status")

	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tutorial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shared.ConvertStringToID(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			if err := a.confirm(cmd, fmt.Sprintf("Delete tutorial #%d?", id)); err != nil {
				return err
			}

			if !a.tutorials.Delete(cmd.Context(), id) {
				return errCallFailed
			}

			return nil
		},
	}

	cmd.Flags().BoolP(flagYes, "y", false, "skip the confirmation prompt")

	return cmd
}

func (a *app) deleteAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every tutorial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.confirm(cmd, "Delete ALL tutorials? This cannot be undone."); err != nil {
				return err
			}

			if !a.tutorials.DeleteAll(cmd.Context()) {
				return errCallFailed
			}

			return nil
		},
	}

	cmd.Flags().BoolP(flagYes, "y", false, "skip the confirmation prompt")

	return cmd
}

func (a *app) confirm(cmd *cobra.Command, question string) error {
	if yes, _ := cmd.Flags().GetBool(flagYes); yes {
		return nil
	}

	fmt.Fprintf(a.errOut, "%s [y/N]: ", question)

	answer, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return errAborted
	}
}

func validateForm(title, description string) error {
	return validator.ValidateStruct(&tutorialForm{Title: title, Description: description}) //nolint:wrapcheck
}

func (a *app) printList(tutorials []client.Tutorial) error {
	if len(tutorials) == 0 {
		fmt.Fprintln(a.out, "No tutorials found.")

		return nil
	}

	writer := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tTITLE\tSTATUS\tDESCRIPTION")

	for _, tutorial := range tutorials {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", tutorial.ID, tutorial.Title, status(tutorial.Published), tutorial.Description)
	}

	return writer.Flush() //nolint:wrapcheck
}

func (a *app) printDetail(tutorial client.Tutorial) {
	fmt.Fprintf(a.out, "ID:           %d\n", tutorial.ID)
	fmt.Fprintf(a.out, "Title:        %s\n", tutorial.Title)
	fmt.Fprintf(a.out, "Description:  %s\n", tutorial.Description)
	fmt.Fprintf(a.out, "Status:       %s\n", status(tutorial.Published))
	fmt.Fprintf(a.out, "Created:      %s\n", tutorial.CreatedAt)
	fmt.Fprintf(a.out, "Updated:      %s\n", tutorial.UpdatedAt)
}

func status(published bool) string {
	if published {
		return "Published"
	}

	return "Pending"
}
