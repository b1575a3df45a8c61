package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/stardustlabs/stardust/internal/app"
	"github.com/stardustlabs/stardust/internal/domain"
	"github.com/stardustlabs/stardust/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title      string
		Body       string
		Category   string
		Difficulty string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task to the sky",
		Long: `Add a new task. The star appears at a random position and can be
dragged into place in the interactive sky.

Examples:
  # Add a work task
  stardust add --title "Finish the report" --category work

  # Add a hard task with a description
  stardust add --title "Marathon training" --category health --difficulty hard --body "Long run schedule"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.CreateTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateTaskInput{
				Title:       opts.Title,
				Description: opts.Body,
				Category:    domain.Category(strings.ToUpper(opts.Category)),
				Difficulty:  domain.Difficulty(strings.ToUpper(opts.Difficulty)),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added star #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&opts.Body, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Category, "category", "work", "Category: work, study, health, life, creative")
	cmd.Flags().StringVar(&opts.Difficulty, "difficulty", "easy", "Difficulty: easy, medium, hard")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newListCommand creates the list command for showing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var scopeStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally filtered by time scope.

Scopes:
  daily    tasks created today
  weekly   tasks created this week
  monthly  tasks created this month
  meteor   overdue incomplete tasks
  all      everything (default)`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, err := domain.ParseScope(scopeStr)
			if err != nil {
				return fmt.Errorf("invalid scope %q: %w", scopeStr, err)
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{Scope: scope})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "The sky is empty.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tSTATE\tTITLE\tCATEGORY\tDIFFICULTY\tCREATED")
			for _, task := range out.Tasks {
				state := " "
				if task.Completed {
					state = "*"
				}
				created := time.UnixMilli(task.CreatedAt).Format("2006-01-02")
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					task.ID, state, task.Title, task.Category.Display(), task.Difficulty.Display(), created)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&scopeStr, "scope", "all", "Time scope: daily, weekly, monthly, meteor, all")

	return cmd
}

// newDoneCommand creates the done command for toggling completion.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			uc := c.ToggleTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			if out.Task.Completed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Star #%d shines: %s\n", out.Task.ID, out.Task.Title)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Star #%d reopened: %s\n", out.Task.ID, out.Task.Title)
			}
			return nil
		},
	}
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task from the sky",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			uc := c.DeleteTaskUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed star #%d\n", id)
			return nil
		},
	}
}

// newExportCommand creates the export command for backing up tasks.
func newExportCommand(c *app.Container) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ExportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportTasksInput{})
			if err != nil {
				return err
			}

			if outPath == "" {
				_, _ = cmd.OutOrStdout().Write(out.Data)
				return nil
			}

			if err := os.WriteFile(outPath, out.Data, 0o600); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", out.Count, outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

// newImportCommand creates the import command for restoring tasks.
func newImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a YAML export",
		Long: `Import tasks from a YAML document produced by "stardust export".
Imported tasks are appended with fresh IDs; the document is validated as
a whole and rejected entirely if any record is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			uc := c.ImportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{Data: data})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks\n", out.Imported)
			return nil
		},
	}
}
