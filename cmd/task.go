package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Create, list and deactivate tasks",
}

var taskCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a task from a fact grid and assign it",
	Example: `  mathcoach task create --creator <coach-id> --title "Sevens" --facts 7x1-9 --assign <student-id>
  mathcoach task create --creator <student-id> --title "Everything" --min 2 --max 12 --count 90`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		creator, _ := f.GetString("creator")
		title, _ := f.GetString("title")
		assign, _ := f.GetStringSlice("assign")
		count, _ := f.GetInt("count")
		limit, _ := f.GetDuration("time")
		minOp, _ := f.GetInt("min")
		maxOp, _ := f.GetInt("max")
		factSpecs, _ := f.GetStringSlice("facts")
		layoutName, _ := f.GetString("layout")
		mode, _ := f.GetString("mode")
		seed, _ := f.GetUint64("seed")

		grid := facts.Grid{Min: minOp, Max: maxOp}
		if err := grid.Validate(); err != nil {
			return err
		}
		selected := facts.FullSet(grid).Facts()
		if len(factSpecs) > 0 {
			parsed, err := parseFactSpecs(factSpecs)
			if err != nil {
				return err
			}
			selected = parsed
		}
		layout, err := problemgen.ParseLayout(layoutName)
		if err != nil {
			return err
		}

		gen := problemgen.NewRandom()
		if f.Changed("seed") {
			gen = problemgen.NewSeeded(seed)
		}
		qs, err := tasks.Generate(gen, tasks.GenerateInput{Facts: selected, Count: count})
		if err != nil {
			return err
		}

		th := grading.DefaultThresholds(len(qs))
		if f.Changed("pass") {
			th.Pass, _ = f.GetInt("pass")
		}
		if f.Changed("good") {
			th.Good, _ = f.GetInt("good")
		}
		if f.Changed("master") {
			th.Master, _ = f.GetInt("master")
		}

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := tasks.FromStore(st, newLogger(cfg, nil, nil))

		created, err := svc.CreateTask(cmd.Context(), tasks.CreateTaskInput{
			Title:      title,
			CreatorID:  creator,
			Assignees:  assign,
			TimeLimit:  int(limit.Seconds()),
			Thresholds: th,
			Questions:  qs,
			Config: problemgen.TaskConfig{
				SelectedFacts: selected,
				QuestionCount: len(qs),
				Layout:        layout,
				Mode:          mode,
			},
		})
		if err != nil {
			return err
		}
		printTasks(created)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a student's active tasks or a creator's tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		creator, _ := cmd.Flags().GetString("creator")
		if (student == "") == (creator == "") {
			return fmt.Errorf("pass exactly one of --student or --creator")
		}

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := tasks.FromStore(st, newLogger(cfg, nil, nil))

		var list []*store.Task
		if student != "" {
			list, err = svc.StudentTasks(cmd.Context(), student)
		} else {
			list, err = svc.CreatedTasks(cmd.Context(), creator)
		}
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("No tasks.")
			return nil
		}
		printTasks(list)
		return nil
	},
}

var taskDeactivateCmd = &cobra.Command{
	Use:   "deactivate <task-id>",
	Short: "Hide a task from its assignee (creator only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		by, _ := cmd.Flags().GetString("by")

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := tasks.FromStore(st, newLogger(cfg, nil, nil))

		if err := svc.DeactivateTask(cmd.Context(), args[0], by); err != nil {
			return err
		}
		fmt.Printf("Deactivated %s\n", args[0])
		return nil
	},
}

// parseFactSpecs reads facts written as "7x8" or with a range on either side,
// such as "7x1-9" or "2-5x10".
func parseFactSpecs(specs []string) ([]facts.Fact, error) {
	var out []facts.Fact
	seen := make(map[facts.Fact]bool)
	for _, spec := range specs {
		left, right, ok := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), "x")
		if !ok {
			return nil, fmt.Errorf("fact %q: want AxB", spec)
		}
		as, err := parseRange(left)
		if err != nil {
			return nil, fmt.Errorf("fact %q: %w", spec, err)
		}
		bs, err := parseRange(right)
		if err != nil {
			return nil, fmt.Errorf("fact %q: %w", spec, err)
		}
		for _, a := range as {
			for _, b := range bs {
				f := facts.Fact{A: a, B: b}
				if !seen[f] {
					seen[f] = true
					out = append(out, f)
				}
			}
		}
	}
	return out, nil
}

func parseRange(s string) ([]int, error) {
	lo, hi, isRange := strings.Cut(s, "-")
	from, err := strconv.Atoi(lo)
	if err != nil {
		return nil, fmt.Errorf("bad operand %q", lo)
	}
	to := from
	if isRange {
		if to, err = strconv.Atoi(hi); err != nil {
			return nil, fmt.Errorf("bad operand %q", hi)
		}
	}
	if from < 0 || to < from {
		return nil, fmt.Errorf("bad range %q", s)
	}
	if to > facts.MaxOperand {
		return nil, fmt.Errorf("operand %d is above %d", to, facts.MaxOperand)
	}
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out, nil
}

func printTasks(list []*store.Task) {
	fmt.Printf("%-36s  %-24s  %-10s  %9s  %7s  %-11s  %s\n",
		"ID", "Title", "Assigned", "Questions", "Time", "Thresholds", "Active")
	fmt.Println(strings.Repeat("─", 120))
	for _, t := range list {
		assigned := truncate(t.AssignedToID, 8)
		if t.Unassigned() {
			assigned = "self"
		}
		fmt.Printf("%-36s  %-24s  %-10s  %9d  %7s  %-11s  %v\n",
			t.ID,
			truncate(t.Title, 24),
			assigned,
			len(t.Questions),
			attempt.FormatClock(t.TimeLimit),
			fmt.Sprintf("%d/%d/%d", t.Thresholds.Pass, t.Thresholds.Good, t.Thresholds.Master),
			t.IsActive,
		)
	}
}

func init() {
	f := taskCreateCmd.Flags()
	f.String("creator", "", "Creator profile id (required)")
	f.String("title", "", "Task title (required)")
	f.StringSlice("assign", nil, "Student ids to assign to (coach only; omit for a self-owned task)")
	f.Int("count", problemgen.DefaultCount, "Number of questions")
	f.Duration("time", problemgen.DefaultTimeLimit*time.Second, "Time limit")
	f.Int("min", facts.Grid10.Min, "Smallest operand when --facts is not given")
	f.Int("max", facts.Grid10.Max, "Largest operand when --facts is not given")
	f.StringSlice("facts", nil, `Facts to draw from, e.g. "7x8", "7x1-9", "2-5x10"`)
	f.String("layout", string(problemgen.LayoutVertical), "Question layout: vertical or horizontal")
	f.String("mode", "", "Pin attempts to train or test (default: student chooses)")
	f.Int("pass", 0, "Correct answers needed to pass (default 75%)")
	f.Int("good", 0, "Correct answers for good (default 90%)")
	f.Int("master", 0, "Correct answers for master (default all)")
	f.Uint64("seed", 0, "Seed the generator for a reproducible question set")
	_ = taskCreateCmd.MarkFlagRequired("creator")
	_ = taskCreateCmd.MarkFlagRequired("title")

	taskListCmd.Flags().String("student", "", "List the student's active tasks")
	taskListCmd.Flags().String("creator", "", "List tasks created by this profile")

	taskDeactivateCmd.Flags().String("by", "", "Requesting profile id (must be the creator)")
	_ = taskDeactivateCmd.MarkFlagRequired("by")

	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDeactivateCmd)
}
