// Package taskform is the task creation screen shared by coaches and
// students. Coaches assign to their students; a student's task is their own.
package taskform

import (
	"errors"
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/router"
	"github.com/abhisek/mathcoach/internal/screen"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
	"github.com/abhisek/mathcoach/internal/ui/components"
	"github.com/abhisek/mathcoach/internal/ui/layout"
)

type field int

const (
	fieldTitle field = iota
	fieldFacts
	fieldCount
	fieldTime
	fieldThresholds
	fieldLayout
	fieldAssignees
	fieldPreview
)

var fieldNames = map[field]string{
	fieldTitle:      "Title",
	fieldFacts:      "Facts",
	fieldCount:      "Questions",
	fieldTime:       "Time limit",
	fieldThresholds: "Grades",
	fieldLayout:     "Layout",
	fieldAssignees:  "Assign to",
	fieldPreview:    "Preview",
}

const customOption = "Custom"

// timePresets are the offered time limits in minutes.
var timePresets = []int{2, 5, 10, 15, 20}

var layoutOptions = []string{string(problemgen.LayoutVertical), string(problemgen.LayoutHorizontal)}

// maxCustomCount bounds a custom question count.
const maxCustomCount = 200

type createdMsg struct {
	Tasks []*store.Task
	Err   error
}

// FormScreen collects a new task's settings and creates it.
type FormScreen struct {
	deps     *screens.Deps
	creator  store.Profile
	students []store.Profile

	fields []field
	focus  int

	title components.TextInput

	facts                *facts.Set
	cursorRow, cursorCol int

	count       components.Choice
	customCount components.TextInput

	timeLimit components.Choice

	thresholds    [3]string // pass, good, master
	thresholdSub  int
	thresholdsSet bool // edited by hand; stops tracking the count

	layoutChoice components.Choice

	assigned      map[string]bool
	assignCursor  int
	preview       problemgen.QuestionSet
	previewErr    string
	previewOffset int

	saving bool
	errMsg string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)
var _ screen.BackInterceptor = (*FormScreen)(nil)

// New creates the form. students lists who the creator may assign to; an
// empty list creates a self-owned task.
func New(deps *screens.Deps, creator store.Profile, students []store.Profile) *FormScreen {
	countOpts := make([]string, 0, len(problemgen.CountPresets)+1)
	selectedCount := 0
	for i, n := range problemgen.CountPresets {
		countOpts = append(countOpts, strconv.Itoa(n))
		if n == problemgen.DefaultCount {
			selectedCount = i
		}
	}
	countOpts = append(countOpts, customOption)

	timeOpts := make([]string, len(timePresets))
	selectedTime := 0
	for i, m := range timePresets {
		timeOpts[i] = fmt.Sprintf("%dm", m)
		if m*60 == problemgen.DefaultTimeLimit {
			selectedTime = i
		}
	}

	f := &FormScreen{
		deps:         deps,
		creator:      creator,
		students:     students,
		title:        components.NewTextInput("e.g. Sevens and eights", 60),
		facts:        facts.NewSet(deps.Grid),
		count:        components.NewChoice("", countOpts, selectedCount),
		customCount:  components.NewNumberInput("count", maxCustomCount),
		timeLimit:    components.NewChoice("", timeOpts, selectedTime),
		layoutChoice: components.NewChoice("", layoutOptions, 0),
		assigned:     make(map[string]bool, len(students)),
	}
	for _, st := range students {
		f.assigned[st.ID] = true
	}

	f.fields = []field{fieldTitle, fieldFacts, fieldCount, fieldTime, fieldThresholds, fieldLayout}
	if len(students) > 0 {
		f.fields = append(f.fields, fieldAssignees)
	}
	f.fields = append(f.fields, fieldPreview)

	f.syncThresholds()
	f.title.Focus()
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return nil
}

func (f *FormScreen) Title() string {
	return "New Task"
}

// InterceptsBack holds Esc while the task is being saved.
func (f *FormScreen) InterceptsBack() bool {
	return f.saving
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Next field"}}
	switch f.current() {
	case fieldFacts:
		hints = append(hints,
			layout.KeyHint{Key: "Space", Description: "Toggle"},
			layout.KeyHint{Key: "R/C", Description: "Row/Col"},
			layout.KeyHint{Key: "A", Description: "All"},
			layout.KeyHint{Key: "X", Description: "Clear"},
		)
	case fieldCount, fieldTime, fieldLayout:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	case fieldThresholds:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Pass/Good/Master"})
	case fieldAssignees:
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	case fieldPreview:
		hints = append(hints,
			layout.KeyHint{Key: "G", Description: "Regenerate"},
			layout.KeyHint{Key: "S", Description: "Reshuffle"},
		)
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: "Create"},
		layout.KeyHint{Key: "Esc", Description: "Cancel"},
	)
}

func (f *FormScreen) current() field {
	return f.fields[f.focus]
}

func (f *FormScreen) setFocus(i int) {
	n := len(f.fields)
	f.focus = ((i % n) + n) % n
	f.title.Blur()
	f.customCount.Blur()
	switch f.current() {
	case fieldTitle:
		f.title.Focus()
	case fieldCount:
		if f.count.Value() == customOption {
			f.customCount.Focus()
		}
	}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case createdMsg:
		f.saving = false
		if msg.Err != nil {
			f.errMsg = errorText(msg.Err)
			return f, nil
		}
		f.deps.Log.Dev("Task form saved", "tasks", len(msg.Tasks), "creator", f.creator.ID)
		return f, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyPressMsg:
		if f.saving {
			return f, nil
		}
		return f.handleKey(msg)
	}

	if f.current() == fieldTitle {
		var cmd tea.Cmd
		f.title, cmd = f.title.Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f *FormScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		f.setFocus(f.focus + 1)
		return f, nil
	case "shift+tab":
		f.setFocus(f.focus - 1)
		return f, nil
	case "ctrl+s":
		return f, f.create()
	}

	switch f.current() {
	case fieldTitle:
		if msg.String() == "enter" || msg.String() == "down" {
			f.setFocus(f.focus + 1)
			return f, nil
		}
		var cmd tea.Cmd
		f.title, cmd = f.title.Update(msg)
		return f, cmd
	case fieldFacts:
		f.handleFactsKey(msg)
	case fieldCount:
		f.handleCountKey(msg)
	case fieldTime:
		f.timeLimit = f.updateChoice(f.timeLimit, msg)
	case fieldThresholds:
		f.handleThresholdKey(msg)
	case fieldLayout:
		f.layoutChoice = f.updateChoice(f.layoutChoice, msg)
	case fieldAssignees:
		f.handleAssigneeKey(msg)
	case fieldPreview:
		return f, f.handlePreviewKey(msg)
	}
	return f, nil
}

// updateChoice applies left/right to a choice and moves focus on up/down.
func (f *FormScreen) updateChoice(c components.Choice, msg tea.KeyPressMsg) components.Choice {
	switch msg.String() {
	case "up":
		f.setFocus(f.focus - 1)
	case "down", "enter":
		f.setFocus(f.focus + 1)
	default:
		c, _ = c.Update(msg)
	}
	return c
}

func (f *FormScreen) handleFactsKey(msg tea.KeyPressMsg) {
	g := f.facts.Grid()
	size := g.Size()
	switch msg.String() {
	case "up", "k":
		if f.cursorRow > 0 {
			f.cursorRow--
		}
	case "down", "j":
		if f.cursorRow < size-1 {
			f.cursorRow++
		}
	case "left", "h":
		if f.cursorCol > 0 {
			f.cursorCol--
		}
	case "right", "l":
		if f.cursorCol < size-1 {
			f.cursorCol++
		}
	case "space", " ", "enter":
		f.facts.Toggle(g.Min+f.cursorRow, g.Min+f.cursorCol)
		f.regenerate()
	case "r":
		f.facts.ToggleRow(g.Min + f.cursorRow)
		f.regenerate()
	case "c":
		f.facts.ToggleCol(g.Min + f.cursorCol)
		f.regenerate()
	case "a":
		f.facts.SelectAll()
		f.regenerate()
	case "x":
		f.facts.Clear()
		f.regenerate()
	}
}

func (f *FormScreen) handleCountKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "left", "right", "h", "l":
		f.count, _ = f.count.Update(msg)
		if f.count.Value() == customOption {
			f.customCount.Focus()
		} else {
			f.customCount.Blur()
		}
		f.countChanged()
		return
	case "up":
		f.setFocus(f.focus - 1)
		return
	case "down", "enter":
		f.setFocus(f.focus + 1)
		return
	}
	if f.count.Value() == customOption {
		if text, ok := components.EditNumber(f.customCount.Value(), msg, maxCustomCount); ok {
			f.customCount.SetValue(text)
			f.countChanged()
		}
	}
}

func (f *FormScreen) countChanged() {
	f.syncThresholds()
	f.regenerate()
}

func (f *FormScreen) handleThresholdKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "left":
		if f.thresholdSub > 0 {
			f.thresholdSub--
		}
		return
	case "right":
		if f.thresholdSub < 2 {
			f.thresholdSub++
		}
		return
	case "up":
		f.setFocus(f.focus - 1)
		return
	case "down", "enter":
		f.setFocus(f.focus + 1)
		return
	case "d":
		f.thresholdsSet = false
		f.syncThresholds()
		return
	}
	if text, ok := components.EditNumber(f.thresholds[f.thresholdSub], msg, f.questionCount()); ok {
		f.thresholds[f.thresholdSub] = text
		f.thresholdsSet = true
	}
}

func (f *FormScreen) handleAssigneeKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "up":
		if f.assignCursor == 0 {
			f.setFocus(f.focus - 1)
			return
		}
		f.assignCursor--
	case "down":
		if f.assignCursor >= len(f.students)-1 {
			f.setFocus(f.focus + 1)
			return
		}
		f.assignCursor++
	case "space", " ", "enter":
		id := f.students[f.assignCursor].ID
		f.assigned[id] = !f.assigned[id]
	case "a":
		all := len(f.assignees()) < len(f.students)
		for _, st := range f.students {
			f.assigned[st.ID] = all
		}
	}
}

func (f *FormScreen) handlePreviewKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "g":
		f.regenerate()
	case "s":
		if len(f.preview) > 0 {
			f.deps.WithGenerator(func(g *problemgen.Generator) {
				f.preview = g.Reshuffle(f.preview)
			})
		}
	case "up":
		if f.previewOffset > 0 {
			f.previewOffset--
		} else {
			f.setFocus(f.focus - 1)
		}
	case "down":
		f.previewOffset++
	case "enter":
		return f.create()
	}
	return nil
}

// questionCount is the selected count, 0 when a custom count is blank.
func (f *FormScreen) questionCount() int {
	if f.count.Value() == customOption {
		n, err := f.customCount.NumericValue()
		if err != nil {
			return 0
		}
		return n
	}
	n, _ := strconv.Atoi(f.count.Value())
	return n
}

func (f *FormScreen) timeLimitSeconds() int {
	return timePresets[f.timeLimit.Selected] * 60
}

// syncThresholds resets thresholds to the defaults for the current count
// unless the user has set them.
func (f *FormScreen) syncThresholds() {
	if f.thresholdsSet {
		return
	}
	th := grading.DefaultThresholds(f.questionCount())
	f.thresholds = [3]string{strconv.Itoa(th.Pass), strconv.Itoa(th.Good), strconv.Itoa(th.Master)}
}

func (f *FormScreen) thresholdValues() grading.Thresholds {
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}
	return grading.Thresholds{
		Pass:   atoi(f.thresholds[0]),
		Good:   atoi(f.thresholds[1]),
		Master: atoi(f.thresholds[2]),
	}
}

// regenerate draws a fresh preview from the selected facts.
func (f *FormScreen) regenerate() {
	f.previewOffset = 0
	selected := f.facts.Facts()
	count := f.questionCount()
	if len(selected) == 0 {
		f.preview, f.previewErr = nil, "Select at least one fact."
		return
	}
	if count < 1 {
		f.preview, f.previewErr = nil, "Enter a question count."
		return
	}
	var err error
	f.deps.WithGenerator(func(g *problemgen.Generator) {
		f.preview, err = tasks.Generate(g, tasks.GenerateInput{Facts: selected, Count: count})
	})
	f.previewErr = ""
	if err != nil {
		f.preview, f.previewErr = nil, errorText(err)
	}
}

func (f *FormScreen) assignees() []string {
	var ids []string
	for _, st := range f.students {
		if f.assigned[st.ID] {
			ids = append(ids, st.ID)
		}
	}
	return ids
}

// input assembles the create request from the form state.
func (f *FormScreen) input() (tasks.CreateTaskInput, error) {
	if len(f.preview) == 0 {
		if f.previewErr != "" {
			return tasks.CreateTaskInput{}, errors.New(f.previewErr)
		}
		return tasks.CreateTaskInput{}, errors.New("select facts to generate questions")
	}
	if len(f.students) > 0 && len(f.assignees()) == 0 {
		return tasks.CreateTaskInput{}, errors.New("pick at least one student")
	}
	layoutValue, err := problemgen.ParseLayout(f.layoutChoice.Value())
	if err != nil {
		return tasks.CreateTaskInput{}, err
	}
	return tasks.CreateTaskInput{
		Title:      f.title.Value(),
		CreatorID:  f.creator.ID,
		Assignees:  f.assignees(),
		TimeLimit:  f.timeLimitSeconds(),
		Thresholds: f.thresholdValues(),
		Questions:  f.preview.Clone(),
		Config: problemgen.TaskConfig{
			SelectedFacts: f.facts.Facts(),
			QuestionCount: len(f.preview),
			Layout:        layoutValue,
		},
	}, nil
}

func (f *FormScreen) create() tea.Cmd {
	in, err := f.input()
	if err != nil {
		f.errMsg = err.Error()
		return nil
	}
	f.errMsg = ""
	f.saving = true
	deps := f.deps
	return func() tea.Msg {
		ctx, cancel := deps.Context()
		defer cancel()
		created, err := deps.Tasks.CreateTask(ctx, in)
		return createdMsg{Tasks: created, Err: err}
	}
}

func errorText(err error) string {
	var ve *tasks.ValidationError
	if errors.As(err, &ve) {
		if name, ok := fieldLabel(ve.Field); ok {
			return name + ": " + ve.Message
		}
		return ve.Message
	}
	return err.Error()
}

func fieldLabel(name string) (string, bool) {
	switch name {
	case "title":
		return fieldNames[fieldTitle], true
	case "thresholds":
		return fieldNames[fieldThresholds], true
	case "timeLimit":
		return fieldNames[fieldTime], true
	case "count":
		return fieldNames[fieldCount], true
	case "facts":
		return fieldNames[fieldFacts], true
	case "layout":
		return fieldNames[fieldLayout], true
	}
	return "", false
}
