// Package console drives a controller from an interactive terminal. Every
// line is one command; after each command the container is drawn as a table.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/peterh/liner"

	"github.com/sarchlab/adtlab/adt"
	"github.com/sarchlab/adtlab/demo"
	"github.com/sarchlab/adtlab/naming"
)

// ErrExit is returned by OneShot when the user asks to leave.
var ErrExit = errors.New("exit")

// Console reads commands for one controller and renders the results.
type Console struct {
	controller  demo.Controller
	output      io.Writer
	historyPath string
	banner      string
}

// New creates a Console for the given controller.
func New(c demo.Controller, output io.Writer) *Console {
	return &Console{
		controller: c,
		output:     output,
		banner: fmt.Sprintf(
			"Bounded %s lab (%s). Type \"help\" for commands, \"exit\" to leave.",
			c.Kind(), c.Name()),
	}
}

// WithHistory keeps the line history in the given file.
func (c *Console) WithHistory(path string) *Console {
	c.historyPath = path
	return c
}

// Loop runs until the user enters "exit", Ctrl+C, Ctrl+D, or an unexpected
// error occurs.
func (c *Console) Loop() error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(c.complete)
	c.loadHistory(line)

	fmt.Fprintln(c.output, c.banner)
	c.Render(c.controller.View())

	for {
		input, err := line.Prompt(c.prompt())
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(c.output, "Exiting")
			break
		}

		if err != nil {
			return err
		}

		err = c.OneShot(input)
		if errors.Is(err, ErrExit) {
			line.AppendHistory(input)
			break
		}

		if err != nil {
			fmt.Fprintln(c.output, "error:", err)
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
	}

	c.saveHistory(line)

	return nil
}

// OneShot runs a single line. Parse errors are returned; command outcomes,
// failures included, are reported by the controller's notifier and the
// rendered view.
func (c *Console) OneShot(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return ErrExit
	case "help":
		c.printHelp()
		return nil
	case "show":
		c.Render(c.controller.View())
		return nil
	}

	cmd, err := ParseCommand(line, c.controller.Ops())
	if err != nil {
		return err
	}

	view, _ := c.controller.Dispatch(cmd)
	c.Render(view)

	return nil
}

// ParseCommand turns a line such as "push A" or "capacity 3" into a command.
// Only the given operations are accepted.
func ParseCommand(line string, ops []demo.Op) (demo.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return demo.Command{}, errors.New("empty command")
	}

	op, err := demo.ParseOp(fields[0])
	if err != nil {
		return demo.Command{}, err
	}

	if !containsOp(ops, op) {
		return demo.Command{}, fmt.Errorf("command %q is not available here", op)
	}

	cmd := demo.Command{Op: op}
	arg := strings.TrimSpace(strings.TrimPrefix(
		strings.TrimSpace(line), fields[0]))

	switch op {
	case demo.OpSetCapacity:
		cmd.Capacity, err = strconv.Atoi(arg)
		if err != nil {
			return demo.Command{}, fmt.Errorf("capacity %q is not a number", arg)
		}
	default:
		cmd.Value = adt.Value(arg)
	}

	return cmd, nil
}

func containsOp(ops []demo.Op, op demo.Op) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}

	return false
}

// Render draws the view as a table. Stacks are drawn top first, queues front
// first.
func (c *Console) Render(view demo.ViewState) {
	fmt.Fprintf(c.output, "%s %s: %d/%d%s\n",
		view.Kind, view.Name, view.Size, view.Capacity, fullMark(view))

	if view.IsEmpty {
		fmt.Fprintln(c.output, "(empty)")
		return
	}

	table := tablewriter.NewWriter(c.output)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"#", "Value", "End"})

	for _, row := range rows(view) {
		table.Append(row)
	}

	table.Render()
}

func fullMark(view demo.ViewState) string {
	if view.IsFull {
		return " (full)"
	}

	return ""
}

func rows(view demo.ViewState) [][]string {
	leadName, trailName := "front", "rear"
	if view.Kind == "stack" {
		leadName, trailName = "top", "bottom"
	}

	var out [][]string

	for i, item := range view.Items {
		var ends []string
		if item.IsLead {
			ends = append(ends, leadName)
		}

		if item.IsTrail {
			ends = append(ends, trailName)
		}

		out = append(out, []string{
			strconv.Itoa(i), string(item.Value), strings.Join(ends, ", "),
		})
	}

	if view.Kind == "stack" {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}

// prompt names the container by the last token of its name, so that
// "Lab.Stack" prompts with "stack> ".
func (c *Console) prompt() string {
	last := naming.ParseName(c.controller.Name()).Last()
	return strings.ToLower(last) + "> "
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.output, "Commands:")

	for _, op := range c.controller.Ops() {
		fmt.Fprintf(c.output, "  %s\n", opSyntax(op))
	}

	fmt.Fprintln(c.output, "  show")
	fmt.Fprintln(c.output, "  help")
	fmt.Fprintln(c.output, "  exit")
}

func opSyntax(op demo.Op) string {
	switch op {
	case demo.OpPush, demo.OpEnqueue, demo.OpSearch:
		return op.String() + " <value>"
	case demo.OpSetCapacity:
		return op.String() + " <n>"
	default:
		return op.String()
	}
}

func (c *Console) complete(line string) []string {
	var out []string

	for _, op := range c.controller.Ops() {
		if strings.HasPrefix(op.String(), strings.ToLower(line)) {
			out = append(out, op.String())
		}
	}

	return out
}

func (c *Console) loadHistory(prompt *liner.State) {
	if c.historyPath == "" {
		return
	}

	if f, err := os.Open(c.historyPath); err == nil {
		_, _ = prompt.ReadHistory(f)
		f.Close()
	}
}

func (c *Console) saveHistory(prompt *liner.State) {
	if c.historyPath == "" {
		return
	}

	if f, err := os.Create(c.historyPath); err == nil {
		_, _ = prompt.WriteHistory(f)
		f.Close()
	}
}
