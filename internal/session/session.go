// Package session drives the interactive menu against a record store.
//
// The session is a small state machine:
//
//	main-menu -> executing(action) -> post-action -> executing | main-menu | terminated
//
// Invalid answers re-prompt in place. The store is persisted once, when the
// user quits; no other exit path writes it.
package session

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ASHISH26940/birthdays/internal/console"
	"github.com/ASHISH26940/birthdays/internal/date"
	"github.com/ASHISH26940/birthdays/internal/store"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"
)

// ErrInputClosed is returned by Run when input ends before the user quits.
var ErrInputClosed = console.ErrClosed

// printSentinel, given as a name to look up, prints every record instead.
const printSentinel = "print"

// Persister writes the store when the session terminates.
type Persister interface {
	Persist(s *store.Store) error
}

// Controller is the session state machine. It owns the store for its lifetime.
type Controller struct {
	store     *store.Store
	persister Persister

	in     *console.LineReader
	out    io.Writer
	styles console.Styles
	logger hclog.Logger

	clearScreen  bool
	lenientDates bool

	state  State
	action Action
}

// Option configures a Controller.
type Option func(*Controller)

// WithInput sets where answers are read from (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(c *Controller) {
		c.in = console.NewLineReader(r)
	}
}

// WithOutput sets where prompts are written (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *Controller) {
		c.out = w
	}
}

// WithStyles sets the prompt colors.
func WithStyles(s console.Styles) Option {
	return func(c *Controller) {
		c.styles = s
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l hclog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithClearScreen clears the terminal before the main menu and the record listing.
func WithClearScreen(clear bool) Option {
	return func(c *Controller) {
		c.clearScreen = clear
	}
}

// WithLenientDates re-prompts on an unparsable date instead of failing the session.
func WithLenientDates(lenient bool) Option {
	return func(c *Controller) {
		c.lenientDates = lenient
	}
}

// New creates a Controller in the main-menu state.
func New(st *store.Store, p Persister, opts ...Option) *Controller {
	c := &Controller{
		store:     st,
		persister: p,
		in:        console.NewLineReader(os.Stdin),
		out:       os.Stdout,
		styles:    console.PlainStyles(),
		logger:    hclog.NewNullLogger(),
		state:     StateMainMenu,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Run drives the session until the user quits, then persists the store.
// Any error ends the session without persisting.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			next State
			err  error
		)
		switch c.state {
		case StateMainMenu:
			next, err = c.mainMenu()
		case StateExecuting:
			next, err = c.execute()
		case StatePostAction:
			next, err = c.postAction()
		case StateTerminated:
			return c.terminate()
		default:
			return fmt.Errorf("invalid session state %d", c.state)
		}
		if err != nil {
			c.logger.Error("session aborted", "state", c.state, "action", c.action, "error", err)
			return err
		}
		c.transition(next)
	}
}

func (c *Controller) transition(next State) {
	if next != c.state {
		c.logger.Debug("state transition", "from", c.state, "to", next, "action", c.action)
	}
	c.state = next
}

// mainMenu shows the menu once and reads one answer. An unknown answer keeps
// the session in the main menu.
func (c *Controller) mainMenu() (State, error) {
	if c.clearScreen {
		fmt.Fprint(c.out, console.ClearScreen)
	}
	c.println(c.styles.Title, "Please choose what you want to do!")
	for i, line := range menuLines {
		c.println(c.styles.Options[i], line)
	}

	answer, err := c.in.ReadLine()
	if err != nil {
		return c.state, err
	}
	action, ok := menuChoices[answer]
	if !ok {
		c.println(c.styles.Notice, "Unknown choice")
		return StateMainMenu, nil
	}

	c.action = action
	if action == ActionQuit {
		return StateTerminated, nil
	}
	return StateExecuting, nil
}

// postAction offers to repeat the last action, go back to the menu, or quit.
func (c *Controller) postAction() (State, error) {
	c.println(c.styles.Title, "Please choose what you want to do next!")
	c.println(c.styles.Options[0], "1: Redo last action")
	c.println(c.styles.Options[1], "2: Open menu")
	c.println(c.styles.Options[4], "3: Quit")

	answer, err := c.in.ReadLine()
	if err != nil {
		return c.state, err
	}
	switch answer {
	case choiceRepeat:
		return StateExecuting, nil
	case choiceMenu:
		return StateMainMenu, nil
	case choiceQuit:
		c.action = ActionQuit
		return StateTerminated, nil
	default:
		c.println(c.styles.Notice, "Unknown choice")
		return StatePostAction, nil
	}
}

func (c *Controller) terminate() error {
	if err := c.persister.Persist(c.store); err != nil {
		c.logger.Error("failed to persist records", "error", err)
		return fmt.Errorf("failed to persist records: %w", err)
	}
	c.logger.Info("records persisted", "count", c.store.Len())
	return nil
}

func (c *Controller) println(style lipgloss.Style, text string) {
	fmt.Fprintln(c.out, style.Render(text))
}

// readDate prompts until a date parses. Without lenient dates the first bad
// answer is returned as an error.
func (c *Controller) readDate(prompt string) (date.Date, error) {
	for {
		c.println(c.styles.Prompt, prompt)
		answer, err := c.in.ReadLine()
		if err != nil {
			return date.Date{}, err
		}

		d, err := date.Parse(answer)
		if err == nil {
			return d, nil
		}
		if !c.lenientDates {
			return date.Date{}, err
		}
		c.logger.Debug("rejected date", "input", answer, "error", err)
		c.println(c.styles.Failure, "That is not a date, please use month/day/year")
	}
}
