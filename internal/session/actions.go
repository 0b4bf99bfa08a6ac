package session

import (
	"fmt"

	"github.com/ASHISH26940/birthdays/internal/console"
	"github.com/ASHISH26940/birthdays/internal/store"
)

// execute runs the selected action and returns the state to move to.
func (c *Controller) execute() (State, error) {
	switch c.action {
	case ActionAdd:
		return c.addRecord()
	case ActionLookupName:
		return c.lookupByName()
	case ActionLookupDate:
		return c.lookupByDate()
	case ActionDump:
		c.dump()
		return StatePostAction, nil
	case ActionQuit:
		return StateTerminated, nil
	default:
		return StateMainMenu, nil
	}
}

func (c *Controller) addRecord() (State, error) {
	var name string
	for {
		c.println(c.styles.Prompt, "Please enter the name of the person you want to enter:")
		answer, err := c.in.ReadLine()
		if err != nil {
			return c.state, err
		}
		if err := store.ValidateName(answer); err != nil {
			c.logger.Debug("rejected name", "input", answer, "error", err)
			c.println(c.styles.Failure, "That name cannot be stored, please try another one")
			continue
		}
		name = answer
		break
	}

	d, err := c.readDate(fmt.Sprintf("Please enter the birthdate of %s:", name))
	if err != nil {
		return c.state, err
	}

	_, existed := c.store.Get(name)
	c.store.Set(name, d)
	c.logger.Info("record set", "name", name, "date", d.String(), "replaced", existed)
	c.println(c.styles.Success, "Done!🎉")
	return StatePostAction, nil
}

// lookupByName shows the date for a name. The "print" answer lists every
// record instead; both that and a miss go straight back to the main menu.
func (c *Controller) lookupByName() (State, error) {
	c.println(c.styles.Prompt, `Please enter the name of the person you want to check ("print" to print the names):`)
	name, err := c.in.ReadLine()
	if err != nil {
		return c.state, err
	}

	if name == printSentinel {
		c.dump()
		return StateMainMenu, nil
	}

	d, ok := c.store.Get(name)
	if !ok {
		c.logger.Debug("name not found", "name", name)
		c.println(c.styles.Notice, "The name is not in the map, restarting...")
		return StateMainMenu, nil
	}
	c.println(c.styles.Success, fmt.Sprintf("%s's birthday is %q🎉", name, d.String()))
	return StatePostAction, nil
}

func (c *Controller) lookupByDate() (State, error) {
	d, err := c.readDate("Please enter the date you want to check:")
	if err != nil {
		return c.state, err
	}

	name, ok := c.store.FindNameByDate(d)
	if !ok {
		c.println(c.styles.Failure, "Date not found!")
		return StatePostAction, nil
	}
	c.println(c.styles.Success, fmt.Sprintf("It's %s's birthday!🎉", name))
	return StatePostAction, nil
}

// dump lists every record, ordered by name.
func (c *Controller) dump() {
	if c.clearScreen {
		fmt.Fprint(c.out, console.ClearScreen)
	}
	c.println(c.styles.Title, "Names & Dates")
	for _, e := range c.store.Entries() {
		c.println(c.styles.Record, fmt.Sprintf("%s <--> %s", e.Name, e.Date))
	}
}
