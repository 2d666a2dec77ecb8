// Package cli implements the interactive menu around a task list. All
// terminal I/O goes through the injected reader and writer so the loop can
// be driven from tests.
package cli

import (
	"errors"
	"fmt"
	"io"

	"tasktracker/internal/models"
	"tasktracker/internal/tasks"
)

// PrintLoadNotice reports how the initial load went, in the same place the
// caller would otherwise see the first list view.
func PrintLoadNotice(out io.Writer, location string, status tasks.LoadStatus) {
	switch status {
	case tasks.StartedFresh:
		fmt.Fprintf(out, "Database file %q not found. Starting with an empty list.\n", location)
	case tasks.RecoveredCorrupt:
		fmt.Fprintf(out, "Error decoding %q. Starting with an empty list.\n", location)
	case tasks.RecoveredUnreadable:
		fmt.Fprintf(out, "File read error on %q. Starting with an empty list.\n", location)
	}
}

// Run drives the menu loop until the user exits or input ends. Returns a
// non-nil error only on a read failure; plain EOF ends the loop cleanly.
func Run(list *tasks.TaskList, in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)

	fmt.Fprintln(out, "Welcome to the To-Do List App!")
	for {
		printTasks(out, list.Tasks())
		printMenu(out)

		choice, err := p.promptInt("Enter your choice (1-5): ", 1, 5)
		if err != nil {
			return stopErr(err)
		}

		switch choice {
		case 1:
			err = addTask(p, list, out)
		case 2:
			err = editTask(p, list, out)
		case 3:
			err = toggleTask(p, list, out)
		case 4:
			err = deleteTask(p, list, out)
		case 5:
			fmt.Fprintln(out, "Exiting application. Have a productive day!")
			return nil
		}
		if err != nil {
			return stopErr(err)
		}
	}
}

// stopErr turns end-of-input into a clean exit.
func stopErr(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, "--- Menu ---")
	fmt.Fprintln(out, "1. Add a new task")
	fmt.Fprintln(out, "2. Edit a task description")
	fmt.Fprintln(out, "3. Complete/Pending a task")
	fmt.Fprintln(out, "4. Delete a task")
	fmt.Fprintln(out, "5. Exit")
}

func printTasks(out io.Writer, items []models.Task) {
	if len(items) == 0 {
		fmt.Fprintln(out, "\nYour to-do list is empty! Time to add some tasks.")
		return
	}
	fmt.Fprintln(out, "\n--- Current To-Do List ---")
	for i, task := range items {
		fmt.Fprintf(out, "%d. %s\n", i+1, task)
	}
	fmt.Fprintln(out, "--------------------------")
}

func addTask(p *prompter, list *tasks.TaskList, out io.Writer) error {
	description, err := p.promptString("Enter the new task description: ")
	if err != nil {
		return err
	}
	position, err := list.Add(description)
	fmt.Fprintf(out, "Added task %d: %q\n", position, description)
	warnFlush(out, err)
	return nil
}

func editTask(p *prompter, list *tasks.TaskList, out io.Writer) error {
	if list.Len() == 0 {
		fmt.Fprintln(out, "No tasks to edit.")
		return nil
	}
	position, err := p.promptInt("Enter the number of the task to edit: ", 1, list.Len())
	if err != nil {
		return err
	}
	newDescription, err := p.promptString("Enter the new description: ")
	if err != nil {
		return err
	}
	old, err := list.Edit(position, newDescription)
	if errors.Is(err, tasks.ErrInvalidPosition) {
		fmt.Fprintf(out, "Invalid task number: %d\n", position)
		return nil
	}
	fmt.Fprintf(out, "Task %d updated from %q to %q\n", position, old, newDescription)
	warnFlush(out, err)
	return nil
}

func toggleTask(p *prompter, list *tasks.TaskList, out io.Writer) error {
	if list.Len() == 0 {
		fmt.Fprintln(out, "No tasks to mark as complete.")
		return nil
	}
	position, err := p.promptInt("Enter the number of the task to toggle status: ", 1, list.Len())
	if err != nil {
		return err
	}
	status, err := list.ToggleDone(position)
	if errors.Is(err, tasks.ErrInvalidPosition) {
		fmt.Fprintf(out, "Invalid task number: %d\n", position)
		return nil
	}
	fmt.Fprintf(out, "Task %d marked as %s.\n", position, status)
	warnFlush(out, err)
	return nil
}

func deleteTask(p *prompter, list *tasks.TaskList, out io.Writer) error {
	if list.Len() == 0 {
		fmt.Fprintln(out, "No tasks to delete.")
		return nil
	}
	position, err := p.promptInt("Enter the number of the task to delete: ", 1, list.Len())
	if err != nil {
		return err
	}
	removed, err := list.Remove(position)
	if errors.Is(err, tasks.ErrInvalidPosition) {
		fmt.Fprintf(out, "Invalid task number: %d\n", position)
		return nil
	}
	fmt.Fprintf(out, "Deleted task %d: %q\n", position, removed)
	warnFlush(out, err)
	return nil
}

// warnFlush reports a failed persist. The mutation itself already succeeded
// and stays applied for the session.
func warnFlush(out io.Writer, err error) {
	if errors.Is(err, tasks.ErrPersist) {
		fmt.Fprintf(out, "Warning: %v\n", err)
	}
}
