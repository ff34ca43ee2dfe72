package dashboard

import "fmt"

func taskCreatedDetails(title, listName string) string {
	if listName != "" {
		return fmt.Sprintf("Task \"%s\" was created in %s", title, listName)
	}
	return fmt.Sprintf("Task \"%s\" was created", title)
}

func taskDetails(title, verb string) string {
	return fmt.Sprintf("Task \"%s\" was %s", title, verb)
}

func listDetails(name, verb string) string {
	return fmt.Sprintf("Task list \"%s\" was %s", name, verb)
}
