// Standalone terminal tracker backed by a local JSON file. Useful for
// logging activities offline without the API server or its database.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DragosAvidal/ADworktracker/internal/localstore"
	"github.com/DragosAvidal/ADworktracker/internal/model"
	"github.com/DragosAvidal/ADworktracker/internal/report"
)

var predefinedClients = []string{
	"Client A",
	"Client B",
	"Client C",
	"Client D",
}

var predefinedProjects = []string{
	"New website",
	"Maintenance",
	"Consulting",
	"Training",
	"Application development",
}

var predefinedActivityTypes = []string{
	"Programming",
	"Client meeting",
	"Documentation",
	"Testing",
	"Code review",
	"Requirements analysis",
	"Training",
}

func main() {
	store, err := localstore.Open("activities.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\n=== Menu ===")
		fmt.Println("1. Add new activity")
		fmt.Println("2. View all activities")
		fmt.Println("3. Search activities")
		fmt.Println("4. Hour reports")
		fmt.Println("5. Exit")

		switch prompt(in, "Choose an option (1-5): ") {
		case "1":
			addActivity(in, store)
		case "2":
			viewActivities(store.All())
		case "3":
			searchActivities(in, store)
		case "4":
			hourReports(in, store)
		case "5":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid option, please choose again.")
		}
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

func promptDate(in *bufio.Scanner, label string) model.Date {
	for {
		d, err := model.ParseDate(prompt(in, label))
		if err == nil {
			return d
		}
		fmt.Println("Invalid date format!")
	}
}

func chooseFromList(in *bufio.Scanner, items []string, itemType string) string {
	fmt.Printf("\nChoose a %s from the list:\n", itemType)
	for i, item := range items {
		fmt.Printf("%d. %s\n", i+1, item)
	}
	fmt.Printf("%d. Other (free text)\n", len(items)+1)

	for {
		choice, err := strconv.Atoi(prompt(in, fmt.Sprintf("Number for %s: ", itemType)))
		switch {
		case err != nil:
			fmt.Println("Please enter a valid number!")
		case choice >= 1 && choice <= len(items):
			return items[choice-1]
		case choice == len(items)+1:
			return prompt(in, fmt.Sprintf("Enter %s: ", itemType))
		default:
			fmt.Println("Invalid option!")
		}
	}
}

func addActivity(in *bufio.Scanner, store *localstore.Store) {
	date := promptDate(in, "Date (YYYY-MM-DD): ")
	client := chooseFromList(in, predefinedClients, "client")
	project := chooseFromList(in, predefinedProjects, "project")
	activityType := chooseFromList(in, predefinedActivityTypes, "activity type")

	var hours float64
	for {
		h, err := strconv.ParseFloat(prompt(in, "Hours worked: "), 64)
		if err != nil {
			fmt.Println("Please enter a valid number!")
			continue
		}
		if h <= 0 {
			fmt.Println("Hours must be positive!")
			continue
		}
		hours = h
		break
	}

	achievements := prompt(in, "What did you accomplish today? ")
	challenges := prompt(in, "What challenges did you face? ")

	_, err := store.Add(model.Activity{
		Date:         date,
		Client:       client,
		Project:      project,
		ActivityType: activityType,
		Achievements: achievements,
		Challenges:   challenges,
		Hours:        hours,
	})
	if err != nil {
		fmt.Printf("Failed to save activity: %v\n", err)
		return
	}
	fmt.Println("Activity added successfully!")
}

func viewActivities(activities []model.Activity) {
	if len(activities) == 0 {
		fmt.Println("No activities recorded.")
		return
	}
	for _, a := range activities {
		printActivity(a)
	}
}

func printActivity(a model.Activity) {
	fmt.Println("\n--- Activity ---")
	fmt.Printf("Date: %s\n", a.Date)
	fmt.Printf("Client: %s\n", a.Client)
	fmt.Printf("Project: %s\n", a.Project)
	fmt.Printf("Activity type: %s\n", a.ActivityType)
	fmt.Printf("Hours: %g\n", a.Hours)
	fmt.Printf("Achievements: %s\n", a.Achievements)
	fmt.Printf("Challenges: %s\n", a.Challenges)
}

func searchActivities(in *bufio.Scanner, store *localstore.Store) {
	fmt.Println("\n=== Search Activities ===")
	fmt.Println("1. Search by date")
	fmt.Println("2. Search by client")

	var results []model.Activity
	switch prompt(in, "Choose a search option (1-2): ") {
	case "1":
		d, err := model.ParseDate(prompt(in, "Enter date (YYYY-MM-DD): "))
		if err != nil {
			fmt.Println("Invalid date format!")
			return
		}
		results = store.SearchByDate(d)
	case "2":
		results = store.SearchByClient(prompt(in, "Enter client name: "))
	default:
		fmt.Println("Invalid option!")
		return
	}

	if len(results) == 0 {
		fmt.Println("No activities matched the search criteria.")
		return
	}
	fmt.Println("\nActivities found:")
	for _, a := range results {
		printActivity(a)
	}
}

func hourReports(in *bufio.Scanner, store *localstore.Store) {
	fmt.Println("\n=== Reports ===")
	fmt.Println("1. Total hours per client")
	fmt.Println("2. Total hours per project")
	fmt.Println("3. Weekly report")
	fmt.Println("4. Monthly report")

	switch prompt(in, "Choose a report type (1-4): ") {
	case "1":
		totals := report.Aggregate(store.All()).Clients
		fmt.Println("\nTotal hours per client:")
		printTotals(totals)
	case "2":
		totals := report.Aggregate(store.All()).Projects
		fmt.Println("\nTotal hours per project:")
		printTotals(totals)
	case "3":
		periodReport(in, store, report.RangeWeek, "Weekly")
	case "4":
		periodReport(in, store, report.RangeMonth, "Monthly")
	default:
		fmt.Println("Invalid option!")
	}
}

func printTotals(totals map[string]float64) {
	if len(totals) == 0 {
		fmt.Println("  (none)")
		return
	}
	for name, hours := range totals {
		fmt.Printf("  %s: %g hours\n", name, hours)
	}
}

func periodReport(in *bufio.Scanner, store *localstore.Store, kind report.RangeKind, title string) {
	ref, err := model.ParseDate(prompt(in, "Enter a date within the period (YYYY-MM-DD): "))
	if err != nil {
		fmt.Println("Invalid date format!")
		return
	}

	start, end := report.Resolve(kind, ref)
	matched := report.FilterRange(store.All(), start, end)
	payload := report.Aggregate(matched)

	fmt.Printf("\n=== %s report ===\n", title)
	fmt.Printf("Period: %s - %s\n", start, end)
	fmt.Printf("Total hours worked: %g\n", payload.TotalHours)
	fmt.Printf("Working days: %d\n", payload.WorkingDays)
	fmt.Printf("Unique projects: %d\n", payload.UniqueProjects)

	fmt.Println("\nHours per client:")
	printTotals(payload.Clients)

	fmt.Println("\nHours per project:")
	printTotals(payload.Projects)

	fmt.Println("\nActivities in the selected period:")
	for _, a := range payload.Activities {
		printActivity(a)
	}
}
