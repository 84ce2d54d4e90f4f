package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"courseselect/internal/selection"
)

func main() {
	// Define arguments
	filePtr := flag.String("file", "", "Path to the json request file (courses, totalCredits, fields, formats, schedules)")
	catalogPtr := flag.String("catalog", "", "Path to a csv course catalog; when set its courses replace the ones in the request file")
	seedPtr := flag.Int64("seed", -1, "Seed for the pseudo-random shuffling; any negative value derives a seed from the current time")
	budgetPtr := flag.Uint64("budget", 0, "Node budget for the exact completion search per pass; 0 means unlimited")
	outFilePtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	filePath := *filePtr
	catalogPath := *catalogPtr
	seed := *seedPtr
	outFile := *outFilePtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("an input file must be specified")
	}
	if seed < 0 {
		seed = time.Now().UnixNano()
	}

	// Extract input
	input, err := selection.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	records := input.Courses
	if catalogPath != "" {
		records, err = selection.CoursesFromCsv(catalogPath)
		if err != nil {
			log.Fatalf("cannot parse catalog file: %v", err)
		}
	}

	// Initialize the selection engine
	selector := selection.NewSelector(
		rand.New(rand.NewSource(seed)),
		selection.WithSearchBudget(*budgetPtr),
	)

	// Select courses
	solutions, err := selector.SelectCourses(records, selection.Constraints{
		TargetCredits: input.TotalCredits,
		Fields:        input.Fields,
		Formats:       input.Formats,
		BusySchedules: input.Schedules,
	})
	if err != nil {
		log.Fatalf("an error occurred during course selection: %v", err)
	}

	// Marshal output into json
	solutionsJson, err := json.Marshal(solutions)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(solutionsJson))
	} else {
		err := os.WriteFile(outFile, solutionsJson, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	fmt.Printf("Solutions: %v\n", len(solutions))
}
