package selection

import (
	"encoding/json"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// CourseRecord is a loosely-typed course row as supplied by the upstream
// entity lookup. Credit may arrive as a number or a numeric string.
type CourseRecord struct {
	Name   string
	Credit any
	Field  string
	Format string
	Dates  string
}

// SelectionInput is a complete solve request document
type SelectionInput struct {
	Courses      []CourseRecord
	TotalCredits int `mapstructure:"totalCredits"`
	Fields       []string
	Formats      []string
	Schedules    []string
}

// InputFromJson reads a solve request from a json file
func InputFromJson(file string) (SelectionInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return SelectionInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return SelectionInput{}, err
	}

	var input SelectionInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return SelectionInput{}, err
	}

	return input, nil
}

type courseCsvRow struct {
	Name   string `csv:"Name"`
	Credit string `csv:"Credit"`
	Field  string `csv:"Field"`
	Format string `csv:"Format"`
	Dates  string `csv:"Dates"`
}

// CoursesFromCsv loads candidate courses from a csv catalog export with a
// Name,Credit,Field,Format,Dates header.
func CoursesFromCsv(file string) ([]CourseRecord, error) {
	catalogFile, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer catalogFile.Close()

	rows := []*courseCsvRow{}
	if err := gocsv.UnmarshalFile(catalogFile, &rows); err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row *courseCsvRow, _ int) CourseRecord {
		return CourseRecord{
			Name:   row.Name,
			Credit: row.Credit,
			Field:  row.Field,
			Format: row.Format,
			Dates:  row.Dates,
		}
	}), nil
}
