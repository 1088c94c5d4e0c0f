package heredity

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var columns = []string{"name", "mother", "father", "trait"}

// LoadFile reads a family dataset from a CSV file.
func LoadFile(path string) (*Family, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	family, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return family, nil
}

// Load reads a CSV dataset with a header naming the columns name, mother,
// father and trait. Trait is "1" when known present, "0" when known absent
// and blank when unknown; mother and father are blank or both set.
func Load(r io.Reader) (*Family, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFamily
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	position := make(map[string]int, len(header))
	for i, column := range header {
		position[strings.ToLower(strings.TrimSpace(column))] = i
	}
	for _, column := range columns {
		if _, ok := position[column]; !ok {
			return nil, fmt.Errorf("%q: %w", column, ErrMissingColumn)
		}
	}

	var people []Person
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}

		field := func(column string) string {
			return strings.TrimSpace(record[position[column]])
		}
		trait, err := parseTrait(field("trait"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		people = append(people, Person{
			Name:   field("name"),
			Mother: field("mother"),
			Father: field("father"),
			Trait:  trait,
		})
	}

	return NewFamily(people)
}

func parseTrait(value string) (Trait, error) {
	switch value {
	case "":
		return TraitUnknown, nil
	case "0":
		return TraitAbsent, nil
	case "1":
		return TraitPresent, nil
	default:
		return TraitUnknown, fmt.Errorf("%q: %w", value, ErrInvalidTrait)
	}
}
